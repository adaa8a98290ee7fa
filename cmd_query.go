//
// One-shot client for locationd.
//
// Sends each named selector to the daemon and prints the JSON which
// comes back, one reply per line.  Useful for poking the daemon by
// hand without standing up the gateway.
//

package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
)

//
// queryCmd is the structure for this sub-command.
//
type queryCmd struct {
	// Where locationd is listening.
	daemonAddress string

	// How long a complete exchange may take.
	timeout time.Duration
}

// Name returns the name of this sub-command.
func (p *queryCmd) Name() string { return "query" }

// Synopsis returns the brief description of this sub-command
func (p *queryCmd) Synopsis() string { return "Send selectors to locationd directly." }

// Usage returns details of this sub-command.
func (p *queryCmd) Usage() string {
	return `query [options] [selector..]:
  Send each selector to locationd and print the JSON reply.
  With no selectors given, "gps" is queried.
`
}

// SetFlags configures the flags this sub-command accepts.
func (p *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.daemonAddress, "daemon", DefaultDaemonAddress, "The host:port locationd is listening upon.")
	f.DurationVar(&p.timeout, "timeout", DefaultTimeout, "The timeout for a complete daemon exchange.")
}

// Execute is the entry-point to this sub-command.
func (p *queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {

	//
	// Default to asking for the current fix.
	//
	// Unknown selectors are sent as-is: the daemon answers those
	// with its own error-document, which is worth seeing too.
	//
	selectors := f.Args()
	if len(selectors) == 0 {
		selectors = []string{"gps"}
	}

	d := NewDaemon(p.daemonAddress, p.timeout)

	for _, sel := range selectors {
		reply, err := d.Query(ctx, Keyword(sel))
		if err != nil {
			fmt.Printf("Error querying %s: %s\n", sel, err.Error())
			return subcommands.ExitFailure
		}
		fmt.Printf("%s\n", reply)
	}

	return subcommands.ExitSuccess
}
