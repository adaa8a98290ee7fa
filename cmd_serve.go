//
// We present ourselves as a HTTP-server.
//
// When a GET-request arrives for a known path:
//
//  1. The path is translated into a selector via the dispatch-table.
//
//  2. A fresh connection is made to locationd, the selector is sent,
//     and the JSON reply is read back.
//
//  3. The reply is relayed to the HTTP-client verbatim, as
//     application/json.
//
// Anything which goes wrong becomes a well-formed HTTP error:
//
//     unknown path        -> 404
//     non-GET method      -> 405
//     daemon unreachable  -> 502
//     broken/giant reply  -> 502
//
// The HTTP-client never sees a hung connection, and the process never
// dies because the daemon did.
//

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"
	uuid "github.com/satori/go.uuid"
)

//
// serveCmd is the structure for this sub-command.
//
type serveCmd struct {
	// The host we bind upon.
	bindHost string

	// The port we bind upon.
	bindPort int

	// Where locationd is listening.
	daemonAddress string

	// How long a complete daemon-exchange may take.
	timeout time.Duration

	// The daemon-client, built in Execute.
	daemon *Daemon
}

// Name returns the name of this sub-command.
func (p *serveCmd) Name() string { return "serve" }

// Synopsis returns the brief description of this sub-command
func (p *serveCmd) Synopsis() string { return "Launch the HTTP gateway." }

// Usage returns details of this sub-command.
func (p *serveCmd) Usage() string {
	return `serve [options]:
  Launch the HTTP gateway, exposing locationd's data to HTTP clients.
`
}

// SetFlags configures the flags this sub-command accepts.
func (p *serveCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.bindPort, "port", 8080, "The port to bind upon.")
	f.StringVar(&p.bindHost, "host", "0.0.0.0", "The IP to listen upon.")
	f.StringVar(&p.daemonAddress, "daemon", DefaultDaemonAddress, "The host:port locationd is listening upon.")
	f.DurationVar(&p.timeout, "timeout", DefaultTimeout, "The timeout for a complete daemon exchange.")
}

//
// errorReply is the JSON body we send with every error-status.
//
// It deliberately matches the shape the daemon itself uses when it is
// handed a selector it doesn't know.
//
type errorReply struct {
	Error string `json:"error"`
}

// writeError sends a JSON error-document with the given status.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorReply{Error: message})
}

//
// HTTPHandler is the core of our server.
//
// This function is invoked for all accesses.
//
func (p *serveCmd) HTTPHandler(w http.ResponseWriter, r *http.Request) {

	//
	// Tag the request, so the log-lines belonging to a single
	// exchange can be matched up.
	//
	uid := uuid.NewV4()
	id := uid.String()

	//
	// We only answer GET-requests.
	//
	if r.Method != http.MethodGet {
		fmt.Printf("%s %s %s -> 405\n", id, r.Method, r.URL.Path)
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	//
	// Translate the path into a selector.
	//
	// A miss is answered deterministically; there is no default
	// selector to fall back upon.
	//
	kw, ok := LookupPath(r.URL.Path)
	if !ok {
		fmt.Printf("%s GET %s -> 404\n", id, r.URL.Path)
		writeError(w, http.StatusNotFound, "unknown path")
		return
	}

	//
	// Perform the exchange with the daemon.
	//
	// The request's own context rides along, so a HTTP-client which
	// disconnects mid-request tears down the daemon-connection too.
	//
	reply, err := p.daemon.Query(r.Context(), kw)
	if err != nil {
		fmt.Printf("%s GET %s -> 502 (%s)\n", id, r.URL.Path, err.Error())
		writeError(w, http.StatusBadGateway, "error talking to the location daemon")
		return
	}

	//
	// The daemon guarantees each reply is one complete JSON
	// document.  If what we read doesn't parse then the exchange
	// was cut short somewhere, and we must not relay the fragment
	// with a 200.
	//
	if !json.Valid(reply) {
		fmt.Printf("%s GET %s -> 502 (reply was not complete JSON)\n", id, r.URL.Path)
		writeError(w, http.StatusBadGateway, "incomplete reply from the location daemon")
		return
	}

	//
	// Relay the reply, byte-for-byte.
	//
	fmt.Printf("%s GET %s -> 200 (%d bytes)\n", id, r.URL.Path, len(reply))
	w.Header().Set("Content-Type", "application/json")
	w.Write(reply)
}

// Execute is the entry-point to this sub-command.
func (p *serveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {

	//
	// Build the client for the daemon.
	//
	// Every HTTP-request will use this to open its own private
	// connection; nothing is shared between in-flight requests.
	//
	p.daemon = NewDaemon(p.daemonAddress, p.timeout)

	//
	// We handle all incoming paths; the dispatch-table decides
	// inside the handler which of them are real.
	//
	mux := http.NewServeMux()
	mux.HandleFunc("/", p.HTTPHandler)

	//
	// Show where we'll bind.
	//
	bind := fmt.Sprintf("%s:%d", p.bindHost, p.bindPort)
	fmt.Printf("Launching the gateway on http://%s\n", bind)
	fmt.Printf("Relaying requests to locationd at %s\n", p.daemonAddress)

	//
	// We want to make sure we handle timeouts effectively by using
	// a non-default http-server.
	//
	// NOTE: The write-timeout must comfortably exceed the daemon
	// timeout, or slow-but-successful exchanges would be cut off.
	//
	srv := &http.Server{
		Addr:         bind,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: p.timeout + 10*time.Second,
	}

	//
	// Launch the server in the background, so that we can watch
	// for the termination-signal here.
	//
	failed := make(chan error, 1)
	go func() {
		failed <- srv.ListenAndServe()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-failed:
		fmt.Printf("\nError launching our HTTP-server\n:%s\n", err.Error())
		return subcommands.ExitFailure
	case sig := <-sigs:
		fmt.Printf("Received %v - shutting down\n", sig)
	}

	//
	// Stop accepting new connections, and give the in-flight
	// requests a short while to drain.
	//
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		fmt.Printf("Error during shutdown: %s\n", err.Error())
	}

	return subcommands.ExitSuccess
}
