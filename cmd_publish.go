//
// Bridge locationd onto a message-queue.
//
// The way this operates is pretty simple:
//
//  1.  Connect to the named MQ-broker.
//
//  2.  On an interval, ask locationd for the current fix.
//
//  3.  Publish the JSON document, untouched, to the configured topic.
//
// Remote consumers can then follow the fix without having any access
// to the daemon's loopback socket.
//

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	MQTT "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/subcommands"
	uuid "github.com/satori/go.uuid"
)

//
// publishCmd is the structure for this sub-command.
//
type publishCmd struct {
	// The MQ-broker to publish to.
	broker string

	// The topic the fix is published upon.
	topic string

	// The client-ID used on the broker.
	name string

	// How often to poll the daemon.
	interval time.Duration

	// Where locationd is listening.
	daemonAddress string

	// How long a complete exchange may take.
	timeout time.Duration
}

// Name returns the name of this sub-command.
func (p *publishCmd) Name() string { return "publish" }

// Synopsis returns the brief description of this sub-command
func (p *publishCmd) Synopsis() string { return "Publish the current fix to an MQ-topic." }

// Usage returns details of this sub-command.
func (p *publishCmd) Usage() string {
	return `publish [options]:
  Poll locationd for the current fix, and publish the JSON to an
  MQ-topic for remote consumers.
`
}

// SetFlags configures the flags this sub-command accepts.
func (p *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.broker, "broker", "tcp://localhost:1883", "The address of the MQ-broker.")
	f.StringVar(&p.topic, "topic", "location/gps", "The topic to publish the fix upon.")
	f.StringVar(&p.name, "name", "", "The client-ID to use on the broker.")
	f.DurationVar(&p.interval, "interval", 5*time.Second, "How often to poll the daemon.")
	f.StringVar(&p.daemonAddress, "daemon", DefaultDaemonAddress, "The host:port locationd is listening upon.")
	f.DurationVar(&p.timeout, "timeout", DefaultTimeout, "The timeout for a complete daemon exchange.")
}

// Execute is the entry-point to this sub-command.
func (p *publishCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {

	//
	// A name is optional, but the broker needs something unique.
	//
	if p.name == "" {
		uid := uuid.NewV4()
		p.name = uid.String()
	}

	//
	// Connect to our MQ instance.
	//
	opts := MQTT.NewClientOptions().AddBroker(p.broker)
	opts.SetClientID(p.name)
	client := MQTT.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		fmt.Printf("Failed to connect to the MQ-host %s\n", token.Error())
		return subcommands.ExitFailure
	}

	d := NewDaemon(p.daemonAddress, p.timeout)

	//
	// Create a channel so that we can be disconnected cleanly.
	//
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	fmt.Printf("Publishing the fix from %s to %s on %s\n",
		p.daemonAddress, p.topic, p.broker)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c:
			client.Disconnect(250)
			return subcommands.ExitSuccess

		case <-ticker.C:
			//
			// One poll, one publish.
			//
			// A daemon-hiccup is logged and the loop carries
			// on; the next tick tries again.
			//
			reply, err := d.Query(ctx, "gps")
			if err != nil {
				fmt.Printf("Error querying locationd: %s\n", err.Error())
				continue
			}

			token := client.Publish(p.topic, 0, false, reply)
			token.Wait()
			if token.Error() != nil {
				fmt.Printf("Error publishing to %s - %s\n", p.topic, token.Error())
			}
		}
	}
}
