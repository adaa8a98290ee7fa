//
// Client for the locationd socket-protocol.
//
// The protocol is about as simple as these things get:
//
//  1.  Connect to the daemon, which is listening upon a loopback
//      TCP-port.
//
//  2.  Send the selector as bare bytes, in a single write.  There is
//      no framing, no length-prefix, and no terminator.
//
//  3.  The daemon replies with a single JSON document, then closes
//      the connection.
//
// Because the daemon closes after answering we can read until EOF,
// rather than trusting a fixed-size receive to capture the whole
// reply.  A size-guard stops a misbehaving peer from feeding us an
// endless body.
//
// Each exchange uses a fresh connection; connections are never shared
// or reused.
//

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"time"
)

var (
	// ErrDaemonUnreachable is returned when the connection to the
	// daemon cannot be established at all.
	ErrDaemonUnreachable = errors.New("location daemon is unreachable")

	// ErrReplyTooLarge is returned when the daemon sends more than
	// the permitted number of bytes in its reply.
	ErrReplyTooLarge = errors.New("location daemon reply exceeded the size limit")
)

const (
	// DefaultDaemonAddress is where locationd listens, unless
	// overridden on the command-line.
	DefaultDaemonAddress = "127.0.0.1:9999"

	// DefaultTimeout bounds a complete exchange with the daemon.
	DefaultTimeout = 5 * time.Second

	// DefaultMaxReply is the largest reply we'll accept.  The
	// daemon's documents are a few hundred bytes, so this is
	// generous.
	DefaultMaxReply = 64 * 1024
)

//
// Daemon holds the details needed to talk to one locationd instance.
//
type Daemon struct {
	// Address is the host:port the daemon is listening upon.
	Address string

	// Timeout bounds the dial and the complete exchange.
	Timeout time.Duration

	// MaxReply is the largest reply, in bytes, we will accept.
	MaxReply int64
}

// NewDaemon returns a client for the daemon at the given address.
//
// A zero timeout selects the default.
func NewDaemon(address string, timeout time.Duration) *Daemon {
	if address == "" {
		address = DefaultDaemonAddress
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Daemon{
		Address:  address,
		Timeout:  timeout,
		MaxReply: DefaultMaxReply,
	}
}

// Query performs one complete exchange with the daemon: send the
// selector, read the reply, close the connection.
//
// The reply bytes are returned untouched; the caller decides whether
// to parse them or pass them along.
func (d *Daemon) Query(ctx context.Context, kw Keyword) ([]byte, error) {

	//
	// Make the connection to the daemon.
	//
	dialer := net.Dialer{Timeout: d.Timeout}
	con, err := dialer.DialContext(ctx, "tcp", d.Address)
	if err != nil {
		return nil, ErrDaemonUnreachable
	}
	defer con.Close()

	//
	// If the caller goes away mid-exchange, drop the connection
	// rather than holding it until the deadline.
	//
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			con.Close()
		case <-done:
		}
	}()

	//
	// The whole exchange happens under a single deadline.
	//
	con.SetDeadline(time.Now().Add(d.Timeout))

	//
	// Send the selector; one selector, one write.
	//
	if _, err := con.Write([]byte(kw)); err != nil {
		return nil, err
	}

	//
	// Read the reply.
	//
	// The daemon sends its document and closes, so we copy until
	// EOF.  The limit is one byte beyond our maximum, which lets
	// us tell "large" from "too large".
	//
	var reply bytes.Buffer
	if _, err := io.Copy(&reply, io.LimitReader(con, d.MaxReply+1)); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	if int64(reply.Len()) > d.MaxReply {
		return nil, ErrReplyTooLarge
	}

	return reply.Bytes(), nil
}
