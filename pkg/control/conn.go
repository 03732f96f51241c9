// Package control implements the connection layer of the QOSST control
// protocol: a state machine around one TCP transport, and the two role
// adapters, Client (initiator) and Server (responder).
//
// A connection is exclusively owned: one goroutine drives it, one frame is
// in flight per direction, sends and receives alternate strictly. Waiting
// for data or for a peer happens in bounded poll slices so a caller-supplied
// context can cancel the idle wait; once a frame transfer has started, the
// reads block until the frame completes; a peer that stalls mid-frame stalls
// the receiver.
package control

import (
	"bufio"
	"context"
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/qosst/qosst-go/internal/constants"
	qerrors "github.com/qosst/qosst-go/internal/errors"
	"github.com/qosst/qosst-go/pkg/auth"
	"github.com/qosst/qosst-go/pkg/codes"
	"github.com/qosst/qosst-go/pkg/frame"
	"github.com/qosst/qosst-go/pkg/metrics"
)

// State is the lifecycle state of a control connection.
type State int32

const (
	// StateUnopened is the initial state, before Open.
	StateUnopened State = iota
	// StateOpening means the transport exists but no peer is attached:
	// the initiator has not connected yet, the responder has not accepted.
	StateOpening
	// StateConnected means a peer is attached and frames can flow.
	StateConnected
	// StateClosed is terminal; all resources have been released.
	StateClosed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUnopened:
		return "Unopened"
	case StateOpening:
		return "Opening"
	case StateConnected:
		return "Connected"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// conn holds the state shared by both role adapters: the transport handle,
// the challenge ledger, the authenticator, and observability hooks. It is
// not safe for concurrent use; each role adapter owns exactly one.
type conn struct {
	host string
	port int

	auth   auth.Authenticator
	ledger frame.Ledger
	state  State

	sock net.Conn
	br   *bufio.Reader

	logger    zerolog.Logger
	collector *metrics.Collector
	tracer    metrics.Tracer
}

func newConn(host string, port int, authenticator auth.Authenticator, role string) conn {
	if host == "" {
		host = constants.DefaultHost
	}
	if authenticator == nil {
		authenticator = auth.None()
	}
	return conn{
		host:   host,
		port:   port,
		auth:   authenticator,
		state:  StateUnopened,
		logger: log.With().Str("component", "control").Str("role", role).Logger(),
		tracer: metrics.NoOpTracer{},
	}
}

// addr returns the host:port endpoint of this connection.
func (c *conn) addr() string {
	return net.JoinHostPort(c.host, strconv.Itoa(c.port))
}

// State returns the current lifecycle state.
func (c *conn) State() State {
	return c.state
}

// Pending exposes the ledger's pending challenge, for tests and diagnostics.
func (c *conn) Pending() string {
	return c.ledger.Pending()
}

// SetCollector attaches a metrics collector. A nil collector disables
// counting.
func (c *conn) SetCollector(collector *metrics.Collector) {
	c.collector = collector
}

// SetTracer attaches a tracer for send/receive spans.
func (c *conn) SetTracer(tracer metrics.Tracer) {
	if tracer == nil {
		tracer = metrics.NoOpTracer{}
	}
	c.tracer = tracer
}

// attach installs an established transport and moves to Connected.
func (c *conn) attach(sock net.Conn) {
	c.sock = sock
	c.br = bufio.NewReaderSize(sock, constants.ReadingBuffer)
	c.state = StateConnected
}

// detach releases the peer transport and returns to Opening. Used by the
// responder when the peer leaves.
func (c *conn) detach() {
	if c.sock != nil {
		_ = c.sock.Close()
		c.sock = nil
		c.br = nil
	}
	c.state = StateOpening
}

// send encodes and writes one frame. It requires a connected peer; calling
// it in any other state is a usage error.
func (c *conn) send(code codes.Code, payload frame.Payload) error {
	if c.state != StateConnected || c.sock == nil {
		return qerrors.ErrNotConnected
	}

	challenge, next, err := c.ledger.Stamp()
	if err != nil {
		return err
	}
	encoded, err := frame.Encode(code, payload, challenge, next, c.auth)
	if err != nil {
		return err
	}

	if _, err := c.sock.Write(encoded); err != nil {
		return err
	}
	c.collector.FrameSent(len(encoded))
	c.logger.Info().
		Stringer("code", code).
		Int("code_value", int(code)).
		Int("bytes", len(encoded)).
		Msg("frame sent")
	return nil
}

// recv waits for the peer to become readable, then reads exactly one frame.
// Protocol faults come back as local error codes with a nil payload; the
// error return covers only usage errors and context cancellation.
func (c *conn) recv(ctx context.Context) (codes.Code, frame.Payload, error) {
	if c.state != StateConnected || c.sock == nil {
		return 0, nil, qerrors.ErrNotConnected
	}

	if err := c.waitReadable(ctx); err != nil {
		return 0, nil, err
	}

	// Frame transfer: block until the frame completes.
	_ = c.sock.SetReadDeadline(time.Time{})
	code, payload := frame.Decode(c.br, c.auth, &c.ledger)
	if code.IsLocalError() {
		c.collector.Fault(code)
		c.logger.Warn().Stringer("code", code).Msg("receive fault")
		return code, nil, nil
	}

	c.collector.FrameReceived(len(payload))
	c.logger.Info().
		Stringer("code", code).
		Int("code_value", int(code)).
		Msg("frame received")
	return code, payload, nil
}

// waitReadable polls in bounded slices until at least one byte is buffered
// or ctx is cancelled. EOF is left for the decoder to classify.
func (c *conn) waitReadable(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.br.Buffered() > 0 {
			return nil
		}
		_ = c.sock.SetReadDeadline(time.Now().Add(constants.PollInterval))
		_, err := c.br.Peek(1)
		switch {
		case err == nil:
			return nil
		case isTimeout(err):
			continue
		default:
			// Disconnection or hard I/O error; the decoder turns it
			// into the appropriate local code.
			return nil
		}
	}
}

// closeTransport releases the peer transport exactly once and moves to
// Closed. Closing twice is a no-op.
func (c *conn) closeTransport() {
	if c.state == StateClosed {
		return
	}
	if c.sock != nil {
		_ = c.sock.Close()
		c.sock = nil
		c.br = nil
	}
	c.state = StateClosed
}

func isTimeout(err error) bool {
	ne, ok := err.(net.Error)
	return ok && ne.Timeout()
}
