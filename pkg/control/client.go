package control

import (
	"context"
	"fmt"
	"net"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/qosst/qosst-go/internal/constants"
	qerrors "github.com/qosst/qosst-go/internal/errors"
	"github.com/qosst/qosst-go/pkg/auth"
	"github.com/qosst/qosst-go/pkg/codes"
	"github.com/qosst/qosst-go/pkg/frame"
)

// ClientConfig holds the initiator's connection settings.
type ClientConfig struct {
	// MaxRetries bounds the automatic reconnect-and-resend attempts when
	// a request hits a disconnection. 0 disables automatic recovery.
	MaxRetries int

	// DialTimeout bounds each connection attempt.
	DialTimeout time.Duration
}

// DefaultClientConfig returns the default initiator settings: one automatic
// retry, 10 second dial timeout.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		MaxRetries:  1,
		DialTimeout: 10 * time.Second,
	}
}

// Client is the initiator role of the control protocol: it connects out to
// the responder and drives the exchange with request/response pairs.
type Client struct {
	conn
	config ClientConfig
}

// NewClient creates an initiator for the given endpoint. A nil authenticator
// selects the identity scheme.
func NewClient(host string, port int, authenticator auth.Authenticator, config ClientConfig) *Client {
	return &Client{
		conn:   newConn(host, port, authenticator, "initiator"),
		config: config,
	}
}

// Open prepares the transport. It must be called exactly once, before
// Connect.
func (c *Client) Open() error {
	if c.state != StateUnopened {
		return qerrors.ErrAlreadyConnected
	}
	c.state = StateOpening
	return nil
}

// Connect dials the responder. Requires Open to have been called; also used
// to re-establish the transport after a disconnection.
func (c *Client) Connect() error {
	if c.state == StateUnopened {
		return qerrors.ErrNotOpened
	}
	if c.state == StateClosed {
		return qerrors.ErrClosed
	}
	if c.sock != nil {
		_ = c.sock.Close()
	}

	sock, err := net.DialTimeout("tcp", c.addr(), c.config.DialTimeout)
	if err != nil {
		return err
	}
	c.attach(sock)
	c.logger.Info().Str("addr", c.addr()).Msg("connected to responder")
	return nil
}

// Send sends one frame without waiting for a response.
func (c *Client) Send(code codes.Code, payload frame.Payload) error {
	return c.send(code, payload)
}

// Recv receives one frame. Protocol faults are returned as local error
// codes, not errors.
func (c *Client) Recv(ctx context.Context) (codes.Code, frame.Payload, error) {
	return c.recv(ctx)
}

// Request sends a frame and waits for the matching response. If the
// response is a disconnection, the client reconnects and resends, up to
// MaxRetries times; any other fault is returned to the caller untouched.
func (c *Client) Request(ctx context.Context, code codes.Code, payload frame.Payload) (codes.Code, frame.Payload, error) {
	ctx, end := c.tracer.StartSpan(ctx, "control.request",
		attribute.String("qosst.code", code.String()),
		attribute.Int("qosst.code_value", int(code)),
	)
	rcode, rdata, err := c.requestWithRetry(ctx, code, payload)
	end(err)
	return rcode, rdata, err
}

func (c *Client) requestWithRetry(ctx context.Context, code codes.Code, payload frame.Payload) (codes.Code, frame.Payload, error) {
	for attempt := 0; ; attempt++ {
		if err := c.send(code, payload); err != nil {
			return 0, nil, err
		}
		rcode, rdata, err := c.recv(ctx)
		if err != nil {
			return 0, nil, err
		}
		if rcode != codes.SocketDisconnection || attempt >= c.config.MaxRetries {
			return rcode, rdata, nil
		}

		c.collector.Reconnect()
		c.logger.Warn().Int("attempt", attempt+1).Msg("disconnected during request, reconnecting")
		if err := c.Connect(); err != nil {
			return rcode, nil, nil
		}
	}
}

// Identify runs the identification exchange: it announces the local protocol
// version and returns the responder's. A version rejection or any protocol
// fault is reported as an error.
func (c *Client) Identify(ctx context.Context) (string, error) {
	rcode, rdata, err := c.Request(ctx, codes.IdentificationRequest,
		frame.Payload{"version": constants.ProtocolVersion})
	if err != nil {
		return "", err
	}
	switch rcode {
	case codes.IdentificationResponse:
		version, _ := rdata["version"].(string)
		return version, nil
	case codes.InvalidQOSSTVersion:
		return "", fmt.Errorf("control: responder rejected protocol version %s", constants.ProtocolVersion)
	default:
		return "", fmt.Errorf("control: unexpected identification response %s", rcode)
	}
}

// Close releases the transport. Closing twice is a no-op.
func (c *Client) Close() error {
	c.closeTransport()
	return nil
}
