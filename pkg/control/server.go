package control

import (
	"context"
	"net"
	"time"

	"github.com/qosst/qosst-go/internal/constants"
	qerrors "github.com/qosst/qosst-go/internal/errors"
	"github.com/qosst/qosst-go/pkg/auth"
	"github.com/qosst/qosst-go/pkg/codes"
	"github.com/qosst/qosst-go/pkg/frame"
)

// ServerConfig holds the responder's connection settings.
type ServerConfig struct {
	// AutoRelisten makes Recv wait for a new peer automatically after a
	// disconnection, instead of requiring the caller to invoke Connect
	// again.
	AutoRelisten bool
}

// DefaultServerConfig returns the default responder settings: disconnection
// leaves the server awaiting an explicit Connect.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{}
}

// Server is the responder role of the control protocol: it binds, accepts
// exactly one peer at a time, and answers that peer's frames. When the peer
// disconnects, the server tears its transport down and is ready to accept a
// new one.
type Server struct {
	conn
	config   ServerConfig
	listener *net.TCPListener
	peerAddr net.Addr
}

// NewServer creates a responder for the given endpoint. Port 0 binds an
// ephemeral port, readable from Addr after Open. A nil authenticator selects
// the identity scheme.
func NewServer(host string, port int, authenticator auth.Authenticator, config ServerConfig) *Server {
	return &Server{
		conn:   newConn(host, port, authenticator, "responder"),
		config: config,
	}
}

// Open binds the listening socket. It must be called exactly once, before
// Connect.
func (s *Server) Open() error {
	if s.state != StateUnopened {
		return qerrors.ErrAlreadyConnected
	}
	addr, err := net.ResolveTCPAddr("tcp", s.addr())
	if err != nil {
		return err
	}
	listener, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = listener
	s.state = StateOpening
	s.logger.Info().Str("addr", s.listener.Addr().String()).Msg("bound listening socket")
	return nil
}

// Addr returns the bound address, useful when the configured port is 0.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Connect waits for exactly one peer and accepts it. While a peer is
// attached, further connection attempts stay in the listen backlog. The
// wait polls in bounded slices so ctx can cancel it.
func (s *Server) Connect(ctx context.Context) error {
	if s.state == StateUnopened {
		return qerrors.ErrNotOpened
	}
	if s.state == StateClosed {
		return qerrors.ErrClosed
	}
	if s.state == StateConnected {
		return qerrors.ErrAlreadyConnected
	}

	s.logger.Info().Msg("waiting for a peer to connect")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		_ = s.listener.SetDeadline(time.Now().Add(constants.PollInterval))
		sock, err := s.listener.Accept()
		if err != nil {
			if isTimeout(err) {
				continue
			}
			return err
		}
		s.attach(sock)
		s.peerAddr = sock.RemoteAddr()
		s.logger.Info().Str("peer", s.peerAddr.String()).Msg("peer connected")
		return nil
	}
}

// PeerAddr returns the address of the currently or most recently attached
// peer.
func (s *Server) PeerAddr() net.Addr {
	return s.peerAddr
}

// Send sends one frame to the attached peer.
func (s *Server) Send(code codes.Code, payload frame.Payload) error {
	return s.send(code, payload)
}

// Recv receives one frame from the attached peer. On disconnection the peer
// transport is released and the server returns to awaiting a peer; with
// AutoRelisten set, the next Recv accepts the new peer itself.
func (s *Server) Recv(ctx context.Context) (codes.Code, frame.Payload, error) {
	if s.state == StateOpening && s.config.AutoRelisten {
		if err := s.Connect(ctx); err != nil {
			return 0, nil, err
		}
	}

	code, payload, err := s.recv(ctx)
	if err != nil {
		return code, payload, err
	}
	if code == codes.SocketDisconnection {
		s.logger.Warn().Msg("peer disconnected, releasing its transport")
		s.detach()
	}
	return code, payload, nil
}

// ServeIdentification answers one identification exchange: it receives the
// peer's IDENTIFICATION_REQUEST, compares protocol versions, and replies
// with IDENTIFICATION_RESPONSE or INVALID_QOSST_VERSION. Any other incoming
// code is answered with UNEXPECTED_COMMAND and returned to the caller.
func (s *Server) ServeIdentification(ctx context.Context) (codes.Code, error) {
	code, payload, err := s.Recv(ctx)
	if err != nil {
		return 0, err
	}
	if code.IsLocalError() {
		return code, nil
	}
	if code != codes.IdentificationRequest {
		if err := s.send(codes.UnexpectedCommand, nil); err != nil {
			return code, err
		}
		return code, nil
	}

	version, _ := payload["version"].(string)
	if version != constants.ProtocolVersion {
		s.logger.Warn().Str("peer_version", version).Msg("protocol version mismatch")
		return code, s.send(codes.InvalidQOSSTVersion,
			frame.Payload{"version": constants.ProtocolVersion})
	}
	return code, s.send(codes.IdentificationResponse,
		frame.Payload{"version": constants.ProtocolVersion})
}

// Close releases the peer transport and the listening socket. Closing twice
// is a no-op.
func (s *Server) Close() error {
	if s.state == StateClosed {
		return nil
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
	s.closeTransport()
	return nil
}
