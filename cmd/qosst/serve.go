package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/qosst/qosst-go/pkg/codes"
	"github.com/qosst/qosst-go/pkg/control"
	"github.com/qosst/qosst-go/pkg/frame"
	"github.com/qosst/qosst-go/pkg/metrics"
	"github.com/qosst/qosst-go/pkg/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a standing responder",
	Long:  "Binds the configured endpoint and answers control frames until\ninterrupted: identification exchanges, frame boundaries, and clean\ndisconnections. Anything else is answered with UNKNOWN_COMMAND.",
	RunE: func(cmd *cobra.Command, args []string) error {
		authenticator, err := cfg.Authenticator()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		server := control.NewServer(cfg.Network.Host, cfg.Network.Port, authenticator, cfg.ServerConfig())
		collector := metrics.NewCollector()
		server.SetCollector(collector)
		if err := server.Open(); err != nil {
			return err
		}
		defer server.Close()

		err = serve(ctx, server)

		s := collector.Snapshot()
		log.Info().
			Uint64("frames_received", s.FramesReceived).
			Uint64("frames_sent", s.FramesSent).
			Uint64("disconnections", s.Disconnections).
			Dur("uptime", s.Uptime).
			Msg("responder stopped")
		if err == context.Canceled {
			return nil
		}
		return err
	},
}

// serve answers frames from one peer at a time until ctx is cancelled.
func serve(ctx context.Context, server *control.Server) error {
	for {
		if server.State() == control.StateOpening {
			if err := server.Connect(ctx); err != nil {
				return err
			}
		}

		code, payload, err := server.Recv(ctx)
		if err != nil {
			return err
		}

		switch code {
		case codes.IdentificationRequest:
			peerVersion, _ := payload["version"].(string)
			reply := codes.IdentificationResponse
			if !version.Compatible(peerVersion) {
				reply = codes.InvalidQOSSTVersion
			}
			if err := server.Send(reply, frame.Payload{"version": version.Protocol()}); err != nil {
				return err
			}
		case codes.FrameEnded:
			if err := server.Send(codes.FrameEndedAck, nil); err != nil {
				return err
			}
		case codes.Disconnection:
			if err := server.Send(codes.DisconnectionAck, nil); err != nil {
				return err
			}
		case codes.SocketDisconnection:
			// Recv already released the peer transport.
		default:
			if code.IsLocalError() {
				continue
			}
			if err := server.Send(codes.UnknownCommand, nil); err != nil {
				return err
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
