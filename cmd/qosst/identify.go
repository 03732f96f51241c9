package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/qosst/qosst-go/pkg/codes"
	"github.com/qosst/qosst-go/pkg/control"
	"github.com/qosst/qosst-go/pkg/version"
)

var identifyTimeout time.Duration

var identifyCmd = &cobra.Command{
	Use:   "identify",
	Short: "Probe a responder with an identification exchange",
	Long:  "Connects to the configured responder, runs the identification\nexchange, and reports the peer's protocol version and the round-trip\ntime. Exits non-zero when the versions do not match.",
	RunE: func(cmd *cobra.Command, args []string) error {
		authenticator, err := cfg.Authenticator()
		if err != nil {
			return err
		}

		client := control.NewClient(cfg.Network.Host, cfg.Network.Port, authenticator, cfg.ClientConfig())
		if err := client.Open(); err != nil {
			return err
		}
		defer client.Close()
		if err := client.Connect(); err != nil {
			return err
		}

		ctx, cancel := contextWithTimeout(cmd, identifyTimeout)
		defer cancel()

		start := time.Now()
		peerVersion, err := client.Identify(ctx)
		rtt := time.Since(start)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "responder:        %s:%d\n", cfg.Network.Host, cfg.Network.Port)
		fmt.Fprintf(out, "peer protocol:    %s\n", peerVersion)
		fmt.Fprintf(out, "local protocol:   %s\n", version.Protocol())
		fmt.Fprintf(out, "round trip:       %s\n", rtt.Round(time.Microsecond))

		// Leave the responder clean.
		code, _, err := client.Request(ctx, codes.Disconnection, nil)
		if err == nil && code != codes.DisconnectionAck {
			fmt.Fprintf(out, "disconnect reply: %s\n", code)
		}
		return nil
	},
}

func init() {
	identifyCmd.Flags().DurationVar(&identifyTimeout, "timeout", 30*time.Second, "overall exchange timeout")
	rootCmd.AddCommand(identifyCmd)
}
