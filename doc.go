// Package qosstgo implements the classical control channel of a CV-QKD
// (Continuous-Variable Quantum Key Distribution) stack.
//
// The two parties of a CV-QKD exchange, Alice and Bob, coordinate over an
// authenticated TCP channel while the quantum signal travels out-of-band.
// This module provides the QOSST/0.2 control protocol: a framed,
// digest-signed, challenge-response message exchange between an initiator
// (client) and a responder (server).
//
// # Quick Start
//
// A minimal exchange:
//
//	import (
//	    "github.com/qosst/qosst-go/pkg/auth"
//	    "github.com/qosst/qosst-go/pkg/codes"
//	    "github.com/qosst/qosst-go/pkg/control"
//	)
//
//	// Responder (Alice)
//	server := control.NewServer("127.0.0.1", 8181, auth.None(), control.DefaultServerConfig())
//	server.Open()
//	server.Connect(ctx)
//	code, payload, err := server.Recv(ctx)
//
//	// Initiator (Bob)
//	client := control.NewClient("127.0.0.1", 8181, auth.None(), control.DefaultClientConfig())
//	client.Open()
//	client.Connect()
//	code, payload, err := client.Request(ctx, codes.IdentificationRequest, map[string]any{"version": "0.2"})
//
// # Package Structure
//
//   - pkg/codes: the closed QOSST/0.2 message code enumeration
//   - pkg/frame: wire codec (signed frames) and the rolling challenge ledger
//   - pkg/auth: digest signing capability (identity and ML-DSA-87)
//   - pkg/control: connection state machine and the Client/Server role adapters
//   - pkg/metrics: logging, tracing and frame counters
//   - pkg/version: software and protocol version
//   - internal/constants: protocol constants
//   - internal/errors: error types shared across packages
//   - internal/config: TOML configuration loading
//   - cmd/qosst: operator CLI (keygen, serve, identify)
//
// # Security Properties
//
// Every frame carries a signature over the SHA-256 digest of its header and
// payload bytes, plus a single-use challenge binding it to the immediately
// preceding exchange. Replaying a captured frame after the session has
// advanced fails authentication. The control channel is authenticated, not
// encrypted: the QKD security proof needs the integrity and ordering of the
// classical messages, not their confidentiality.
//
// Signature schemes are pluggable. The identity scheme (no authentication)
// is intended for trusted lab setups; ML-DSA-87 provides post-quantum
// lattice-based signatures via cloudflare/circl.
package qosstgo
