// Package constants defines the protocol constants of the QOSST/0.2 control
// channel.
//
// These values are fixed by the protocol: both parties must agree on the
// default port, the challenge length and the framing limits for a session to
// proceed.
package constants

import "time"

// Protocol identification
const (
	// ProtocolVersion is the version string exchanged during identification.
	ProtocolVersion = "0.2"

	// ProtocolName is the human-readable protocol name.
	ProtocolName = "QOSST"
)

// Network defaults
const (
	// DefaultHost is the default bind/connect address.
	DefaultHost = "127.0.0.1"

	// DefaultPort is the protocol-defined default TCP port.
	DefaultPort = 8181

	// ReadingBuffer is the chunk size used when draining the socket.
	ReadingBuffer = 4096
)

// Challenge parameters
const (
	// ChallengeLength is the length in characters of the rolling
	// authentication challenge.
	ChallengeLength = 64

	// ChallengeAlphabet is the alphabet challenges are drawn from.
	ChallengeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Framing limits
const (
	// FixedHeaderSize is the size of the fixed header: two big-endian
	// uint16 length fields (variable header length, signature length).
	FixedHeaderSize = 4

	// MaxVariableHeaderSize is the largest serialized variable header the
	// fixed header can describe.
	MaxVariableHeaderSize = 1<<16 - 1

	// MaxSignatureSize is the largest signature the fixed header can
	// describe.
	MaxSignatureSize = 1<<16 - 1

	// MaxContentLength caps the payload size a receiver will allocate.
	// The wire format itself has no bound; the cap protects the receiver
	// from a buggy or hostile peer claiming an enormous content_length.
	MaxContentLength = 1 << 26 // 64 MiB
)

// Timing
const (
	// PollInterval is the slice used when waiting for readability or for
	// an incoming peer, so waits stay cancellable.
	PollInterval = 100 * time.Millisecond
)
