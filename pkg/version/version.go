// Package version exposes the software version and the control protocol
// version this build speaks.
package version

import (
	"fmt"

	"github.com/qosst/qosst-go/internal/constants"
)

// Semantic version components.
const (
	// Major is the major version (breaking changes).
	Major = 0
	// Minor is the minor version (new features).
	Minor = 2
	// Patch is the patch version (bug fixes).
	Patch = 0
	// Label is the optional pre-release label.
	Label = ""
)

// String returns the full version string.
func String() string {
	v := fmt.Sprintf("v%d.%d.%d", Major, Minor, Patch)
	if Label != "" {
		v += "-" + Label
	}
	return v
}

// Full returns a descriptive version string including the protocol version.
func Full() string {
	return fmt.Sprintf("qosst-go %s (protocol %s/%s)",
		String(), constants.ProtocolName, constants.ProtocolVersion)
}

// Protocol returns the control protocol version used in the identification
// exchange. Peers with different protocol versions refuse to talk.
func Protocol() string {
	return constants.ProtocolVersion
}

// Compatible reports whether a peer announcing the given protocol version
// can interoperate with this build. The protocol has no negotiation, only
// an exact match.
func Compatible(peer string) bool {
	return peer == constants.ProtocolVersion
}
