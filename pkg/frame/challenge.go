package frame

import (
	"crypto/rand"
	"math/big"

	"github.com/qosst/qosst-go/internal/constants"
	"github.com/qosst/qosst-go/pkg/codes"
)

// NewChallenge generates a fresh challenge: a cryptographically random
// alphanumeric string of the protocol-defined length.
func NewChallenge() (string, error) {
	alphabet := constants.ChallengeAlphabet
	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, constants.ChallengeLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}

// Ledger tracks the single rolling challenge of one connection endpoint.
//
// The ledger holds the value this side expects the peer to echo back in its
// next frame. It starts empty and is advanced on every send and every
// accepted receive. A Ledger is owned by exactly one connection and must not
// be shared.
type Ledger struct {
	pending string
}

// Pending returns the challenge currently expected from the peer. Empty
// before the first exchange.
func (l *Ledger) Pending() string {
	return l.pending
}

// Stamp prepares the challenge fields of an outgoing frame. It returns the
// currently pending value (what the peer last asked this side to present)
// and a freshly generated next challenge, which becomes the new pending
// value this side will expect echoed back.
func (l *Ledger) Stamp() (challenge, next string, err error) {
	next, err = NewChallenge()
	if err != nil {
		return "", "", err
	}
	challenge = l.pending
	l.pending = next
	return challenge, next, nil
}

// Validate checks the challenge of a received frame and, on acceptance,
// adopts the peer's next challenge as the new pending value. The two steps
// are a single sequential operation so a frame is never half-accepted.
//
// An IDENTIFICATION_REQUEST is accepted unconditionally: it is the frame
// that initializes or reinitializes the rolling challenge.
func (l *Ledger) Validate(code codes.Code, challenge, next string) bool {
	if challenge != l.pending && code != codes.IdentificationRequest {
		return false
	}
	l.pending = next
	return true
}
