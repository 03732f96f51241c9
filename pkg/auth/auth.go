// Package auth provides the digest signing capability of the QOSST control
// protocol.
//
// The protocol core only needs two operations: sign a digest, and check a
// digest against a signature. Implementations are selected by configuration
// name:
//
//	"none"    identity scheme, no cryptographic value, for trusted setups
//	"mldsa87" ML-DSA-87 post-quantum lattice-based signatures (FIPS 204)
package auth

import (
	"crypto/subtle"
)

// Authenticator signs outgoing frame digests and checks incoming ones.
// Implementations must be safe for sequential reuse on a single connection;
// they are not required to be safe for concurrent use.
type Authenticator interface {
	// SignDigest signs a digest and returns the signature.
	SignDigest(digest []byte) ([]byte, error)

	// CheckDigest reports whether signature is valid for digest under the
	// peer's verification key.
	CheckDigest(digest, signature []byte) bool
}

// NoneAuthenticator is the identity scheme: the "signature" is the digest
// itself and checking is byte equality. It provides integrity against
// accidental corruption only, not against an adversary.
type NoneAuthenticator struct{}

// None returns the identity authenticator.
func None() NoneAuthenticator {
	return NoneAuthenticator{}
}

// SignDigest returns the digest unchanged.
func (NoneAuthenticator) SignDigest(digest []byte) ([]byte, error) {
	return digest, nil
}

// CheckDigest reports whether signature equals digest. The comparison is
// constant time; pointless for the identity scheme but it keeps the check
// path uniform across authenticators.
func (NoneAuthenticator) CheckDigest(digest, signature []byte) bool {
	if len(digest) != len(signature) {
		return false
	}
	return subtle.ConstantTimeCompare(digest, signature) == 1
}
