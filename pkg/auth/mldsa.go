package auth

import (
	"encoding/hex"

	"github.com/cloudflare/circl/sign"
	"github.com/cloudflare/circl/sign/mldsa/mldsa87"
	"golang.org/x/crypto/sha3"

	qerrors "github.com/qosst/qosst-go/internal/errors"
)

// MLDSAAuthenticator signs digests with a local ML-DSA-87 private key and
// checks signatures against the remote party's public key.
//
// ML-DSA-87 (FIPS 204, NIST Category 5) is a lattice-based scheme, so the
// authentication of the classical channel stays secure against a quantum
// adversary, matching the security model of the QKD layer it protects.
type MLDSAAuthenticator struct {
	scheme    sign.Scheme
	secretKey sign.PrivateKey
	remoteKey sign.PublicKey
}

// NewMLDSA builds an authenticator from a local private key and the remote
// party's public key, both in their FIPS 204 binary encodings.
func NewMLDSA(secretKey, remotePublicKey []byte) (*MLDSAAuthenticator, error) {
	scheme := mldsa87.Scheme()

	sk, err := scheme.UnmarshalBinaryPrivateKey(secretKey)
	if err != nil {
		return nil, qerrors.NewAuthError("load private key", qerrors.ErrInvalidKey)
	}
	pk, err := scheme.UnmarshalBinaryPublicKey(remotePublicKey)
	if err != nil {
		return nil, qerrors.NewAuthError("load remote public key", qerrors.ErrInvalidKey)
	}

	return &MLDSAAuthenticator{
		scheme:    scheme,
		secretKey: sk,
		remoteKey: pk,
	}, nil
}

// SignDigest signs the digest with the local private key.
func (a *MLDSAAuthenticator) SignDigest(digest []byte) ([]byte, error) {
	return a.scheme.Sign(a.secretKey, digest, nil), nil
}

// CheckDigest verifies the signature over digest with the remote public key.
func (a *MLDSAAuthenticator) CheckDigest(digest, signature []byte) bool {
	return a.scheme.Verify(a.remoteKey, digest, signature, nil)
}

// SignatureSize returns the ML-DSA-87 signature size in bytes.
func (a *MLDSAAuthenticator) SignatureSize() int {
	return a.scheme.SignatureSize()
}

// RemoteFingerprint returns a short SHAKE-derived fingerprint of the remote
// public key, for logging and key cross-checking between operators.
func (a *MLDSAAuthenticator) RemoteFingerprint() string {
	raw, err := a.remoteKey.MarshalBinary()
	if err != nil {
		return ""
	}
	return Fingerprint(raw)
}

// Fingerprint derives a short hex fingerprint of a public key using
// SHAKE-256.
func Fingerprint(publicKey []byte) string {
	var sum [16]byte
	sha3.ShakeSum256(sum[:], publicKey)
	return hex.EncodeToString(sum[:])
}

// GenerateMLDSAKeyPair generates a fresh ML-DSA-87 key pair and returns the
// binary encodings (public, private).
func GenerateMLDSAKeyPair() ([]byte, []byte, error) {
	pk, sk, err := mldsa87.Scheme().GenerateKey()
	if err != nil {
		return nil, nil, qerrors.NewAuthError("generate key pair", err)
	}
	pkBytes, err := pk.MarshalBinary()
	if err != nil {
		return nil, nil, qerrors.NewAuthError("marshal public key", err)
	}
	skBytes, err := sk.MarshalBinary()
	if err != nil {
		return nil, nil, qerrors.NewAuthError("marshal private key", err)
	}
	return pkBytes, skBytes, nil
}
