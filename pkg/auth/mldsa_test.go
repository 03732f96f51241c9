package auth_test

import (
	"crypto/sha256"
	"testing"

	"github.com/qosst/qosst-go/pkg/auth"
)

// newPeers builds two authenticators wired to each other's public keys, the
// way Alice and Bob would be configured.
func newPeers(t *testing.T) (*auth.MLDSAAuthenticator, *auth.MLDSAAuthenticator) {
	t.Helper()

	alicePK, aliceSK, err := auth.GenerateMLDSAKeyPair()
	if err != nil {
		t.Fatalf("generate alice keys: %v", err)
	}
	bobPK, bobSK, err := auth.GenerateMLDSAKeyPair()
	if err != nil {
		t.Fatalf("generate bob keys: %v", err)
	}

	alice, err := auth.NewMLDSA(aliceSK, bobPK)
	if err != nil {
		t.Fatalf("NewMLDSA(alice): %v", err)
	}
	bob, err := auth.NewMLDSA(bobSK, alicePK)
	if err != nil {
		t.Fatalf("NewMLDSA(bob): %v", err)
	}
	return alice, bob
}

func TestMLDSASignVerify(t *testing.T) {
	alice, bob := newPeers(t)
	digest := sha256.Sum256([]byte("header||payload"))

	sig, err := alice.SignDigest(digest[:])
	if err != nil {
		t.Fatalf("SignDigest failed: %v", err)
	}
	if len(sig) != alice.SignatureSize() {
		t.Errorf("signature size = %d, want %d", len(sig), alice.SignatureSize())
	}
	if !bob.CheckDigest(digest[:], sig) {
		t.Error("bob should accept alice's signature")
	}
}

func TestMLDSARejectsTamperedDigest(t *testing.T) {
	alice, bob := newPeers(t)
	digest := sha256.Sum256([]byte("header||payload"))

	sig, err := alice.SignDigest(digest[:])
	if err != nil {
		t.Fatalf("SignDigest failed: %v", err)
	}

	tampered := sha256.Sum256([]byte("header||payload'"))
	if bob.CheckDigest(tampered[:], sig) {
		t.Error("signature must not verify for a different digest")
	}

	sig[0] ^= 0x01
	if bob.CheckDigest(digest[:], sig) {
		t.Error("a flipped signature byte must not verify")
	}
}

func TestMLDSARejectsWrongSigner(t *testing.T) {
	alice, _ := newPeers(t)
	// A third party with its own keys.
	_, mallory := newPeers(t)

	digest := sha256.Sum256([]byte("header||payload"))
	sig, err := mallory.SignDigest(digest[:])
	if err != nil {
		t.Fatalf("SignDigest failed: %v", err)
	}
	// Alice verifies against bob's key, not mallory's.
	if alice.CheckDigest(digest[:], sig) {
		t.Error("signature from an unrelated key must not verify")
	}
}

func TestMLDSAInvalidKeyBytes(t *testing.T) {
	if _, err := auth.NewMLDSA([]byte("short"), []byte("short")); err == nil {
		t.Error("NewMLDSA should reject malformed keys")
	}
}

func TestRemoteFingerprint(t *testing.T) {
	alice, bob := newPeers(t)
	if alice.RemoteFingerprint() == "" {
		t.Error("fingerprint should not be empty")
	}
	if alice.RemoteFingerprint() == bob.RemoteFingerprint() {
		t.Error("peers verify different keys, fingerprints should differ")
	}
}
