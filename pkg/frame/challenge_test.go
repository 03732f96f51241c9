package frame_test

import (
	"strings"
	"testing"

	"github.com/qosst/qosst-go/internal/constants"
	"github.com/qosst/qosst-go/pkg/codes"
	"github.com/qosst/qosst-go/pkg/frame"
)

func TestNewChallenge(t *testing.T) {
	c1, err := frame.NewChallenge()
	if err != nil {
		t.Fatalf("NewChallenge failed: %v", err)
	}
	if len(c1) != constants.ChallengeLength {
		t.Errorf("length = %d, want %d", len(c1), constants.ChallengeLength)
	}
	for _, r := range c1 {
		if !strings.ContainsRune(constants.ChallengeAlphabet, r) {
			t.Errorf("challenge contains %q outside the alphabet", r)
		}
	}

	c2, err := frame.NewChallenge()
	if err != nil {
		t.Fatalf("NewChallenge failed: %v", err)
	}
	if c1 == c2 {
		t.Error("two challenges should not collide")
	}
}

func TestLedgerStamp(t *testing.T) {
	l := &frame.Ledger{}
	if l.Pending() != "" {
		t.Errorf("fresh ledger pending = %q, want empty", l.Pending())
	}

	challenge, next, err := l.Stamp()
	if err != nil {
		t.Fatalf("Stamp failed: %v", err)
	}
	if challenge != "" {
		t.Errorf("first stamp challenge = %q, want empty", challenge)
	}
	if l.Pending() != next {
		t.Error("pending should be the freshly generated next challenge")
	}

	challenge2, next2, err := l.Stamp()
	if err != nil {
		t.Fatalf("Stamp failed: %v", err)
	}
	if challenge2 != next {
		t.Error("second stamp should carry the previously stored value")
	}
	if next2 == next {
		t.Error("next challenges should rotate")
	}
}

func TestLedgerValidate(t *testing.T) {
	l := &frame.Ledger{}
	_, expected, err := l.Stamp()
	if err != nil {
		t.Fatalf("Stamp failed: %v", err)
	}

	// Wrong challenge on a normal code: reject and keep pending.
	if l.Validate(codes.QIERequest, "wrong", "adopted") {
		t.Error("mismatched challenge should be rejected")
	}
	if l.Pending() != expected {
		t.Error("rejected frame must not advance the ledger")
	}

	// Correct challenge: accept and adopt.
	if !l.Validate(codes.QIERequest, expected, "adopted") {
		t.Error("matching challenge should be accepted")
	}
	if l.Pending() != "adopted" {
		t.Errorf("pending = %q, want %q", l.Pending(), "adopted")
	}

	// IDENTIFICATION_REQUEST bypasses the check and still adopts.
	if !l.Validate(codes.IdentificationRequest, "anything", "rebootstrapped") {
		t.Error("IDENTIFICATION_REQUEST must be accepted unconditionally")
	}
	if l.Pending() != "rebootstrapped" {
		t.Errorf("pending = %q, want %q", l.Pending(), "rebootstrapped")
	}
}
