package constants_test

import (
	"strings"
	"testing"

	"github.com/qosst/qosst-go/internal/constants"
)

func TestChallengeAlphabet(t *testing.T) {
	// Alphanumeric only, no duplicates.
	seen := make(map[rune]bool)
	for _, r := range constants.ChallengeAlphabet {
		if seen[r] {
			t.Errorf("duplicate rune %q in challenge alphabet", r)
		}
		seen[r] = true
		if !strings.ContainsRune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", r) {
			t.Errorf("non-alphanumeric rune %q in challenge alphabet", r)
		}
	}
	if len(seen) != 62 {
		t.Errorf("alphabet size = %d, want 62", len(seen))
	}
}

func TestFramingLimits(t *testing.T) {
	if constants.MaxVariableHeaderSize != 65535 {
		t.Errorf("MaxVariableHeaderSize = %d, want 65535", constants.MaxVariableHeaderSize)
	}
	if constants.MaxSignatureSize != 65535 {
		t.Errorf("MaxSignatureSize = %d, want 65535", constants.MaxSignatureSize)
	}
	if constants.MaxContentLength <= 0 {
		t.Error("MaxContentLength must be positive")
	}
	if constants.FixedHeaderSize != 4 {
		t.Errorf("FixedHeaderSize = %d, want 4", constants.FixedHeaderSize)
	}
}
