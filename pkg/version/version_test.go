package version

import (
	"strings"
	"testing"
)

func TestVersionStrings(t *testing.T) {
	v := String()
	if !strings.HasPrefix(v, "v") {
		t.Errorf("version string should start with v, got %s", v)
	}

	full := Full()
	if !strings.Contains(full, "qosst-go") {
		t.Errorf("full version should contain project name, got %s", full)
	}
	if !strings.Contains(full, v) {
		t.Errorf("full version should contain version string, got %s", full)
	}
	if !strings.Contains(full, Protocol()) {
		t.Errorf("full version should contain protocol version, got %s", full)
	}
}

func TestCompatible(t *testing.T) {
	if !Compatible(Protocol()) {
		t.Error("a peer with the same protocol version must be compatible")
	}
	for _, peer := range []string{"", "0.1", "1.0", "0.20"} {
		if Compatible(peer) {
			t.Errorf("peer version %q should not be compatible", peer)
		}
	}
}
