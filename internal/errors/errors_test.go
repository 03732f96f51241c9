package errors_test

import (
	stderrors "errors"
	"strings"
	"testing"

	qerrors "github.com/qosst/qosst-go/internal/errors"
)

func TestConfigErrorWrapping(t *testing.T) {
	inner := stderrors.New("missing key file")
	err := qerrors.NewConfigError("authentication", inner)

	if !qerrors.Is(err, inner) {
		t.Error("ConfigError should unwrap to inner error")
	}
	if !strings.Contains(err.Error(), "authentication") {
		t.Errorf("error message should name the section: %q", err.Error())
	}

	var ce *qerrors.ConfigError
	if !qerrors.As(err, &ce) {
		t.Fatal("As should find ConfigError")
	}
	if ce.Section != "authentication" {
		t.Errorf("Section = %q, want %q", ce.Section, "authentication")
	}
}

func TestAuthErrorWrapping(t *testing.T) {
	err := qerrors.NewAuthError("sign", qerrors.ErrInvalidKey)

	if !qerrors.Is(err, qerrors.ErrInvalidKey) {
		t.Error("AuthError should unwrap to sentinel")
	}
	if !strings.Contains(err.Error(), "sign") {
		t.Errorf("error message should name the operation: %q", err.Error())
	}
}

func TestSentinelsDistinct(t *testing.T) {
	sentinels := []error{
		qerrors.ErrNotOpened,
		qerrors.ErrNotConnected,
		qerrors.ErrAlreadyConnected,
		qerrors.ErrClosed,
		qerrors.ErrHeaderTooLarge,
		qerrors.ErrSignatureTooLarge,
		qerrors.ErrContentTooLarge,
		qerrors.ErrInvalidKey,
		qerrors.ErrUnknownAuthenticator,
		qerrors.ErrKeyExists,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && stderrors.Is(a, b) {
				t.Errorf("sentinel %v should not match %v", a, b)
			}
		}
	}
}
