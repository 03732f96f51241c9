package auth

import (
	"fmt"

	qerrors "github.com/qosst/qosst-go/internal/errors"
)

// Params carries the configuration parameters of an authenticator. For
// "mldsa87" the expected keys are "secret_key_file" and
// "remote_public_key_file"; "none" takes no parameters.
type Params map[string]string

// New builds an authenticator from its configuration name and parameters.
func New(name string, params Params) (Authenticator, error) {
	switch name {
	case "", "none":
		return None(), nil
	case "mldsa87":
		sk, err := requireKeyFile(params, "secret_key_file", LoadSecretKey)
		if err != nil {
			return nil, err
		}
		pk, err := requireKeyFile(params, "remote_public_key_file", LoadPublicKey)
		if err != nil {
			return nil, err
		}
		return NewMLDSA(sk, pk)
	default:
		return nil, qerrors.NewAuthError(fmt.Sprintf("select %q", name), qerrors.ErrUnknownAuthenticator)
	}
}

func requireKeyFile(params Params, key string, load func(string) ([]byte, error)) ([]byte, error) {
	path, ok := params[key]
	if !ok || path == "" {
		return nil, qerrors.NewAuthError(fmt.Sprintf("missing parameter %q", key), qerrors.ErrInvalidKey)
	}
	return load(path)
}
