package auth

import (
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"

	qerrors "github.com/qosst/qosst-go/internal/errors"
)

// PEM block types for key files.
const (
	pemTypePublic  = "QOSST ML-DSA-87 PUBLIC KEY"
	pemTypePrivate = "QOSST ML-DSA-87 PRIVATE KEY"
)

// SaveKeyPair writes a generated key pair as PEM files under dir, creating
// the directory if needed. Existing files are not overwritten unless force
// is set.
func SaveKeyPair(publicKey, secretKey []byte, dir, publicName, secretName string, force bool) error {
	publicPath := filepath.Join(dir, publicName)
	secretPath := filepath.Join(dir, secretName)

	if !force {
		for _, path := range []string{publicPath, secretPath} {
			if _, err := os.Stat(path); err == nil {
				return qerrors.NewAuthError(fmt.Sprintf("save key pair to %s", path), qerrors.ErrKeyExists)
			}
		}
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return qerrors.NewAuthError("create key directory", err)
	}

	if err := writePEM(publicPath, pemTypePublic, publicKey, 0o644); err != nil {
		return err
	}
	return writePEM(secretPath, pemTypePrivate, secretKey, 0o600)
}

// LoadPublicKey reads an ML-DSA-87 public key from a PEM file.
func LoadPublicKey(path string) ([]byte, error) {
	return readPEM(path, pemTypePublic)
}

// LoadSecretKey reads an ML-DSA-87 private key from a PEM file.
func LoadSecretKey(path string) ([]byte, error) {
	return readPEM(path, pemTypePrivate)
}

func writePEM(path, blockType string, data []byte, mode os.FileMode) error {
	block := &pem.Block{Type: blockType, Bytes: data}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), mode); err != nil {
		return qerrors.NewAuthError(fmt.Sprintf("write %s", path), err)
	}
	return nil
}

func readPEM(path, blockType string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, qerrors.NewAuthError(fmt.Sprintf("read %s", path), err)
	}
	block, _ := pem.Decode(raw)
	if block == nil || block.Type != blockType {
		return nil, qerrors.NewAuthError(fmt.Sprintf("decode %s", path), qerrors.ErrInvalidKey)
	}
	return block.Bytes, nil
}
