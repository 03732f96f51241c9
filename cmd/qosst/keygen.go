package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/qosst/qosst-go/pkg/auth"
)

var (
	keygenDir    string
	keygenPrefix string
	keygenForce  bool
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate an ML-DSA-87 signing key pair",
	Long:  "Generates an ML-DSA-87 key pair and writes it as two PEM files.\nThe public key file is handed to the peer; the secret key file stays local.",
	RunE: func(cmd *cobra.Command, args []string) error {
		publicKey, secretKey, err := auth.GenerateMLDSAKeyPair()
		if err != nil {
			return err
		}

		publicName := keygenPrefix + "_public.pem"
		secretName := keygenPrefix + "_secret.pem"
		if err := auth.SaveKeyPair(publicKey, secretKey, keygenDir, publicName, secretName, keygenForce); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "public key:  %s\n", filepath.Join(keygenDir, publicName))
		fmt.Fprintf(out, "secret key:  %s\n", filepath.Join(keygenDir, secretName))
		fmt.Fprintf(out, "fingerprint: %s\n", auth.Fingerprint(publicKey))
		return nil
	},
}

func init() {
	keygenCmd.Flags().StringVarP(&keygenDir, "dir", "d", ".", "directory for the key files")
	keygenCmd.Flags().StringVar(&keygenPrefix, "prefix", "qosst", "file name prefix for the key pair")
	keygenCmd.Flags().BoolVarP(&keygenForce, "force", "f", false, "overwrite existing key files")
	rootCmd.AddCommand(keygenCmd)
}
