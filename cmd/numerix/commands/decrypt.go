package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"numerix/internal/codec"
	"numerix/internal/scheme/rsa"
)

// decrypt <in> <out>: invert encrypt.
func decryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <ciphertext-file> <plaintext-file>",
		Short: "Decrypt a ciphertext file with the stored RSA key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			record, err := appCtx.Keyring.LoadRSA(passphrase)
			if err != nil {
				return err
			}
			key, err := record.Key()
			if err != nil {
				return err
			}

			count, ct, err := readBlockFile(args[0])
			if err != nil {
				return err
			}
			text, err := codec.Decode(rsa.Decrypt(key, ct), count)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[1], []byte(text), 0o644); err != nil {
				return err
			}
			fmt.Printf("decrypted %d blocks to %s\n", len(ct), args[1])
			return nil
		},
	}
}
