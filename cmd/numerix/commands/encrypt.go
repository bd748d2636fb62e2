package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"numerix/internal/codec"
	"numerix/internal/scheme/rsa"
)

// encrypt <in> <out>: RSA-encrypt a text file block by block.
func encryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <plaintext-file> <ciphertext-file>",
		Short: "Encrypt a text file with the stored RSA key",
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

			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			blocks, count := codec.Encode(string(text))

			ct, err := rsa.Encrypt(&key.PublicKey, blocks)
			if err != nil {
				return err
			}
			if err := writeBlockFile(args[1], count, ct); err != nil {
				return err
			}
			fmt.Printf("encrypted %d blocks to %s\n", len(ct), args[1])
			return nil
		},
	}
}
