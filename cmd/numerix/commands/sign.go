package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"numerix/internal/scheme/elgamal"
)

// sign <message>: sign a message with the stored ElGamal key.
func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <message>",
		Short: "Sign a message with the stored ElGamal key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			record, err := appCtx.Keyring.LoadElGamal(passphrase)
			if err != nil {
				return err
			}
			key, err := record.Key()
			if err != nil {
				return err
			}

			r, s, err := elgamal.Sign(appCtx.Rand, key, []byte(args[0]))
			if err != nil {
				return err
			}
			fmt.Printf("r: %s\ns: %s\n", r, s)
			return nil
		},
	}
}
