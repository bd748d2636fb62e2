package commands

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"numerix/internal/scheme/elgamal"
)

// verify <message> <r> <s>: check a signature against the stored key.
func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <message> <r> <s>",
		Short: "Verify an ElGamal signature against the stored key",
		Args:  cobra.ExactArgs(3),
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

			r, ok := new(big.Int).SetString(args[1], 10)
			if !ok {
				return fmt.Errorf("r %q is not a decimal integer", args[1])
			}
			s, ok := new(big.Int).SetString(args[2], 10)
			if !ok {
				return fmt.Errorf("s %q is not a decimal integer", args[2])
			}

			if !elgamal.Verify(&key.PublicKey, []byte(args[0]), r, s) {
				fmt.Println("invalid")
				return errors.New("signature does not verify")
			}
			fmt.Println("valid")
			return nil
		},
	}
}
