package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"numerix/internal/domain"
	"numerix/internal/scheme/elgamal"
	"numerix/internal/scheme/rsa"
)

func keygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair and store it securely",
	}
	cmd.AddCommand(keygenRSACmd(), keygenElGamalCmd())
	return cmd
}

func keygenRSACmd() *cobra.Command {
	var bits int
	cmd := &cobra.Command{
		Use:   "rsa",
		Short: "Generate an RSA key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			key, err := rsa.GenerateKey(appCtx.Rand, bits)
			if err != nil {
				return err
			}
			if err := appCtx.Keyring.SaveRSA(passphrase, domain.RecordRSA(key)); err != nil {
				return err
			}
			fmt.Printf("RSA key pair created (%d-bit modulus).\n", key.N.BitLen())
			fmt.Printf("n: %s\n", key.N)
			fmt.Printf("e: %s\n", key.E)
			return nil
		},
	}
	cmd.Flags().IntVar(&bits, "bits", rsa.DefaultBits, "size of each prime factor")
	return cmd
}

func keygenElGamalCmd() *cobra.Command {
	var bits int
	cmd := &cobra.Command{
		Use:   "elgamal",
		Short: "Generate an ElGamal signing key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			key, err := elgamal.GenerateKey(appCtx.Rand, bits, appCtx.Finder)
			if err != nil {
				return err
			}
			if err := appCtx.Keyring.SaveElGamal(passphrase, domain.RecordElGamal(key)); err != nil {
				return err
			}
			fmt.Printf("ElGamal key pair created (%d-bit safe prime).\n", key.P.BitLen())
			fmt.Printf("p: %s\n", key.P)
			fmt.Printf("g: %s\n", key.G)
			fmt.Printf("y: %s\n", key.Y)
			return nil
		},
	}
	cmd.Flags().IntVar(&bits, "bits", elgamal.DefaultBits, "safe prime size")
	return cmd
}
