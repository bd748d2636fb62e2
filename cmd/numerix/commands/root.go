package commands

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"numerix/internal/app"
)

var errPassphraseRequired = errors.New("passphrase required (-p)")

var (
	home       string
	passphrase string
	randomWalk bool
	appCtx     *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "numerix",
		Short: "Textbook RSA encryption and ElGamal signatures",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".numerix")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			appCtx = app.New(app.Config{Home: home, Random: randomWalk})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "key dir (default ~/.numerix)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect keys")
	root.PersistentFlags().BoolVar(&randomWalk, "random-generator", false, "discover group generators by random sampling instead of linear scan")

	root.AddCommand(keygenCmd(), encryptCmd(), decryptCmd(), signCmd(), verifyCmd())
	return root.Execute()
}

func requirePassphrase() error {
	if passphrase == "" {
		return errPassphraseRequired
	}
	return nil
}
