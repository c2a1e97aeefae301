package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"stakeplug/internal/crypto"
	"stakeplug/internal/domain"
)

var errNoPassphrase = errors.New("passphrase required (-p)")

func keysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage staking and signing keys",
	}
	cmd.AddCommand(keysNewCmd(), keysListCmd(), keysShowCmd(), keysSignCmd(), keysVerifyCmd())
	return cmd
}

func keysNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "Generate a key pair and store it encrypted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return errNoPassphrase
			}
			info, err := appCtx.Keys.GenerateKey(passphrase, domain.KeyName(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = okColor.Fprintf(out, "Key %s created.\n", info.Name)
			fmt.Fprintf(out, "Public key:  %s\nFingerprint: %s\n", info.PublicKey, info.Fingerprint)
			return nil
		},
	}
}

func keysListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := appCtx.Keys.ListKeys()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, info := range infos {
				_, _ = nameColor.Fprint(out, info.Name)
				fmt.Fprintf(out, "  %s  %s\n", info.Fingerprint, info.PublicKey)
			}
			return nil
		},
	}
}

func keysShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a key's public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := appCtx.Keys.PublicKey(domain.KeyName(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pub)
			return nil
		},
	}
}

func keysSignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <name> <message>",
		Short: "Sign a message with a stored key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return errNoPassphrase
			}
			sig, err := appCtx.Keys.Sign(passphrase, domain.KeyName(args[0]), []byte(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), crypto.Hex(sig))
			return nil
		},
	}
}

func keysVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <public-key> <message> <signature>",
		Short: "Verify a signature made by keys sign",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pub domain.PublicKey
			if err := pub.UnmarshalText([]byte(args[0])); err != nil {
				return err
			}
			sig, err := crypto.ParseHex(args[2])
			if err != nil {
				return fmt.Errorf("signature: %w", err)
			}
			if err := appCtx.Keys.Verify(pub, []byte(args[1]), sig); err != nil {
				return err
			}
			_, _ = okColor.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}
