package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"stakeplug/internal/domain"
)

func remoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Talk to a plugin host (--host)",
	}
	cmd.AddCommand(remotePluginsCmd(), remoteCreateCmd(), remoteContractsCmd())
	return cmd
}

func remotePluginsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List the host's plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := appCtx.Host.ListPlugins(cmd.Context())
			if err != nil {
				return err
			}
			for _, m := range ms {
				printManifest(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
}

func remoteCreateCmd() *cobra.Command {
	var funds uint64
	cmd := &cobra.Command{
		Use:   "create <plugin> <args.json|->",
		Short: "Compile a contract on the host",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readArgs(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}
			rec, err := appCtx.Host.CreateContract(cmd.Context(), domain.PluginName(args[0]), raw, domain.Amount(funds))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), rec)
		},
	}
	cmd.Flags().Uint64Var(&funds, "funds", 0, "amount locked in the contract, in satoshis")
	_ = cmd.MarkFlagRequired("funds")
	return cmd
}

func remoteContractsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contracts [id]",
		Short: "List the host's contracts, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				rec, err := appCtx.Host.FetchContract(cmd.Context(), domain.ContractID(args[0]))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), rec)
			}
			recs, err := appCtx.Host.ListContracts(cmd.Context())
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no contracts")
			}
			for _, rec := range recs {
				printRecordLine(cmd.OutOrStdout(), rec)
			}
			return nil
		},
	}
}
