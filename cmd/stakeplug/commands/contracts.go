package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"stakeplug/internal/domain"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <plugin> <args.json|->",
		Short: "Check contract arguments against a plugin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readArgs(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}
			if err := appCtx.Contracts.Validate(domain.PluginName(args[0]), raw); err != nil {
				return err
			}
			_, _ = okColor.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func createCmd() *cobra.Command {
	var funds uint64
	cmd := &cobra.Command{
		Use:   "create <plugin> <args.json|->",
		Short: "Compile a contract and store it locally",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readArgs(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}
			rec, err := appCtx.Contracts.CreateContract(domain.PluginName(args[0]), raw, domain.Amount(funds))
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

func contractsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contracts [id]",
		Short: "List stored contracts, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				rec, err := appCtx.Contracts.GetContract(domain.ContractID(args[0]))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), rec)
			}
			recs, err := appCtx.Contracts.ListContracts()
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
