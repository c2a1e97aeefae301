package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stakeplug/internal/domain"
)

func pluginsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List registered contract plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, m := range appCtx.Plugins.Manifests() {
				printManifest(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
}

func pluginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plugin <name>",
		Short: "Show a plugin's manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := appCtx.Plugins.Lookup(domain.PluginName(args[0]))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), reg.Manifest())
		},
	}
}

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <plugin>",
		Short: "Print a plugin's argument schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := appCtx.Plugins.Lookup(domain.PluginName(args[0]))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), reg.Schema())
		},
	}
}

func logoCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "logo <plugin>",
		Short: "Write a plugin's logo to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := appCtx.Plugins.Lookup(domain.PluginName(args[0]))
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, reg.Logo(), 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", out, reg.LogoContentType())
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "file to write the logo to")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
