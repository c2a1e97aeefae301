package commands

import (
	"github.com/spf13/cobra"

	"stakeplug/internal/app"
	"stakeplug/internal/plugin"
	_ "stakeplug/internal/plugins/all"
)

var (
	home       string
	hostURL    string
	passphrase string
	appCtx     *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "stakeplug",
		Short:        "Contract plugin host and staking key manager",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(app.Config{Home: home, HostURL: hostURL})
			if err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg, plugin.Default)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.stakeplug)")
	root.PersistentFlags().StringVar(&hostURL, "host", "", "plugin host base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting private keys")

	root.AddCommand(
		pluginsCmd(), pluginCmd(), schemaCmd(), logoCmd(),
		validateCmd(), createCmd(), contractsCmd(),
		keysCmd(), remoteCmd(),
	)
	return root
}
