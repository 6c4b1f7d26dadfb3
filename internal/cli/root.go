package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"todo-list/internal/config"
)

// NewRootCmd builds the todo command tree. Each call gets its own viper
// instance so tests can run commands side by side.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	cfg := config.New()

	root := &cobra.Command{
		Use:   "todo",
		Short: "In-memory task list manager",
		Long: `todo keeps a prioritised task list in memory and exposes it over
an HTTP API (serve) or an interactive line shell (shell).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(v, v.GetString("config"))
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	root.PersistentFlags().StringP("config", "c", "", "config file (yaml, json or toml)")
	root.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")
	_ = v.BindPFlag("config", root.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("logging.level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newServeCmd(v, &cfg))
	root.AddCommand(newShellCmd(v, &cfg))

	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
