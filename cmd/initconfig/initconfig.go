package initconfig

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/empmanag/pkg/config"
)

var force *bool

// InitCmd represents the init command
var InitCmd = &cobra.Command{
	Use:   "init",
	Short: "write a default config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if _, err := os.Stat(config.ConfigPath); err == nil && !*force {
			return fmt.Errorf("%s already exists, use --force to overwrite it", config.ConfigPath)
		}

		if err := config.Dump(config.ConfigPath, config.Default()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %q.\n", config.ConfigPath)
		return nil
	},
}

func init() {
	force = InitCmd.Flags().Bool("force", false, "overwrite an existing config file")
}
