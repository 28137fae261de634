package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xiaomi388/empmanag/cmd/add"
	"github.com/xiaomi388/empmanag/cmd/delete"
	"github.com/xiaomi388/empmanag/cmd/dump"
	"github.com/xiaomi388/empmanag/cmd/initconfig"
	"github.com/xiaomi388/empmanag/cmd/list"
	"github.com/xiaomi388/empmanag/cmd/migrate"
	"github.com/xiaomi388/empmanag/cmd/update"
	"github.com/xiaomi388/empmanag/pkg/config"
	"github.com/xiaomi388/empmanag/pkg/persistence"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "empmanag",
	Short: "Employee management system",
	Long: `Record employees (name, age, department, position, salary) in a flat JSON file.

Every command loads the records, runs one action and saves the file again
when the action changed something.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&config.ConfigPath, "config", persistence.DefaultConfigPath, "config file")
	rootCmd.PersistentFlags().StringVar(&config.BackendOverride, "backend", "", "storage backend (json or sqlite)")
	rootCmd.PersistentFlags().StringVar(&config.PathOverride, "data", "", "record file path")
	rootCmd.PersistentFlags().BoolVarP(&config.Verbose, "verbose", "v", false, "debug logging")

	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	rootCmd.AddCommand(add.AddCmd)
	rootCmd.AddCommand(list.ListCmd)
	rootCmd.AddCommand(update.UpdateCmd)
	rootCmd.AddCommand(delete.DeleteCmd)
	rootCmd.AddCommand(dump.DumpCmd)
	rootCmd.AddCommand(migrate.MigrateCmd)
	rootCmd.AddCommand(initconfig.InitCmd)
}
