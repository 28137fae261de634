package list

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/empmanag/pkg/employee"
)

// ListCmd represents the list command
var ListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"view"},
	Short:   "show all employees",
	Run: func(cmd *cobra.Command, _ []string) {
		if err := employee.List(cmd.OutOrStdout()); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}
