package delete

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/empmanag/pkg/employee"
)

var id *int

// DeleteCmd represents the delete command
var DeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "delete an employee",
	Run: func(cmd *cobra.Command, _ []string) {
		if err := employee.Delete(cmd.OutOrStdout(), *id); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	id = DeleteCmd.Flags().Int("id", 0, "employee ID to delete")
	_ = DeleteCmd.MarkFlagRequired("id")
}
