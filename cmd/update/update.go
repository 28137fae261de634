package update

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/empmanag/pkg/employee"
	"github.com/xiaomi388/empmanag/pkg/form"
)

var (
	id    *int
	field *string
	value *string
)

// UpdateCmd represents the update command
var UpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "update one field of an employee",
	Run: func(cmd *cobra.Command, _ []string) {
		err := employee.Update(cmd.OutOrStdout(), *id, *field, *value)
		if errors.Is(err, employee.ErrNotFound) {
			fmt.Println("Employee not found.")
			os.Exit(1)
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	id = UpdateCmd.Flags().Int("id", 0, "employee ID to update")
	_ = UpdateCmd.MarkFlagRequired("id")

	field = UpdateCmd.Flags().String("field", "", "field to update: "+strings.Join(form.EditableFields, ", "))
	_ = UpdateCmd.MarkFlagRequired("field")

	value = UpdateCmd.Flags().String("value", "", "new value for the field")
	_ = UpdateCmd.MarkFlagRequired("value")
}
