package add

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/empmanag/pkg/employee"
	"github.com/xiaomi388/empmanag/pkg/form"
)

var (
	name       *string
	age        *int
	department *string
	position   *string
	salary     *float64
)

// AddCmd represents the add command
var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "add an employee",
	Run: func(cmd *cobra.Command, _ []string) {
		err := employee.Add(cmd.OutOrStdout(), form.Employee{
			Name:       *name,
			Age:        *age,
			Department: *department,
			Position:   *position,
			Salary:     *salary,
		})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	name = AddCmd.Flags().String("name", "", "employee's name")
	_ = AddCmd.MarkFlagRequired("name")

	age = AddCmd.Flags().Int("age", form.MinAge, fmt.Sprintf("employee's age (%d-%d)", form.MinAge, form.MaxAge))

	department = AddCmd.Flags().String("department", "", "employee's department")
	_ = AddCmd.MarkFlagRequired("department")

	position = AddCmd.Flags().String("position", "", "employee's position")
	_ = AddCmd.MarkFlagRequired("position")

	salary = AddCmd.Flags().Float64("salary", form.MinSalary, fmt.Sprintf("employee's salary (%d-%d)", form.MinSalary, form.MaxSalary))
}
