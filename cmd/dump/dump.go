package dump

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/empmanag/pkg/dump"
	"github.com/xiaomi388/empmanag/pkg/render"
)

var format *string

// DumpCmd represents the dump command
var DumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "export all employees as json or yaml",
	Run: func(cmd *cobra.Command, _ []string) {
		if err := dump.Dump(cmd.OutOrStdout(), *format); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	format = DumpCmd.Flags().StringP("format", "f", render.FormatJSON, "output format (json or yaml)")
}
