package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/empmanag/pkg/persistence"
	"github.com/xiaomi388/empmanag/pkg/types"
)

var (
	fromBackend string
	toBackend   string
	sourcePath  string
	destPath    string
)

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "migrate employee records between storage backends",
	Long:  `Migrate employee records from one storage backend to another (e.g. json to sqlite).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := Run(fromBackend, sourcePath, toBackend, destPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Successfully migrated %d record(s) from %s (%s) to %s (%s).\n",
			res.Count, fromBackend, res.Source, toBackend, res.Dest)
		fmt.Fprintln(out, "Update your config.yaml to use the new backend:")
		fmt.Fprintln(out, "  storage:")
		fmt.Fprintf(out, "    backend: %s\n", toBackend)
		return nil
	},
}

func init() {
	MigrateCmd.Flags().StringVar(&fromBackend, "from", persistence.BackendJSON, "source backend (json or sqlite)")
	MigrateCmd.Flags().StringVar(&toBackend, "to", persistence.BackendSQLite, "destination backend (json or sqlite)")
	MigrateCmd.Flags().StringVar(&sourcePath, "source", "", "source file path (defaults based on backend)")
	MigrateCmd.Flags().StringVar(&destPath, "dest", "", "destination file path (defaults based on backend)")
}

// Result describes a finished migration.
type Result struct {
	Count  int
	Source string
	Dest   string
}

// Run copies every record from the source backend to the destination backend,
// replacing what the destination held.
func Run(from, source, to, dest string) (Result, error) {
	srcCfg := types.StorageConfig{Backend: from, Path: source}
	dstCfg := types.StorageConfig{Backend: to, Path: dest}

	same, err := persistence.SameLocation(srcCfg, dstCfg)
	if err != nil {
		return Result{}, err
	}
	if same {
		return Result{}, fmt.Errorf("source and destination are the same file")
	}

	src, err := persistence.NewStore(srcCfg)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open source store: %w", err)
	}
	defer src.Close()

	dst, err := persistence.NewStore(dstCfg)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open destination store: %w", err)
	}
	defer dst.Close()

	records, err := src.LoadRecords()
	if err != nil {
		return Result{}, fmt.Errorf("failed to load from source: %w", err)
	}

	if err := dst.DumpRecords(records); err != nil {
		return Result{}, fmt.Errorf("failed to write to destination: %w", err)
	}

	return Result{Count: len(records), Source: src.Path(), Dest: dst.Path()}, nil
}
