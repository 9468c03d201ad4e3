package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopetl/internal/ingest"
	"shopetl/internal/schema"

	// register all storage backends with the factory.
	_ "shopetl/internal/storage/all"
)

var ingestOpts ingest.Options

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load the generated CSVs into the relational store",
	Long: `Load the five generated CSV files into a relational store with typed
columns and primary/foreign-key constraints.

By default the destination is destroyed and rebuilt: the new store is built
in a temporary file and swapped into place only after every table loaded, so
a failed run leaves the previous store untouched. With --keep-existing the
store is opened as-is and rows are appended; rerunning against already
loaded data then fails on the primary-key constraint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sum, err := ingest.Run(cmd.Context(), ingestOpts)
		if err != nil {
			return err
		}
		for _, c := range schema.Entities() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows\n", c.Table, sum.Rows[c.Table])
		}
		return nil
	},
}

func init() {
	ingestCmd.Flags().StringVar(&ingestOpts.RawDir, "raw-dir", "data/raw", "Directory containing generated CSV files")
	ingestCmd.Flags().StringVar(&ingestOpts.StorePath, "db", "data/sqlite/ecommerce.db", "Path to the output SQLite database")
	ingestCmd.Flags().BoolVar(&ingestOpts.KeepExisting, "keep-existing", false, "Append to the existing database instead of rebuilding it")
	ingestCmd.Flags().StringVar(&ingestOpts.Kind, "kind", "sqlite", "Storage backend (sqlite, postgres)")
	ingestCmd.Flags().StringVar(&ingestOpts.DSN, "dsn", "", "Connection string for server backends (postgres)")
	rootCmd.AddCommand(ingestCmd)
}
