// Package commands defines the shopetl CLI: generate synthetic CSV data,
// ingest it into a relational store, and run the aggregate reports.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shopetl",
	Short: "Synthetic e-commerce data pipeline",
	Long: `shopetl is a small batch pipeline over a synthetic e-commerce dataset:

  generate  write five related CSV collections (customers, products,
            orders, order_items, payments) with consistent foreign keys
  ingest    load the CSVs into a relational store with typed columns and
            primary/foreign-key constraints
  report    run the fixed aggregate reports over a populated store

Data flows one way: generate -> ingest -> report.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
