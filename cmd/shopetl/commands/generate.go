package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopetl/internal/gen"
)

var genOpts gen.Options

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the synthetic CSV dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := gen.Run(genOpts)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(),
			"wrote %s: %d customers, %d products, %d orders, %d order items, %d payments\n",
			genOpts.OutputDir,
			len(d.Customers), len(d.Products), len(d.Orders), len(d.OrderItems), len(d.Payments))
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVar(&genOpts.Customers, "customers", 200, "Number of customers")
	generateCmd.Flags().IntVar(&genOpts.Products, "products", 80, "Number of products")
	generateCmd.Flags().IntVar(&genOpts.Orders, "orders", 400, "Number of orders")
	generateCmd.Flags().IntVar(&genOpts.MaxItemsPerOrder, "max-items-per-order", 4, "Maximum number of line items per order")
	generateCmd.Flags().Int64Var(&genOpts.Seed, "seed", 1337, "Seed for deterministic output")
	generateCmd.Flags().StringVar(&genOpts.OutputDir, "output-dir", "data/raw", "Directory to write CSV files into")
	rootCmd.AddCommand(generateCmd)
}
