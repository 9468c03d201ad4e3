package commands

import (
	"github.com/spf13/cobra"

	"shopetl/internal/report"
	"shopetl/internal/storage/sqlite"
)

var reportDB string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run an aggregate report over a populated store",
}

var reportCustomersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Top 10 customers by lifetime value",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sqlite.Open(reportDB)
		if err != nil {
			return err
		}
		defer db.Close()

		rows, err := report.CustomerRevenue(cmd.Context(), db)
		if err != nil {
			return err
		}
		return report.RenderCustomerRevenue(cmd.OutOrStdout(), rows)
	},
}

var reportCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Gross revenue per product category",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sqlite.Open(reportDB)
		if err != nil {
			return err
		}
		defer db.Close()

		rows, err := report.CategoryRevenue(cmd.Context(), db)
		if err != nil {
			return err
		}
		return report.RenderCategoryRevenue(cmd.OutOrStdout(), rows)
	},
}

func init() {
	reportCmd.PersistentFlags().StringVar(&reportDB, "db", "data/sqlite/ecommerce.db", "Path to the SQLite database")
	reportCmd.AddCommand(reportCustomersCmd, reportCategoriesCmd)
	rootCmd.AddCommand(reportCmd)
}
