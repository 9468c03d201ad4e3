package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats monetary values with English grouping (1,234.56). Using a
// fixed locale keeps report output byte-stable across environments.
var printer = message.NewPrinter(language.English)

// RenderCustomerRevenue writes the customer revenue report as an aligned
// table. Rendering is deterministic: identical input rows produce identical
// bytes.
func RenderCustomerRevenue(w io.Writer, rows []CustomerRevenueRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CUSTOMER ID\tNAME\tCOUNTRY\tORDERS\tLIFETIME VALUE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			r.CustomerID, r.Name, r.Country, r.OrdersPlaced,
			printer.Sprintf("%.2f", r.LifetimeValue))
	}
	return tw.Flush()
}

// RenderCategoryRevenue writes the category revenue report as an aligned table.
func RenderCategoryRevenue(w io.Writer, rows []CategoryRevenueRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tORDERS\tGROSS REVENUE\tAVG ORDER VALUE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
			r.Category, r.Orders,
			printer.Sprintf("%.2f", r.GrossRevenue),
			printer.Sprintf("%.2f", r.AvgOrderValue))
	}
	return tw.Flush()
}
