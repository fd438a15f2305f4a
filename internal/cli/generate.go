package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/SscSPs/hisaabi_reports/internal/core/services"
	"github.com/SscSPs/hisaabi_reports/internal/dto"
	"github.com/SscSPs/hisaabi_reports/internal/platform/config"
	"github.com/SscSPs/hisaabi_reports/internal/platform/storage"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(generateCmd)

	f := generateCmd.Flags()
	f.StringP("business", "b", "", "Business ID to report on")
	f.IntP("type", "t", 0, "Report type ID (see 'reportctl catalogue')")
	f.IntP("filter", "f", 0, "Additional filter ID; 0 selects the report default")
	f.StringP("date", "d", "", "Date filter: today, yesterday, last_7_days, this_month, last_month, this_year, last_year, custom, all_time")
	f.String("from", "", "Custom range start (YYYY-MM-DD)")
	f.String("to", "", "Custom range end, inclusive (YYYY-MM-DD)")
	f.String("group-by", "", "Grouping: product, party, product_category, party_area, party_category")
	f.String("sort-by", "", "Sort order, e.g. title_asc or balance_desc")
	f.String("party", "", "Selected party ID")
	f.String("product", "", "Selected product ID")
	f.String("warehouse", "", "Selected warehouse ID")
	f.String("investor", "", "Selected investor ID")
	f.String("payment-method", "", "Selected payment method ID")
	f.Bool("json", false, "Print the report as JSON")

	_ = generateCmd.MarkFlagRequired("business")
	_ = generateCmd.MarkFlagRequired("type")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one report",
	Long: `Generate one report for a business and print it.

Examples:
  reportctl generate -b shop-1 -t 1 -f 7 -d this_year
  reportctl generate -b shop-1 -t 9 -f 20 --party p-42 --from 2024-01-01 --to 2024-03-31 --json`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func requestFromFlags(cmd *cobra.Command) dto.GenerateReportRequest {
	f := cmd.Flags()
	str := func(name string) string {
		v, _ := f.GetString(name)
		return strings.TrimSpace(v)
	}
	reportType, _ := f.GetInt("type")
	filter, _ := f.GetInt("filter")

	req := dto.GenerateReportRequest{
		ReportType:              reportType,
		AdditionalFilter:        filter,
		DateFilter:              str("date"),
		GroupBy:                 str("group-by"),
		SortBy:                  str("sort-by"),
		CustomStartDate:         str("from"),
		CustomEndDate:           str("to"),
		SelectedPartyID:         str("party"),
		SelectedProductID:       str("product"),
		SelectedWarehouseID:     str("warehouse"),
		SelectedInvestorID:      str("investor"),
		SelectedPaymentMethodID: str("payment-method"),
	}
	if req.DateFilter == "" && (req.CustomStartDate != "" || req.CustomEndDate != "") {
		req.DateFilter = string(domain.DateCustom)
	}
	return req
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	req := requestFromFlags(cmd)
	v, err := dto.NewRequestValidator()
	if err != nil {
		return err
	}
	if err := v.Struct(req); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr())

	ctx := cmd.Context()
	repos, closeRepos, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepos()

	container := services.NewServiceContainer(cfg, repos)
	businessID, _ := cmd.Flags().GetString("business")
	result, err := container.Reporting.GenerateReport(ctx, businessID, req.ToDomainFilters())
	if err != nil {
		return err
	}

	resp := dto.ToReportResponse(result)
	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	return renderTable(cmd.OutOrStdout(), resp)
}

func renderTable(w io.Writer, resp dto.ReportResponse) error {
	fmt.Fprintf(w, "%s (%s)\n\n", resp.Title, resp.AdditionalFilter)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if len(resp.Columns) > 0 {
		fmt.Fprintln(tw, strings.Join(resp.Columns, "\t")+"\t")
	}
	for _, row := range resp.Rows {
		fmt.Fprintln(tw, strings.Join(row.Values, "\t")+"\t")
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if s := resp.Summary; s != nil {
		fmt.Fprintf(w, "\n%s records\n", humanize.Comma(int64(s.RecordCount)))
		if s.TotalAmount != nil {
			fmt.Fprintf(w, "Total amount: %s\n", humanize.FormatFloat("#,###.##", s.TotalAmount.InexactFloat64()))
		}
		if s.TotalProfit != nil {
			fmt.Fprintf(w, "Total profit: %s\n", humanize.FormatFloat("#,###.##", s.TotalProfit.InexactFloat64()))
		}
		for _, key := range sortedKeys(s.AdditionalInfo) {
			fmt.Fprintf(w, "%s: %s\n", key, s.AdditionalInfo[key])
		}
	}
	if b := resp.Breakdowns; b != nil {
		fmt.Fprintf(w, "\nTotal assets: %s\nTotal liabilities: %s\n",
			humanize.FormatFloat("#,###.##", b.TotalAssets.InexactFloat64()),
			humanize.FormatFloat("#,###.##", b.TotalLiabilities.InexactFloat64()))
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
