package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/SscSPs/hisaabi_reports/internal/core/reports"
	"github.com/SscSPs/hisaabi_reports/internal/dto"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(catalogueCmd)
	catalogueCmd.Flags().Bool("json", false, "Print the catalogue as JSON")
}

var catalogueCmd = &cobra.Command{
	Use:   "catalogue",
	Short: "List report types and the modes each accepts",
	Args:  cobra.NoArgs,
	RunE:  runCatalogue,
}

func runCatalogue(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	entries := dto.ToCatalogueResponse(reports.Catalogue())

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tREPORT\tMODES\tREQUIRES")
	for _, e := range entries {
		modes := make([]string, 0, len(e.AdditionalFilters))
		for _, f := range e.AdditionalFilters {
			modes = append(modes, fmt.Sprintf("%d=%s", f.ID, f.Title))
		}
		requires := e.Requires
		if requires == "" {
			requires = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.ReportType, e.Title, strings.Join(modes, ", "), requires)
	}
	return tw.Flush()
}
