package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"savings-site/domain"
	"savings-site/service"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate savings for a facility",
	Long: `Run the savings estimate for one facility and print the result.

Examples:
  savings-site estimate --cost 500000 --size 50000 --complexity 3
  savings-site estimate --cost 1200000 --size 80000 --complexity 5 --currency EUR --json`,
	RunE: runEstimate,
}

var (
	estimateCost       float64
	estimateSize       float64
	estimateComplexity int
	estimateCurrency   string
	estimateJSON       bool
)

func init() {
	rootCmd.AddCommand(estimateCmd)
	estimateCmd.Flags().Float64Var(&estimateCost, "cost", 500_000, "Annual energy cost in USD")
	estimateCmd.Flags().Float64Var(&estimateSize, "size", 50_000, "Facility size in square feet")
	estimateCmd.Flags().IntVar(&estimateComplexity, "complexity", 3, "System complexity tier (1-5)")
	estimateCmd.Flags().StringVar(&estimateCurrency, "currency", "USD", "Display currency code")
	estimateCmd.Flags().BoolVar(&estimateJSON, "json", false, "Print the result as JSON")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	result, err := service.NewSavingsService().Estimate(cmd.Context(), domain.EstimateRequest{
		AnnualEnergyCost: estimateCost,
		FacilitySizeSqFt: estimateSize,
		SystemComplexity: domain.Complexity(estimateComplexity),
		Currency:         estimateCurrency,
	})
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w.Message)
	}

	if estimateJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return printEstimate(cmd.OutOrStdout(), result)
}

func printEstimate(out io.Writer, result domain.EstimateResult) error {
	est := result.Estimate
	cur := result.Currency

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Currency\t%s (%s)\n", cur.Code, cur.Name)
	fmt.Fprintf(w, "Annual savings\t%s\n", service.FormatAmount(cur, est.AnnualSavings))
	fmt.Fprintf(w, "5-year savings\t%s\n", service.FormatAmount(cur, est.FiveYearSavings))
	fmt.Fprintf(w, "Payback period\t%s\n", service.FormatPayback(est.PaybackMonths))
	fmt.Fprintf(w, "CO2 reduction\t%s t/yr\n", service.FormatNumber(est.CO2ReductionAnnualTons))
	fmt.Fprintf(w, "Implementation cost\t%s\n", service.FormatAmount(domain.DefaultCurrency(), result.ImplementationCostUSD))
	return w.Flush()
}
