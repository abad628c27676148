package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"savings-site/domain"
)

var currenciesCmd = &cobra.Command{
	Use:   "currencies",
	Short: "List supported display currencies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tSYMBOL\tNAME\tRATE (per USD)")
		for _, c := range domain.Currencies() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%g\n", c.Code, c.Symbol, c.Name, c.ConversionRate)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(currenciesCmd)
}
