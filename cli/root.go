package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "savings-site",
	Short: "Landing site and savings calculator for facility energy retrofits",
	Long: `savings-site serves the marketing landing page, the ROI calculator API
and the waitlist endpoint. It can also run the savings estimate from the
command line.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
