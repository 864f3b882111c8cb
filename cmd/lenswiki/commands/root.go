package commands

import (
	"context"
	"fmt"
	"os"

	"lenswiki/lib/telemetry"

	"github.com/spf13/cobra"
)

var verbose *bool

var rootCmd = &cobra.Command{
	Use:   "lenswiki",
	Short: "lenswiki scrapes the Cosina Voigtländer lens lineup into sortable wikitext tables.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
	},
	Run: runScrape,
}

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every scraped page and dump http traffic to .dev/resty.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
