package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pe-portfolio-aggregator",
	Short: "A CLI for the PE portfolio aggregation services",
	Long:  `Aggregates private equity and venture capital portfolio companies from firm websites into a deduplicated, enriched database served over a REST API.`,
}

func main() {

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
