package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prodash",
	Short: "Productivity dashboard for spreadsheet-based unit reports",
	Long: `prodash ingests xlsx productivity reports, aggregates them per day,
category and collaborator, and tracks progress against a project plan.

Sheet names carry the category and work date ("Categoria DD-MM-AAAA");
every data row below the header counts as one processed item.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
