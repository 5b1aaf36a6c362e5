package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lferraz/prodash/internal/ingest"
)

var importCmd = &cobra.Command{
	Use:   "import [files...]",
	Short: "Import xlsx report files for a collaborator",
	Long: `Import one or more xlsx report files as a single upload batch.

The batch replaces any records previously uploaded for the collaborator.
Files whose sheets do not match the "Categoria DD-MM-AAAA" name format are
skipped with a warning; a batch yielding no records is rejected whole.

Examples:
  prodash import --collaborator "Livia" report1.xlsx report2.xlsx`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

var importCollaborator string

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVarP(&importCollaborator, "collaborator", "c", "", "Collaborator the reports belong to")
	_ = importCmd.MarkFlagRequired("collaborator")
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	appCtx, err := NewAppContext(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = appCtx.Close() }()

	sources := make([]ingest.Source, 0, len(args))
	for _, path := range args {
		sources = append(sources, ingest.Source{
			Name: path,
			Open: func() (io.ReadCloser, error) { return os.Open(path) },
		})
	}

	summary, err := appCtx.Service.ImportFiles(ctx, importCollaborator, sources)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d records across %d days for %s (batch %s)\n",
		summary.RecordCount, summary.DayCount, summary.Collaborator, summary.BatchID)
	fmt.Printf("Total records now stored: %d\n", summary.TotalRecords)
	for _, fe := range summary.FileErrors {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", fe)
	}
	return nil
}
