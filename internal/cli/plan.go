package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lferraz/prodash/internal/domain"
	"github.com/lferraz/prodash/internal/util"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show planned-vs-actual progress",
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	appCtx, err := NewAppContext(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = appCtx.Close() }()

	records, err := appCtx.Service.Records(ctx)
	if err != nil {
		return err
	}
	plan, err := appCtx.Service.Plan(ctx)
	if err != nil {
		return err
	}

	status := domain.TrackPlan(records, plan, time.Now())

	fmt.Printf("Completed: %s of %s (%.1f%%)\n",
		util.FormatNumber(status.TotalCompleted),
		util.FormatNumber(plan.TotalProducts),
		status.TotalProgress)
	fmt.Printf("Days left: %d\n\n", status.DaysLeft)

	for _, cat := range status.Categories {
		fmt.Printf("%-28s %8s / %-8s %6.1f%%  %s\n",
			cat.Name,
			util.FormatNumber(cat.Completed),
			util.FormatNumber(cat.Products),
			cat.Progress,
			cat.Status)
	}
	return nil
}
