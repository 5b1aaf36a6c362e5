package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lferraz/prodash/internal/domain"
	"github.com/lferraz/prodash/internal/util"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard metrics for a period",
	Long: `Show the dashboard summary metrics for a period preset.

Examples:
  prodash stats                     # Today
  prodash stats --period weekly     # Last 7 days
  prodash stats --period monthly    # Current month
  prodash stats --collaborator Ana  # Restrict to one collaborator`,
	RunE: runStats,
}

var (
	statsPeriod       string
	statsCollaborator string
)

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVarP(&statsPeriod, "period", "p", util.PeriodDaily, "Period preset: daily, weekly, biweekly, monthly")
	statsCmd.Flags().StringVarP(&statsCollaborator, "collaborator", "c", domain.AllCollaborators, "Collaborator filter")
}

func runStats(cmd *cobra.Command, args []string) error {
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

	start, end := util.RangeForPeriod(statsPeriod, time.Time{}, time.Time{}, time.Now())
	filtered := domain.FilterRange(records, start, end, statsCollaborator)
	metrics := domain.ComputeMetrics(filtered, records)

	fmt.Printf("Period: %s to %s\n", util.FormatISODate(start), util.FormatISODate(end))
	fmt.Printf("  Items:       %s\n", util.FormatNumber(metrics.TotalItems))
	fmt.Printf("  Days worked: %d\n", metrics.TotalDays)
	fmt.Printf("  Avg/day:     %.1f\n", metrics.AvgDaily)
	fmt.Printf("  Avg/hour:    %.1f\n", metrics.AvgHourly)
	fmt.Printf("  Grand total: %s\n", util.FormatNumber(metrics.GrandTotalItems))
	return nil
}
