package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/lferraz/prodash/internal/domain"
)

// PlanEdit is a partial plan update. Numeric fields arrive as raw JSON so a
// client may send either a number or a numeric string; anything that does not
// parse as a whole number is silently ignored and the current value kept.
type PlanEdit struct {
	TotalProducts json.RawMessage `json:"totalProducts,omitempty"`
	Category      string          `json:"category,omitempty"`
	Products      json.RawMessage `json:"products,omitempty"`
	EndDate       string          `json:"endDate,omitempty"`
}

// EditPlan applies a partial edit to the persisted plan and returns the
// updated plan. An edit naming an unknown category changes nothing.
func (s *Service) EditPlan(ctx context.Context, edit PlanEdit) (domain.ProjectPlan, error) {
	plan, err := s.Plan(ctx)
	if err != nil {
		return domain.ProjectPlan{}, err
	}

	if v, ok := parseCount(edit.TotalProducts); ok {
		plan.TotalProducts = v
	}

	if edit.Category != "" {
		for i := range plan.Categories {
			if !strings.EqualFold(plan.Categories[i].Name, edit.Category) {
				continue
			}
			if v, ok := parseCount(edit.Products); ok {
				plan.Categories[i].Products = v
			}
			if edit.EndDate != "" {
				plan.Categories[i].EndDate = edit.EndDate
			}
			break
		}
	}

	if err := s.ReplacePlan(ctx, plan); err != nil {
		return domain.ProjectPlan{}, err
	}
	return plan, nil
}

// parseCount accepts a JSON number or a numeric string. Empty, malformed and
// fractional input all report !ok.
func parseCount(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}

	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		return 0, false
	}
	return n, true
}
