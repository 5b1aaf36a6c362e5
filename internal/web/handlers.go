package web

import (
	"net/http"

	"github.com/lferraz/prodash/internal/domain"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	filtered, all, err := s.filteredRecords(r)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.ComputeMetrics(filtered, all))
}

func (s *Server) handleChartDaily(w http.ResponseWriter, r *http.Request) {
	filtered, _, err := s.filteredRecords(r)
	if err != nil {
		writeError(w, err)
		return
	}

	series := domain.DailySeries(filtered)
	dates := make([]string, len(series))
	items := make([]int, len(series))
	for i, p := range series {
		dates[i] = p.Date
		items[i] = p.Items
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"labels": chartLabels(dates),
		"items":  items,
	})
}

func (s *Server) handleChartCategories(w http.ResponseWriter, r *http.Request) {
	filtered, _, err := s.filteredRecords(r)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"categories": domain.CategorySeries(filtered),
	})
}

func (s *Server) handleChartCollaborators(w http.ResponseWriter, r *http.Request) {
	filtered, _, err := s.filteredRecords(r)
	if err != nil {
		writeError(w, err)
		return
	}

	totalDays := domain.ComputeMetrics(filtered, nil).TotalDays
	writeJSON(w, http.StatusOK, map[string]any{
		"collaborators": domain.CollaboratorSeries(filtered, totalDays),
	})
}

func (s *Server) handleChartDailyCollaborators(w http.ResponseWriter, r *http.Request) {
	filtered, _, err := s.filteredRecords(r)
	if err != nil {
		writeError(w, err)
		return
	}

	series := domain.ComputeDailyCollaboratorSeries(filtered)
	dates := make([]string, len(series.Rows))
	for i, row := range series.Rows {
		dates[i] = row.Date
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"labels":        chartLabels(dates),
		"collaborators": series.Collaborators,
		"rows":          series.Rows,
	})
}

func (s *Server) handleFilterCollaborators(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := s.svc.Records(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	registered, err := s.svc.Collaborators(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"collaborators": domain.CollaboratorNames(records, registered),
	})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.ClearAll(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
