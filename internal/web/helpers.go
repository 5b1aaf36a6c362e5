package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/lferraz/prodash/internal/domain"
	"github.com/lferraz/prodash/internal/ingest"
	"github.com/lferraz/prodash/internal/service"
	"github.com/lferraz/prodash/internal/util"
)

// dashboardQuery is the common filter every stats/chart endpoint accepts:
// a period preset or an explicit date range, plus a collaborator restriction.
type dashboardQuery struct {
	start        time.Time
	end          time.Time
	collaborator string
}

func parseQuery(r *http.Request) dashboardQuery {
	q := r.URL.Query()

	start := domain.ParseISODate(q.Get("startDate"))
	end := domain.ParseISODate(q.Get("endDate"))
	start, end = util.RangeForPeriod(q.Get("period"), start, end, time.Now())

	collaborator := q.Get("collaborator")
	if collaborator == "" {
		collaborator = domain.AllCollaborators
	}

	return dashboardQuery{start: start, end: end, collaborator: collaborator}
}

// filteredRecords loads the full record set and applies the query filter.
// Both slices are returned since the grand total needs the unfiltered set.
func (s *Server) filteredRecords(r *http.Request) (filtered, all []domain.UnitRecord, err error) {
	all, err = s.svc.Records(r.Context())
	if err != nil {
		return nil, nil, err
	}
	q := parseQuery(r)
	return domain.FilterRange(all, q.start, q.end, q.collaborator), all, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Error()})
	case errors.Is(err, ingest.ErrNoMatchingSheets):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// chartLabels maps ISO dates to the DD/MM axis labels.
func chartLabels(dates []string) []string {
	labels := make([]string, len(dates))
	for i, d := range dates {
		labels[i] = util.ChartLabel(d)
	}
	return labels
}
