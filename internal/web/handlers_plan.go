package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/lferraz/prodash/internal/domain"
	"github.com/lferraz/prodash/internal/service"
)

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.svc.Plan(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleReplacePlan(w http.ResponseWriter, r *http.Request) {
	var plan domain.ProjectPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		http.Error(w, "invalid plan payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.svc.ReplacePlan(r.Context(), plan); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleEditPlan(w http.ResponseWriter, r *http.Request) {
	var edit service.PlanEdit
	if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
		http.Error(w, "invalid edit payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	plan, err := s.svc.EditPlan(r.Context(), edit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handlePlanStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := s.svc.Records(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	plan, err := s.svc.Plan(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.TrackPlan(records, plan, time.Now()))
}
