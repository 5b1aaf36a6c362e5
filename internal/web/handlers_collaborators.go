package web

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleListCollaborators(w http.ResponseWriter, r *http.Request) {
	collaborators, err := s.svc.Collaborators(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, collaborators)
}

func (s *Server) handleCreateCollaborator(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
		Area string `json:"area"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid collaborator payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.svc.Register(r.Context(), payload.Name, payload.Area); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payload)
}

func (s *Server) handleDeleteCollaborator(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Remove(r.Context(), r.PathValue("name")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
