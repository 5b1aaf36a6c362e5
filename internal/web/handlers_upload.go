package web

import (
	"io"
	"net/http"

	"github.com/lferraz/prodash/internal/ingest"
)

// 32 MiB of multipart form data held in memory before spilling to disk.
const maxUploadMemory = 32 << 20

// handleUpload ingests a multipart batch: a "collaborator" field plus one or
// more workbook files under "files". The whole batch is merged as a single
// upload for that collaborator.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	collaborator := r.FormValue("collaborator")
	files := r.MultipartForm.File["files"]

	sources := make([]ingest.Source, 0, len(files))
	for _, fh := range files {
		sources = append(sources, ingest.Source{
			Name: fh.Filename,
			Open: func() (io.ReadCloser, error) {
				f, err := fh.Open()
				if err != nil {
					return nil, err
				}
				return f, nil
			},
		})
	}

	summary, err := s.svc.ImportFiles(r.Context(), collaborator, sources)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
