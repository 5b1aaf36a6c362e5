package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/lferraz/prodash/internal/service"
)

type Server struct {
	svc             *service.Service
	router          *http.ServeMux
	addr            string
	shutdownTimeout time.Duration
}

func NewServer(svc *service.Service, addr string, shutdownTimeout time.Duration) *Server {
	s := &Server{
		svc:             svc,
		router:          http.NewServeMux(),
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Dashboard metrics and charts
	s.router.HandleFunc("GET /api/stats", s.handleStats)
	s.router.HandleFunc("GET /api/charts/daily", s.handleChartDaily)
	s.router.HandleFunc("GET /api/charts/categories", s.handleChartCategories)
	s.router.HandleFunc("GET /api/charts/collaborators", s.handleChartCollaborators)
	s.router.HandleFunc("GET /api/charts/daily-collaborators", s.handleChartDailyCollaborators)
	s.router.HandleFunc("GET /api/filters/collaborators", s.handleFilterCollaborators)

	// Uploads
	s.router.HandleFunc("POST /api/uploads", s.handleUpload)

	// Collaborator registry
	s.router.HandleFunc("GET /api/collaborators", s.handleListCollaborators)
	s.router.HandleFunc("POST /api/collaborators", s.handleCreateCollaborator)
	s.router.HandleFunc("DELETE /api/collaborators/{name}", s.handleDeleteCollaborator)

	// Project plan
	s.router.HandleFunc("GET /api/plan", s.handleGetPlan)
	s.router.HandleFunc("PUT /api/plan", s.handleReplacePlan)
	s.router.HandleFunc("PATCH /api/plan", s.handleEditPlan)
	s.router.HandleFunc("GET /api/plan/status", s.handlePlanStatus)

	// Danger zone
	s.router.HandleFunc("POST /api/clear", s.handleClear)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	fmt.Printf("Starting server at http://localhost%s\n", s.addr)

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Server shutdown error: %v\n", err)
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil // Graceful shutdown
	}
	return err
}
