package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/choace0427/brightspeed-ai-backend/contract"
)

// Server exposes the document pipeline over HTTP.
type Server struct {
	uploads  contract.IUploadService
	analyzer contract.IAnalyzerService
	identity contract.IIdentityService
	validate *validator.Validate
	log      *slog.Logger

	maxUploadBytes int64
	srv            *http.Server
}

func New(
	addr string,
	maxUploadBytes int64,
	uploads contract.IUploadService,
	analyzer contract.IAnalyzerService,
	identity contract.IIdentityService,
	log *slog.Logger,
) *Server {
	s := &Server{
		uploads:        uploads,
		analyzer:       analyzer,
		identity:       identity,
		validate:       validator.New(),
		log:            log,
		maxUploadBytes: maxUploadBytes,
	}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/upload", s.handleUpload)
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/idcard", s.handleIdentityCheck)
	mux.HandleFunc("DELETE /api/delete", s.handleCleanup)
	mux.HandleFunc("POST /paystub/presignedUrl", s.handlePresign)
	mux.HandleFunc("POST /paystub/analyze", s.handleFinanceAnalyze)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.logged(mux)
}

func (s *Server) ListenAndServe() error {
	s.log.Info("HTTP server listening", "addr", s.srv.Addr)
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) logged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("Request handled", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
