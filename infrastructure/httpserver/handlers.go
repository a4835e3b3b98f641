package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/choace0427/brightspeed-ai-backend/contract"
	apperrors "github.com/choace0427/brightspeed-ai-backend/errors"
)

const multipartMemoryLimit = 32 << 20

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		s.writeError(w, fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err))
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		s.writeError(w, fmt.Errorf("%w: no files provided", apperrors.ErrInvalidRequest))
		return
	}

	uploads := make([]contract.Upload, 0, len(headers))
	for _, header := range headers {
		data, err := readPart(header)
		if err != nil {
			s.writeError(w, fmt.Errorf("reading %s: %w", header.Filename, err))
			return
		}
		uploads = append(uploads, contract.Upload{FileName: header.Filename, Data: data})
	}

	keys, err := s.uploads.Stage(r.Context(), uploads)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Files uploaded and split successfully",
		"allKeys": keys,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var request contract.AnalyzeRequest
	if err := s.decode(r, &request); err != nil {
		s.writeError(w, err)
		return
	}

	// The request was valid, so the batch always answers 200; individual
	// documents report their own failures inline.
	results := s.analyzer.ProcessBatch(r.Context(), request)
	s.writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (s *Server) handleIdentityCheck(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		s.writeError(w, fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err))
		return
	}

	headers := r.MultipartForm.File["id_card"]
	if len(headers) != 1 {
		s.writeError(w, fmt.Errorf("%w: exactly one id_card file is required", apperrors.ErrInvalidRequest))
		return
	}
	data, err := readPart(headers[0])
	if err != nil {
		s.writeError(w, fmt.Errorf("reading %s: %w", headers[0].Filename, err))
		return
	}

	report, err := s.identity.Check(r.Context(), contract.IdentityCheckRequest{
		Upload:      contract.Upload{FileName: headers[0].Filename, Data: data},
		FirstName:   r.FormValue("first_name"),
		LastName:    r.FormValue("last_name"),
		DateOfBirth: r.FormValue("birth"),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleCleanup(w http.ResponseWriter, r *http.Request) {
	if err := s.uploads.Cleanup(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"message": "All files deleted successfully"})
}

func (s *Server) handlePresign(w http.ResponseWriter, r *http.Request) {
	var request contract.PresignRequest
	if err := s.decode(r, &request); err != nil {
		s.writeError(w, err)
		return
	}

	signedURL, err := s.uploads.PresignUpload(r.Context(), request.Key)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"signedUrl": signedURL, "key": request.Key})
}

func (s *Server) handleFinanceAnalyze(w http.ResponseWriter, r *http.Request) {
	var request contract.FinanceAnalyzeRequest
	if err := s.decode(r, &request); err != nil {
		s.writeError(w, err)
		return
	}

	fields, err := s.analyzer.AnalyzeFinanceAgreement(r.Context(), request.Keys)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"fields": fields})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// decode unmarshals a JSON body and validates it, so handlers never touch a
// collaborator with a malformed request.
func (s *Server) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err)
	}
	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err)
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("Encoding response failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrInvalidRequest), errors.Is(err, apperrors.ErrUnsupportedMediaType):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrMissingField):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		s.log.Error("Request failed", "error", err)
	}
	s.writeJSON(w, status, map[string]any{"error": err.Error()})
}

func readPart(header *multipart.FileHeader) ([]byte, error) {
	part, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer part.Close()
	return io.ReadAll(part)
}
