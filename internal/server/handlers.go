package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/dmccarthy619/file-name-generator/internal/export"
	"github.com/dmccarthy619/file-name-generator/internal/form"
	"github.com/dmccarthy619/file-name-generator/internal/naming"
)

const (
	maxBodyBytes      = 16 << 10
	codeUnknownPerson = "unknown_person"
)

type listResponse struct {
	Items []string `json:"items"`
}

type nameResponse struct {
	Name string `json:"name"`
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"uptime":    s.now().Sub(s.startedAt).Round(time.Second).String(),
		"timestamp": s.now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) listProcesses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, listResponse{Items: s.store.ListProcessCategories()})
}

// listDocuments answers an empty list for an unknown or missing process.
func (s *Server) listDocuments(w http.ResponseWriter, r *http.Request) {
	process := r.URL.Query().Get("process")
	writeJSON(w, http.StatusOK, listResponse{Items: s.store.ListDocumentCategories(process)})
}

func (s *Server) listDescriptions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, listResponse{Items: s.store.ListDescriptions(q.Get("process"), q.Get("document"))})
}

func (s *Server) listPersons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, listResponse{Items: s.store.ListPersons()})
}

func (s *Server) options(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	state := form.State{Process: q.Get("process"), Document: q.Get("document")}
	writeJSON(w, http.StatusOK, form.Derive(s.store, state))
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	res, ok := s.formatBody(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, nameResponse{Name: res.Name})
}

// exportName returns the generated name as a downloadable text file.
func (s *Server) exportName(w http.ResponseWriter, r *http.Request) {
	res, ok := s.formatBody(w, r)
	if !ok {
		return
	}
	text, err := export.Text(res)
	if err != nil {
		writeError(r.Context(), w, newAPIError("not_exportable", err.Error(), http.StatusUnprocessableEntity))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.DefaultFileName))
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, text)
}

// formatBody decodes a naming.Request and formats it. On failure the error
// response has been written and ok is false.
func (s *Server) formatBody(w http.ResponseWriter, r *http.Request) (naming.Result, bool) {
	var req naming.Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(r.Context(), w, newAPIError("body_too_large", "request body too large", http.StatusRequestEntityTooLarge))
			return naming.Result{}, false
		}
		writeError(r.Context(), w, newAPIError("invalid_json", fmt.Sprintf("decode request: %v", err), http.StatusBadRequest))
		return naming.Result{}, false
	}

	if err := form.Check(s.store, form.State{Person: req.Person}); err != nil {
		s.metrics.FileNamesTotal.WithLabelValues(codeUnknownPerson).Inc()
		writeError(r.Context(), w, newAPIError(codeUnknownPerson, naming.ErrorPrefix+" Unbekannte Person.", http.StatusUnprocessableEntity).
			withDetails(map[string]any{"field": "person"}))
		return naming.Result{}, false
	}

	res := naming.Format(req)
	if res.Err != nil {
		s.metrics.FileNamesTotal.WithLabelValues(string(res.Err.Code)).Inc()
		s.logger.Debug("file name rejected",
			zap.String("request_id", requestIDFrom(r.Context())),
			zap.String("code", string(res.Err.Code)),
			zap.String("field", res.Err.Field),
		)
		writeError(r.Context(), w, newAPIError(string(res.Err.Code), res.Err.Message, http.StatusUnprocessableEntity).
			withDetails(map[string]any{"field": res.Err.Field}))
		return naming.Result{}, false
	}
	s.metrics.FileNamesTotal.WithLabelValues("ok").Inc()
	return res, true
}
