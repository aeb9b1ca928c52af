package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/chartopt/pkg/errors"
	"github.com/matzehuels/chartopt/pkg/pipeline"
	"github.com/matzehuels/chartopt/pkg/render"
	"github.com/matzehuels/chartopt/pkg/storage"
)

// chartRequest is the body of POST /api/charts and POST /api/render.
type chartRequest struct {
	// Definition is TOML chart definition text.
	Definition string `json:"definition"`

	// Data is an optional dataset object mapping keys to row arrays.
	Data json.RawMessage `json:"data,omitempty"`

	// Render options, used by /api/render.
	Formats []string `json:"formats,omitempty"`
	Indent  bool     `json:"indent,omitempty"`
	Title   string   `json:"title,omitempty"`
}

func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (*chartRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	var req chartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	if req.Definition == "" {
		jsonError(w, "definition is required", http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func (req *chartRequest) options() pipeline.Options {
	opts := pipeline.Options{
		Definition: []byte(req.Definition),
		Formats:    req.Formats,
		Indent:     req.Indent,
		Title:      req.Title,
	}
	if len(req.Data) > 0 && string(req.Data) != "null" {
		opts.Data = req.Data
	}
	return opts
}

// handleRender finalizes a chart and returns the requested artifacts
// without storing anything.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	result, err := s.runner.Execute(r.Context(), req.options())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	artifacts := make(map[string]string, len(result.Artifacts))
	for format, data := range result.Artifacts {
		artifacts[format] = string(data)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"option":    json.RawMessage(result.Document),
		"hash":      result.DocumentHash,
		"artifacts": artifacts,
		"cached":    result.CacheInfo.DocumentHit,
	})
}

// handleCreateChart finalizes a chart and stores its document.
func (s *Server) handleCreateChart(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	opts := req.options()
	opts.Formats = []string{pipeline.FormatJSON}
	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	title := result.Title
	if req.Title != "" {
		title = req.Title
	}
	rec := storage.NewDocumentRecord(result.Name, title, result.Document,
		result.Stats.AxisCount, result.Stats.SeriesCount, result.Stats.RowCount)
	rec.Description = result.Description
	if err := s.store.Put(r.Context(), rec); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.log.Info("stored chart", "id", rec.ID, "name", rec.Name, "rows", rec.Rows)
	w.Header().Set("Location", "/api/charts/"+rec.ID)
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleListCharts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			jsonError(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	recs, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if recs == nil {
		recs = []*storage.Record{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"charts": recs})
}

// loadChart fetches the record named by the {id} URL parameter, writing the
// error response itself on failure.
func (s *Server) loadChart(w http.ResponseWriter, r *http.Request) (*storage.Record, bool) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateChartID(id); err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return rec, true
}

func (s *Server) handleGetChart(w http.ResponseWriter, r *http.Request) {
	if rec, ok := s.loadChart(w, r); ok {
		writeJSON(w, http.StatusOK, rec)
	}
}

func (s *Server) handleGetOption(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadChart(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(rec.Document)
}

func (s *Server) handleDeleteChart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateChartID(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.log.Info("deleted chart", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleChartPage(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadChart(w, r)
	if !ok {
		return
	}

	var opts []render.HTMLOption
	if rec.Title != "" {
		opts = append(opts, render.WithTitle(rec.Title))
	}
	if rec.Description != "" {
		opts = append(opts, render.WithDescription(rec.Description))
	}
	page, err := render.RenderDocumentHTML([]byte(rec.Document), opts...)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}
