package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hyperjump/resumecua/internal/export"
	"github.com/hyperjump/resumecua/internal/extract"
	"github.com/hyperjump/resumecua/internal/fileid"
	"github.com/hyperjump/resumecua/internal/keyword"
	"github.com/hyperjump/resumecua/internal/models"
	"github.com/hyperjump/resumecua/internal/pipeline"
	"github.com/hyperjump/resumecua/internal/storage"
	"github.com/hyperjump/resumecua/internal/textnorm"
	"go.uber.org/zap"
)

const (
	// multipartMemory is how much of an upload is buffered in memory before spilling to disk.
	multipartMemory = 32 << 20

	defaultListLimit = 50
	maxListLimit     = 500

	// skillsBoost ranks skill matches above matches in experience or education text.
	skillsBoost = 3.0
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"formats":          extract.SupportedExtensions(),
		"ner_enabled":      s.config.NER.Enabled,
		"max_upload_files": s.config.Server.MaxUploadFiles,
		"max_upload_bytes": s.config.Server.MaxUploadBytes,
		"storage_enabled":  s.storage != nil,
	}
	if s.storage != nil {
		count, err := s.storage.CountCandidates(r.Context())
		if err != nil {
			s.logger.Error("status: count candidates failed", zap.Error(err))
			s.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp["candidates"] = count
		if fp, err := storage.MeasureFootprint(s.config.Storage.DatabasePath, s.config.Storage.IndexPath); err == nil {
			resp["disk_usage_bytes"] = fp.Total()
		}
	}
	if s.index != nil {
		if n, err := s.index.DocCount(); err == nil {
			resp["indexed"] = n
		}
	}
	s.respondJSON(w, http.StatusOK, resp)
}

type parseResponse struct {
	Rows []models.CandidateRecord `json:"rows"`
}

// handleParse parses uploaded resumes. Files with unsupported extensions are skipped;
// a file that fails to read yields a row carrying the error.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	maxFiles := s.config.Server.MaxUploadFiles
	maxBytes := s.config.Server.MaxUploadBytes
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxFiles)*maxBytes+1<<20)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		s.respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		s.respondError(w, http.StatusBadRequest, "no files uploaded")
		return
	}
	if len(files) > maxFiles {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("too many files, maximum %d allowed", maxFiles))
		return
	}
	for _, fh := range files {
		if fh.Size > maxBytes {
			s.respondError(w, http.StatusBadRequest, fmt.Sprintf("file %s is too large, maximum %d bytes allowed", fh.Filename, maxBytes))
			return
		}
	}

	opts := pipeline.Options{
		UseNER:   formBool(r, "use_ner", s.config.Parse.UseNER),
		Keywords: pipeline.ParseKeywords(r.FormValue("keywords")),
		Details:  formBool(r, "details", s.config.Parse.IncludeDetails),
	}
	store := formBool(r, "store", false) && s.storage != nil
	s.logger.Debug("parse request", zap.Int("files", len(files)), zap.Bool("use_ner", opts.UseNER),
		zap.Strings("keywords", opts.Keywords), zap.Bool("store", store))

	ctx := r.Context()
	rows := make([]models.CandidateRecord, 0, len(files))
	for _, fh := range files {
		name := filepath.Base(fh.Filename)
		if fh.Filename == "" || !extract.IsSupported(name) {
			continue
		}
		content, err := readUpload(fh)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read %s", name))
			return
		}
		rec, err := s.pipeline.ProcessBytes(ctx, content, filepath.Ext(name), name, opts)
		if err != nil {
			s.logger.Warn("failed to parse upload", zap.String("file", name), zap.Error(err))
		}
		if store {
			rec.ID = fileid.UploadID()
			if err := s.saveCandidate(r, &rec); err != nil {
				s.logger.Error("failed to store candidate", zap.String("file", name), zap.Error(err))
				s.respondError(w, http.StatusInternalServerError, err.Error())
				return
			}
		}
		rows = append(rows, rec)
	}
	s.respondJSON(w, http.StatusOK, parseResponse{Rows: rows})
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (s *Server) saveCandidate(r *http.Request, rec *models.CandidateRecord) error {
	if err := s.storage.SaveCandidate(r.Context(), rec); err != nil {
		return err
	}
	if s.index != nil {
		return s.index.Index(r.Context(), rec)
	}
	return nil
}

func formBool(r *http.Request, key string, def bool) bool {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

type scoreRequest struct {
	Text     string   `json:"text"`
	Keywords []string `json:"keywords"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	score := pipeline.ScoreRelevancy(textnorm.Normalize(req.Text), pipeline.CleanKeywords(req.Keywords))
	s.respondJSON(w, http.StatusOK, map[string]float64{"score": score})
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	s.handleExport(w, r, "candidates.csv")
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	s.handleExport(w, r, "candidates.xlsx")
}

// handleExport accepts the rows of a parse response, either bare or wrapped in {"rows": ...}.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request, filename string) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rows, err := decodeRows(body)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	write, contentType := export.Writer(filename)
	var buf bytes.Buffer
	if err := write(&buf, rows); err != nil {
		s.logger.Error("export failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func decodeRows(body []byte) ([]models.CandidateRecord, error) {
	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '{' {
		var wrapped parseResponse
		err := json.Unmarshal(body, &wrapped)
		return wrapped.Rows, err
	}
	var rows []models.CandidateRecord
	err := json.Unmarshal(body, &rows)
	return rows, err
}

func (s *Server) requireStorage(w http.ResponseWriter) bool {
	if s.storage == nil {
		s.respondError(w, http.StatusNotImplemented, "storage not enabled")
		return false
	}
	return true
}

func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	if !s.requireStorage(w) {
		return
	}
	limit := queryInt(r, "limit", defaultListLimit)
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	ctx := r.Context()
	list, err := s.storage.ListCandidates(ctx, offset, limit)
	if err != nil {
		s.logger.Error("list candidates failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	total, err := s.storage.CountCandidates(ctx)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if list == nil {
		list = []*models.CandidateRecord{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"candidates": list, "total": total})
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	if !s.requireStorage(w) {
		return
	}
	id := chi.URLParam(r, "id")
	c, err := s.storage.GetCandidate(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "candidate not found")
		return
	}
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	if !s.requireStorage(w) {
		return
	}
	id := chi.URLParam(r, "id")
	s.logger.Debug("delete candidate request", zap.String("id", id))
	err := s.storage.DeleteCandidate(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "candidate not found")
		return
	}
	if err != nil {
		s.logger.Error("deletion failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if s.index != nil {
		if err := s.index.Delete(r.Context(), id); err != nil {
			s.logger.Warn("failed to unindex candidate", zap.String("id", id), zap.Error(err))
		}
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleSearchCandidates(w http.ResponseWriter, r *http.Request) {
	if !s.requireStorage(w) {
		return
	}
	if s.index == nil {
		s.respondError(w, http.StatusNotImplemented, "search index not enabled")
		return
	}
	q := models.CandidateQuery{
		Query:  strings.TrimSpace(r.URL.Query().Get("q")),
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
		Fuzzy:  r.URL.Query().Get("fuzzy") == "true",
	}
	if err := q.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Debug("search request", zap.String("query", q.Query), zap.Int("limit", q.Limit))

	start := time.Now()
	ctx := r.Context()
	results, err := s.index.Search(ctx, q.Query, q.Limit, &keyword.SearchOptions{
		Offset: q.Offset, Fuzzy: q.Fuzzy, SkillsBoost: skillsBoost,
	})
	if err != nil {
		s.logger.Error("search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := &models.SearchResponse{Hits: make([]*models.SearchHit, 0, len(results.Hits)), Total: results.Total, Query: q.Query}
	for _, hit := range results.Hits {
		c, err := s.storage.GetCandidate(ctx, hit.ID)
		if err != nil {
			// Index and store can briefly disagree while a file is being replaced.
			s.logger.Debug("search hit missing from storage", zap.String("id", hit.ID), zap.Error(err))
			continue
		}
		resp.Hits = append(resp.Hits, &models.SearchHit{
			Candidate:  c,
			Score:      hit.Score,
			Highlights: hit.Highlights,
			Rank:       q.Offset + len(resp.Hits) + 1,
		})
	}
	resp.QueryTime = time.Since(start).Milliseconds()
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWatchDirectories(w http.ResponseWriter, r *http.Request) {
	if s.watch == nil {
		s.respondError(w, http.StatusNotImplemented, "watch not enabled")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"directories": s.watch.Roots()})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
