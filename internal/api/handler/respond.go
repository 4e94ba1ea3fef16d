package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"go-dominance/internal/chart"
	"go-dominance/internal/geo"
	"go-dominance/internal/model"
	"go-dominance/internal/pipeline"
)

// Handler serves the dashboard API. It holds only configuration and is safe
// for concurrent use.
type Handler struct {
	Runner            *pipeline.Runner
	Resolver          geo.Resolver // nil disables map data
	MaxBodyBytes      int64
	DefaultTopN       int
	AllowLocalSources bool
}

// New returns a handler with the default runner and country resolver.
func New(runner *pipeline.Runner) *Handler {
	if runner == nil {
		runner = pipeline.NewRunner()
	}
	return &Handler{
		Runner:       runner,
		Resolver:     geo.CountryResolver{},
		MaxBodyBytes: 32 << 20,
		DefaultTopN:  20,
	}
}

// ErrorResponse is the body of every non-2xx JSON response
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("❌ Failed to encode response")
	}
}

// statusFor maps pipeline errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, pipeline.ErrMissingColumn), errors.Is(err, chart.ErrNoData):
		return http.StatusUnprocessableEntity
	case errors.Is(err, pipeline.ErrUnknownGroup):
		return http.StatusNotFound
	case errors.Is(err, pipeline.ErrSourceUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, pipeline.ErrInvalidRequest),
		errors.Is(err, pipeline.ErrUnknownSource),
		errors.Is(err, pipeline.ErrSourceUnparseable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= 500 {
		log.Error().Err(err).Msg("❌ Request failed")
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

// decodeJSON reads a size-limited JSON body into v
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, h.maxBody())
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", pipeline.ErrInvalidRequest, err)
	}
	return nil
}

func (h *Handler) maxBody() int64 {
	if h.MaxBodyBytes <= 0 {
		return 32 << 20
	}
	return h.MaxBodyBytes
}

// checkSource refuses server-local sources unless they are enabled
func (h *Handler) checkSource(src model.Source) error {
	switch strings.ToLower(src.Type) {
	case model.SourceFile, model.SourceSQLite, "":
		if !h.AllowLocalSources {
			return fmt.Errorf("%w: source type %q is disabled on this server", pipeline.ErrInvalidRequest, src.Type)
		}
	}
	return nil
}

func (h *Handler) applyTopN(req *model.Request) {
	if req.TopN == 0 {
		req.TopN = h.DefaultTopN
	}
}

// writeFile buffers the body so render errors become JSON errors instead of
// a truncated 200. filename, if set, makes the response a download.
func writeFile(w http.ResponseWriter, contentType, filename string, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	if filename != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Warn().Err(err).Msg("⚠️ Client went away during download")
	}
}

func writePNG(w http.ResponseWriter, render func(io.Writer) error) {
	writeFile(w, "image/png", "", render)
}
