package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"go-dominance/internal/chart"
	"go-dominance/internal/itinerary"
	"go-dominance/internal/model"
	"go-dominance/internal/pipeline"
	"go-dominance/internal/samples"
)

// HealthResponse is the body of GET /healthz
type HealthResponse struct {
	Status string `json:"status"`
}

// SamplesResponse lists the bundled sample tables
type SamplesResponse struct {
	Samples []string `json:"samples"`
}

// CreateProfile returns one row of a wide table
// @Summary Profile one row of a wide table
// @Description Returns the numeric columns of the row whose key matches, colored with the highlight ramp. Proportions summing to 1 are scaled to percent.
// @Tags analysis
// @Accept json
// @Produce json
// @Produce png
// @Param format query string false "json (default) or png"
// @Param request body model.ProfileRequest true "Profile request"
// @Success 200 {object} model.Profile "Profile"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Key not found"
// @Failure 422 {object} ErrorResponse "Required column missing"
// @Router /profile [post]
func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req model.ProfileRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.checkSource(req.Source); err != nil {
		writeError(w, err)
		return
	}

	profile, err := h.Runner.Profile(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "png" {
		writePNG(w, func(out io.Writer) error {
			return chart.ProfileBar(out, profile.Key, profile, chart.Options{})
		})
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// CreateRanking ranks table rows by summed columns
// @Summary Rank rows by summed columns
// @Description Filters rows by exact and prefix matches, sums the chosen numeric columns and sorts descending
// @Tags analysis
// @Accept json
// @Produce json
// @Produce png
// @Param format query string false "json (default) or png"
// @Param request body model.RankRequest true "Ranking request"
// @Success 200 {object} model.Ranking "Ranking"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 422 {object} ErrorResponse "Required column missing"
// @Router /ranking [post]
func (h *Handler) CreateRanking(w http.ResponseWriter, r *http.Request) {
	var req model.RankRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.checkSource(req.Source); err != nil {
		writeError(w, err)
		return
	}

	ranking, err := h.Runner.Rank(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "png" {
		writePNG(w, func(out io.Writer) error {
			return chart.RankingBar(out, req.Label, ranking, chart.Options{})
		})
		return
	}
	writeJSON(w, http.StatusOK, ranking)
}

// GetItinerary splits the Seoul sights into days
// @Summary Seoul itinerary
// @Description Splits the ten favourite Seoul sights evenly over 1 to 3 days
// @Tags analysis
// @Produce json
// @Param days query int false "Number of days (1-3, default 2)"
// @Success 200 {object} itinerary.Plan "Plan"
// @Failure 400 {object} ErrorResponse "Invalid day count"
// @Router /itinerary [get]
func (h *Handler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	days := 2
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, fmt.Errorf("%w: days must be an integer", pipeline.ErrInvalidRequest))
			return
		}
		days = n
	}

	plan, err := itinerary.Split(itinerary.SeoulTop10, days)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", pipeline.ErrInvalidRequest, err))
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// ListSamples lists bundled sample tables
// @Summary List sample tables
// @Tags samples
// @Produce json
// @Success 200 {object} SamplesResponse "Sample names"
// @Router /samples [get]
func (h *Handler) ListSamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SamplesResponse{Samples: samples.Names()})
}

// GetSample downloads a bundled sample table
// @Summary Download a sample table
// @Tags samples
// @Produce text/csv
// @Param name path string true "Sample name"
// @Success 200 {file} file "CSV"
// @Failure 404 {object} ErrorResponse "Unknown sample"
// @Router /samples/{name} [get]
func (h *Handler) GetSample(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	rc, err := samples.Open(name)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, samples.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, ErrorResponse{Error: err.Error()})
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, rc)
}

// Healthz reports liveness
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
