package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"go-dominance/internal/metrics"
	"go-dominance/internal/model"
)

// Runner executes requests: ingest, validate, transform, aggregate, rank.
// It keeps no per-request state and may be shared between goroutines.
type Runner struct {
	Loader  *Loader
	Metrics *metrics.Collector
}

// NewRunner returns a runner with the default loader and no metrics.
func NewRunner() *Runner {
	return &Runner{Loader: NewLoader()}
}

// Run loads req.Source and computes the dominance result.
func (r *Runner) Run(ctx context.Context, req model.Request) (*model.Result, error) {
	start := time.Now()
	df, err := r.loader().Load(ctx, req.Source)
	if err != nil {
		r.Metrics.ObserveRun("dominance", req.Source.Type, err, 0, 0, time.Since(start))
		return nil, err
	}
	return r.run(req, df, start)
}

// RunFrame computes the dominance result for an already loaded frame (uploads).
func (r *Runner) RunFrame(ctx context.Context, req model.Request, df dataframe.DataFrame) (*model.Result, error) {
	return r.run(req, df, time.Now())
}

func (r *Runner) run(req model.Request, df dataframe.DataFrame, start time.Time) (res *model.Result, err error) {
	req = req.WithDefaults()
	id := uuid.New().String()
	logger := log.With().Str("request_id", id).Str("source", req.Source.Type).Logger()

	rows, dropped := 0, 0
	defer func() {
		r.Metrics.ObserveRun("dominance", req.Source.Type, err, rows, dropped, time.Since(start))
	}()

	dir, err := ParseDirection(req.Direction)
	if err != nil {
		return nil, err
	}

	// --- VALIDATION STAGE ---
	cols, err := ValidateColumns(df, req.GroupColumn, req.CategoryColumn)
	if err != nil {
		logger.Warn().Err(err).Msg("❌ Column validation failed")
		return nil, err
	}

	// --- TRANSFORMATION STAGE ---
	observations, dropped := ExtractObservations(df, cols[req.GroupColumn], cols[req.CategoryColumn])
	rows = len(observations)

	// --- AGGREGATION STAGE ---
	counts := Aggregate(observations)
	dominant := Dominant(counts)
	top := Top(dominant, req.TopN)

	res = &model.Result{
		ID:         id,
		Rows:       rows,
		Dropped:    dropped,
		GroupCount: len(dominant),
		Groups:     GroupKeys(counts),
		Dominant:   dominant,
		Top:        top,
		Colors:     ColorRamp(DominantCounts(top), RampOptions{Direction: dir}),
		Counts:     counts,

		GroupColumn:    cols[req.GroupColumn],
		CategoryColumn: cols[req.CategoryColumn],
	}

	if focus := strings.TrimSpace(req.Focus); focus != "" {
		breakdown, ok := Breakdown(counts, focus)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, focus)
		}
		res.Focus = model.NormalizeGroup(focus)
		res.Distribution = breakdown
	}

	logger.Info().
		Int("rows", rows).
		Int("dropped", dropped).
		Int("groups", res.GroupCount).
		Dur("duration", time.Since(start)).
		Msg("📊 Aggregation complete")
	return res, nil
}

// Profile loads a wide table and returns the row for req.Key.
func (r *Runner) Profile(ctx context.Context, req model.ProfileRequest) (p *model.Profile, err error) {
	start := time.Now()
	defer func() {
		r.Metrics.ObserveRun("profile", req.Source.Type, err, 0, 0, time.Since(start))
	}()

	df, err := r.loader().Load(ctx, req.Source)
	if err != nil {
		return nil, err
	}
	dir, err := ParseDirection(req.Direction)
	if err != nil {
		return nil, err
	}
	keyCol := req.KeyColumn
	if keyCol == "" {
		keyCol = DefaultProfileKey
	}
	return BuildProfile(df, keyCol, req.Key, RampOptions{Direction: dir})
}

// Rank loads a table and ranks its rows.
func (r *Runner) Rank(ctx context.Context, req model.RankRequest) (rk *model.Ranking, err error) {
	start := time.Now()
	defer func() {
		rows := 0
		if rk != nil {
			rows = rk.Matched
		}
		r.Metrics.ObserveRun("rank", req.Source.Type, err, rows, 0, time.Since(start))
	}()

	df, err := r.loader().Load(ctx, req.Source)
	if err != nil {
		return nil, err
	}
	return Rank(df, req)
}

func (r *Runner) loader() *Loader {
	if r.Loader == nil {
		return NewLoader()
	}
	return r.Loader
}
