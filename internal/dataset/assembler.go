package dataset

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/poiforge/internal/geo"
	"github.com/sells-group/poiforge/internal/synth"
)

// Fetcher retrieves candidate points from an external geographic source.
// An error degrades the run to fully synthetic data; it is never fatal.
type Fetcher interface {
	FetchCandidates(ctx context.Context, query string) ([]geo.Point, error)
}

// Writer persists the final point set to its destination, overwriting any
// existing file.
type Writer interface {
	Persist(points []geo.Point, dest string) error
}

// CandidateCache saves fetched candidates and serves them back when the
// external source is unreachable. Optional.
type CandidateCache interface {
	SaveCandidates(ctx context.Context, c Category, points []geo.Point) error
	Candidates(ctx context.Context, c Category) ([]geo.Point, error)
}

// RunRecorder persists a summary of each completed run. Optional.
type RunRecorder interface {
	RecordRun(ctx context.Context, s Summary) error
}

// Summary aggregates the counts of one dataset build.
type Summary struct {
	RunID       string
	Category    Category
	Fetched     int // points returned by the external source (plus seeds)
	Synthesized int // points produced by rejection sampling, both passes
	Duplicates  int // exact duplicates removed after the merge
	Final       int // points persisted
	Elapsed     time.Duration
}

// Assembler drives one dataset build: fetch, top up, dedupe, top up again,
// truncate, persist. Collaborators beyond Fetcher and Writer are optional.
type Assembler struct {
	Fetcher Fetcher
	Writer  Writer
	Cache   CandidateCache
	Runs    RunRecorder
	Rng     *rand.Rand
}

// Build produces the dataset described by spec and writes it to dest.
// External fetch failures degrade to synthetic-only output; the only fatal
// condition is the writer failing.
func (a *Assembler) Build(ctx context.Context, spec Spec, dest string) (*Summary, error) {
	log := zap.L().With(
		zap.String("component", "dataset.assembler"),
		zap.String("category", spec.Category.String()),
	)
	start := time.Now()

	points := a.fetch(ctx, spec, log)
	points = append(points, spec.SeedPoints...)

	// The external queries target an administrative area that extends past
	// the approximate bounding box, so ingested points get the same
	// boundary gate as synthetic candidates. Only the aggregate matters.
	points, outOfBounds := clampToBox(spec.Box, points)
	if outOfBounds > 0 {
		log.Warn("dropped out-of-bounds candidates", zap.Int("count", outOfBounds))
	}

	fetched := len(points)
	log.Info("candidate points collected", zap.Int("count", fetched))

	gen := synth.Generator{
		Box:          spec.Box,
		MinSpacingKM: spec.MinSpacingKM,
		Sampler: synth.Sampler{
			Center:   spec.Center,
			RadiusKM: spec.RadiusKM,
			Hubs:     spec.Hubs,
		},
	}

	synthesized := 0
	if missing := spec.TargetCount - len(points); missing > 0 {
		log.Info("topping up with synthetic points", zap.Int("missing", missing))
		fresh := gen.Generate(a.Rng, points, missing, spec.MaxAttempts(missing))
		points = append(points, fresh...)
		synthesized += len(fresh)
	}

	deduped := synth.Dedupe(points)
	duplicates := len(points) - len(deduped)

	// Deduplication can drop the count back under target; refill with a
	// doubled spacing so the second pass spreads rather than re-crowds.
	if missing := spec.TargetCount - len(deduped); missing > 0 {
		log.Info("refilling after deduplication",
			zap.Int("missing", missing),
			zap.Int("duplicates_removed", duplicates),
		)
		regen := gen
		regen.MinSpacingKM = 2 * spec.MinSpacingKM
		fresh := regen.Generate(a.Rng, deduped, missing, spec.MaxAttempts(missing))
		deduped = append(deduped, fresh...)
		synthesized += len(fresh)
	}

	if len(deduped) > spec.TargetCount {
		deduped = deduped[:spec.TargetCount]
	}

	if err := a.Writer.Persist(deduped, dest); err != nil {
		return nil, eris.Wrapf(err, "assembler: persist %s dataset", spec.Category)
	}

	sum := &Summary{
		RunID:       uuid.New().String(),
		Category:    spec.Category,
		Fetched:     fetched,
		Synthesized: synthesized,
		Duplicates:  duplicates,
		Final:       len(deduped),
		Elapsed:     time.Since(start),
	}

	if a.Runs != nil {
		if err := a.Runs.RecordRun(ctx, *sum); err != nil {
			log.Warn("failed to record run", zap.Error(err))
		}
	}

	log.Info("dataset assembled",
		zap.String("run_id", sum.RunID),
		zap.Int("fetched", sum.Fetched),
		zap.Int("synthesized", sum.Synthesized),
		zap.Int("duplicates", sum.Duplicates),
		zap.Int("final", sum.Final),
		zap.Duration("elapsed", sum.Elapsed),
		zap.String("dest", dest),
	)
	return sum, nil
}

// clampToBox drops points outside the box, preserving order, and returns
// the survivors with the dropped count.
func clampToBox(box geo.BBox, points []geo.Point) ([]geo.Point, int) {
	kept := make([]geo.Point, 0, len(points))
	dropped := 0
	for _, p := range points {
		if box.Contains(p) {
			kept = append(kept, p)
		} else {
			dropped++
		}
	}
	return kept, dropped
}

// fetch runs every category query, concatenating results. All failures are
// swallowed: a query that errors contributes nothing. When every query comes
// back empty the cache, if present, stands in for the external source.
func (a *Assembler) fetch(ctx context.Context, spec Spec, log *zap.Logger) []geo.Point {
	var points []geo.Point
	for i, q := range spec.Queries {
		got, err := a.Fetcher.FetchCandidates(ctx, q)
		if err != nil {
			log.Warn("external fetch failed, continuing without it",
				zap.Int("query", i),
				zap.Error(err),
			)
			continue
		}
		points = append(points, got...)
	}

	if len(points) == 0 && a.Cache != nil {
		cached, err := a.Cache.Candidates(ctx, spec.Category)
		if err != nil {
			log.Warn("candidate cache read failed", zap.Error(err))
		} else if len(cached) > 0 {
			log.Info("using cached candidates", zap.Int("count", len(cached)))
			return cached
		}
		return points
	}

	if len(points) > 0 && a.Cache != nil {
		if err := a.Cache.SaveCandidates(ctx, spec.Category, points); err != nil {
			log.Warn("candidate cache write failed", zap.Error(err))
		}
	}
	return points
}
