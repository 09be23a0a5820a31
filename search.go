package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ── Optimizer ───────────────────────────────────────────────────────

// Optimizer enumerates shard placements and link subsets for every crew
// allocation of a catalog and feeds the activations to a Tracker.
type Optimizer struct {
	catalog *Catalog
	cfg     Config
	ignore  FocusSet
	log     *zap.Logger
	metrics *searchMetrics
}

// RunStats summarizes one search.
type RunStats struct {
	Allocations      int           `json:"allocations"`
	Placements       int           `json:"placements"`
	PrunedPlacements int           `json:"prunedPlacements"`
	LinkSubsets      int           `json:"linkSubsets"`
	Candidates       int           `json:"candidates"`
	Accepted         int           `json:"accepted"`
	Survivors        int           `json:"survivors"`
	Elapsed          time.Duration `json:"elapsedNs"`
}

type exploreStats struct {
	placements, pruned, subsets, candidates int
}

// NewOptimizer validates cfg against the focus domain.
func NewOptimizer(cat *Catalog, cfg Config, logger *zap.Logger) (*Optimizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	ignore, _ := cfg.IgnoreSet()
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Optimizer{
		catalog: cat,
		cfg:     cfg,
		ignore:  ignore,
		log:     logger,
		metrics: newSearchMetrics(),
	}, nil
}

// Ignored is the run-wide set of ignored foci.
func (o *Optimizer) Ignored() FocusSet { return o.ignore }

// Search explores every crew allocation and returns the tracker it filled.
// A nil tracker starts a fresh one. Allocations are submitted in catalog
// order regardless of Workers, so the outcome is identical for any worker
// count.
func (o *Optimizer) Search(ctx context.Context, t *Tracker) (*Tracker, RunStats, error) {
	if t == nil {
		t = NewTracker(o.catalog)
	}
	start := time.Now()
	stats := RunStats{Allocations: len(o.catalog.Allocations)}

	if o.cfg.Workers <= 1 {
		for i, alloc := range o.catalog.Allocations {
			if err := ctx.Err(); err != nil {
				return t, stats, err
			}
			st := o.explore(i, alloc, func(c Candidate) { o.submit(t, c, &stats) })
			o.record(&stats, st)
		}
	} else {
		batches := make([][]Candidate, len(o.catalog.Allocations))
		allocStats := make([]exploreStats, len(o.catalog.Allocations))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.cfg.Workers)
		for i, alloc := range o.catalog.Allocations {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				allocStats[i] = o.explore(i, alloc, func(c Candidate) {
					batches[i] = append(batches[i], c)
				})
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return t, stats, err
		}
		for i, batch := range batches {
			for _, c := range batch {
				o.submit(t, c, &stats)
			}
			o.record(&stats, allocStats[i])
		}
	}

	stats.Survivors = len(t.Survivors())
	stats.Elapsed = time.Since(start)
	o.metrics.survivors.Set(float64(stats.Survivors))
	o.log.Info("search finished",
		zap.Int("allocations", stats.Allocations),
		zap.Int("placements", stats.Placements),
		zap.Int("pruned", stats.PrunedPlacements),
		zap.Int("candidates", stats.Candidates),
		zap.Int("accepted", stats.Accepted),
		zap.Int("survivors", stats.Survivors),
		zap.Duration("elapsed", stats.Elapsed))
	return t, stats, nil
}

func (o *Optimizer) submit(t *Tracker, c Candidate, stats *RunStats) {
	res := t.Submit(c)
	o.metrics.submissions.WithLabelValues(res.String()).Inc()
	if res == Accepted {
		stats.Accepted++
	}
}

func (o *Optimizer) record(stats *RunStats, st exploreStats) {
	stats.Placements += st.placements
	stats.PrunedPlacements += st.pruned
	stats.LinkSubsets += st.subsets
	stats.Candidates += st.candidates
}

// explore runs the placement and link search for one allocation. It reads
// only immutable catalog data, so several allocations may be explored at
// once; emit is called in enumeration order.
func (o *Optimizer) explore(idx int, alloc CrewAllocation, emit func(Candidate)) exploreStats {
	var st exploreStats
	feas := o.catalog.Feasible(alloc, o.ignore)

	if granted := exclusive(feas.Granted); !granted.Empty() {
		st.candidates++
		emit(Candidate{AllocIndex: idx, Allocation: alloc, Activation: Activation{Foci: granted}})
	}

	enumeratePlacements(feas.Shards, func(p Placement) {
		st.placements++
		potential := potentialFoci(&p, feas.Pool, feas.Ineligible)
		if potential.Empty() {
			st.pruned++
			return
		}
		p = trimPlacement(p, potential)
		st.subsets += resolveLinks(&p, potential, feas.Granted, o.cfg.MaxLinks, func(a Activation) {
			st.candidates++
			emit(Candidate{AllocIndex: idx, Allocation: alloc, Placement: p, Activation: a})
		})
	})

	o.metrics.placements.Add(float64(st.placements))
	o.metrics.pruned.Add(float64(st.pruned))
	o.metrics.linkSubsets.Add(float64(st.subsets))
	o.log.Debug("explored crew allocation",
		zap.Int("index", idx),
		zap.Stringer("crew", alloc),
		zap.Stringer("eligible", feas.Eligible),
		zap.Int("shards", len(feas.Shards)),
		zap.Int("placements", st.placements),
		zap.Int("pruned", st.pruned),
		zap.Int("candidates", st.candidates))
	return st
}

// WriteMetrics writes the search counters to path in Prometheus text format.
func (o *Optimizer) WriteMetrics(path string) error {
	if err := o.metrics.WriteTextfile(path); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
