package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// RunResult is what one search hands to the presentation layer.
type RunResult struct {
	Stats     RunStats       `json:"stats"`
	Survivors []SolutionView `json:"survivors"`

	solutions []Solution
	ignore    FocusSet
}

// Table renders the survivors as the console table.
func (r *RunResult) Table() string {
	return FormatSurvivors(r.solutions, r.ignore)
}

// loadCatalog picks the configured catalog file or the embedded default.
func loadCatalog(cfg Config) (*Catalog, error) {
	if cfg.CatalogPath != "" {
		return LoadCatalog(cfg.CatalogPath)
	}
	return DefaultCatalog()
}

// runSearch performs one full search over cat and writes the metrics file
// when one is configured.
func runSearch(ctx context.Context, cat *Catalog, cfg Config, logger *zap.Logger) (*RunResult, error) {
	opt, err := NewOptimizer(cat, cfg, logger)
	if err != nil {
		return nil, err
	}
	tracker, stats, err := opt.Search(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if cfg.MetricsFile != "" {
		if err := opt.WriteMetrics(cfg.MetricsFile); err != nil {
			return nil, err
		}
	}

	res := &RunResult{
		Stats:     stats,
		solutions: tracker.Survivors(),
		ignore:    opt.Ignored(),
	}
	res.Survivors = make([]SolutionView, len(res.solutions))
	for i, s := range res.solutions {
		res.Survivors[i] = NewSolutionView(s, res.ignore)
	}
	return res, nil
}
