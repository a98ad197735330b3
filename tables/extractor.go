package tables

import (
	"errors"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/tsawler/tabgrid/dom"
	"github.com/tsawler/tabgrid/measure"
	"github.com/tsawler/tabgrid/model"
)

// Extractor finds table elements in a tree, builds their grids and lays them
// out.
type Extractor struct {
	builder *Builder
	dist    *Distributor
	workers int
	log     *zap.Logger
}

// NewExtractor creates an extractor. A nil device selects the reference
// monospace device; a nil logger disables logging.
func NewExtractor(dev measure.Device, cfg Config, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{
		builder: NewBuilder(dev, log),
		dist:    NewDistributor(cfg, log),
		workers: cfg.Workers,
		log:     log.Named("extractor"),
	}
}

// Extract returns the laid-out tables under root in document order. Tables
// that do not have exactly one tbody are left out.
//
// The tree is only read. It must already be normalized and must not be
// mutated while Extract runs; with more than one worker, tables are processed
// concurrently.
func (e *Extractor) Extract(t *dom.Tree, root dom.NodeID) ([]*model.Table, error) {
	if err := t.Check(root); err != nil {
		return nil, err
	}

	nodes := dom.FindElements(t, root, "table")
	results := make([]*model.Table, len(nodes))
	errs := make([]error, len(nodes))

	if e.workers < 2 || len(nodes) < 2 {
		for i, n := range nodes {
			results[i], errs[i] = e.one(t, n)
		}
	} else {
		sem := make(chan struct{}, e.workers)
		var wg sync.WaitGroup
		for i, n := range nodes {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int, n dom.NodeID) {
				defer wg.Done()
				defer func() { <-sem }()
				results[i], errs[i] = e.one(t, n)
			}(i, n)
		}
		wg.Wait()
	}

	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}

	out := make([]*model.Table, 0, len(results))
	for _, tbl := range results {
		if tbl != nil {
			out = append(out, tbl)
		}
	}
	e.log.Debug("Extracted tables",
		zap.Int("found", len(nodes)),
		zap.Int("kept", len(out)))
	return out, nil
}

// one builds and lays out a single table. Tables rejected by the tbody rule
// yield (nil, nil).
func (e *Extractor) one(t *dom.Tree, n dom.NodeID) (*model.Table, error) {
	tbl, err := e.builder.Build(t, n)
	switch {
	case errors.Is(err, ErrNoBody), errors.Is(err, ErrMultipleBodies):
		e.log.Debug("Skipping table", zap.Int("node", int(n)), zap.Error(err))
		return nil, nil
	case err != nil:
		return nil, err
	}
	e.dist.Layout(tbl)
	return tbl, nil
}
