package tabgrid

import (
	"go.uber.org/zap"

	"github.com/tsawler/tabgrid/measure"
	"github.com/tsawler/tabgrid/tables"
)

// ExtractOptions holds configuration for table extraction.
type ExtractOptions struct {
	// Reading
	keepNewlines   bool
	decorationTags []string // nil means normalize.DefaultDecorationTags

	// Layout
	layout tables.Config
	device measure.Device // nil means the reference monospace device

	log *zap.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		layout: tables.DefaultConfig(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o
	if o.decorationTags != nil {
		newOpts.decorationTags = make([]string, len(o.decorationTags))
		copy(newOpts.decorationTags, o.decorationTags)
	}
	return newOpts
}
