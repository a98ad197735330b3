package tables

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/tsawler/tabgrid/dom"
	"github.com/tsawler/tabgrid/measure"
	"github.com/tsawler/tabgrid/model"
)

var (
	// ErrNoBody means the table element has no tbody descendant.
	ErrNoBody = errors.New("table has no tbody")
	// ErrMultipleBodies means the table element has more than one tbody
	// descendant, which includes tables nesting other tables.
	ErrMultipleBodies = errors.New("table has more than one tbody")
)

// MaxColSpan is the largest colspan honored; larger values are clamped.
const MaxColSpan = 1000

// Builder turns table elements into grid records.
type Builder struct {
	dev measure.Device
	log *zap.Logger
}

// NewBuilder creates a builder measuring cell text with dev. A nil device
// selects the reference monospace device and a nil logger disables logging.
func NewBuilder(dev measure.Device, log *zap.Logger) *Builder {
	if dev == nil {
		dev = measure.NewMonospace(measure.DefaultUnit)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{dev: dev, log: log.Named("builder")}
}

// Build extracts the grid of the table element el. The element must contain
// exactly one tbody; otherwise ErrNoBody or ErrMultipleBodies is returned and
// the table should be skipped.
//
// Rows are the tr elements under the tbody in document order. Within a row
// only direct th and td children are cells. Every cell advances the column
// cursor by its colspan, but cells whose collected text is empty produce no
// record.
func (b *Builder) Build(t *dom.Tree, el dom.NodeID) (*model.Table, error) {
	if err := t.Check(el); err != nil {
		return nil, err
	}

	bodies := dom.FindElements(t, el, "tbody")
	switch {
	case len(bodies) == 0:
		return nil, ErrNoBody
	case len(bodies) > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleBodies, len(bodies))
	}

	rows := dom.FindElements(t, bodies[0], "tr")
	tbl := &model.Table{Rows: len(rows)}
	tbl.Style, _ = t.Attribute(el, "style")

	for r, tr := range rows {
		col := 0
		for _, c := range t.Children(tr) {
			tag := t.TagName(c)
			if tag != "th" && tag != "td" {
				continue
			}

			span := colSpan(t, c)
			cols := model.NewSpan(col, span)
			col += span

			text := dom.CollectText(t, c)
			if text == "" {
				continue
			}
			tbl.Cells = append(tbl.Cells, model.NewTableCell(model.NewTextBlock(text, b.dev), r, cols))
		}
	}

	for _, c := range tbl.Cells {
		if last := c.ColRange.Last(); last+1 > tbl.Cols {
			tbl.Cols = last + 1
		}
	}

	b.log.Debug("Built table",
		zap.Int("node", int(el)),
		zap.Int("rows", tbl.Rows),
		zap.Int("cols", tbl.Cols),
		zap.Int("cells", len(tbl.Cells)))
	return tbl, nil
}

// colSpan reads the colspan attribute of a cell. Missing or malformed values
// count as 1, as does 0; values above MaxColSpan are clamped.
func colSpan(t *dom.Tree, cell dom.NodeID) int {
	v, ok := t.Attribute(cell, "colspan")
	if !ok {
		return 1
	}
	return parseColSpan(v)
}

func parseColSpan(v string) int {
	n, err := strconv.ParseUint(v, 10, 32)
	switch {
	case err != nil, n == 0:
		return 1
	case n > MaxColSpan:
		return MaxColSpan
	}
	return int(n)
}
