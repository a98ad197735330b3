package tables

import (
	"go.uber.org/zap"

	"github.com/tsawler/tabgrid/model"
)

// Distributor assigns column widths, row heights and cell positions.
type Distributor struct {
	cfg Config
	log *zap.Logger
}

// NewDistributor creates a distributor. A nil logger disables logging.
func NewDistributor(cfg Config, log *zap.Logger) *Distributor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Distributor{cfg: cfg, log: log.Named("distributor")}
}

// Layout computes the geometry of t and places every cell.
//
// A cell spanning n columns contributes width/n to each of them, and each
// column takes the largest contribution it receives. A cell is then placed at
// the sum of the widths of the columns before it and widened to the sum of
// the widths of the columns it spans. Rows step down by RowUnit (or by the
// measured heights, see RowPlacement). The table width is the sum of the
// column widths unless the style override applies.
func (d *Distributor) Layout(t *model.Table) {
	l := &model.Layout{
		ColWidths:    make([]float64, t.Cols),
		MinColWidths: make([]float64, t.Cols),
		RowHeights:   make([]float64, t.Rows),
	}

	for _, c := range t.Cells {
		share := c.Block.Size.Width / float64(c.ColRange.Len())
		for col := c.ColRange.Start; col < c.ColRange.End; col++ {
			l.ColWidths[col] = max(l.ColWidths[col], share)
			l.MinColWidths[col] = max(l.MinColWidths[col], c.Block.MinWidth)
		}
		r := c.Row()
		l.RowHeights[r] = max(l.RowHeights[r], c.Block.Size.Height)
	}

	// colX[i] is the left edge of column i; colX[Cols] is the total width.
	colX := make([]float64, t.Cols+1)
	for i, w := range l.ColWidths {
		colX[i+1] = colX[i] + w
	}
	rowY := d.rowPositions(l.RowHeights)

	for _, c := range t.Cells {
		c.Block.Place(model.BBox{
			X:      colX[c.ColRange.Start],
			Y:      rowY[c.Row()],
			Width:  colX[c.ColRange.End] - colX[c.ColRange.Start],
			Height: c.Block.Size.Height,
		})
	}

	l.Size.Width = colX[t.Cols]
	for _, h := range l.RowHeights {
		l.Size.Height += h
	}
	if styleOverrides(t.Style, d.cfg.OverrideMatch) {
		l.Size.Width = d.cfg.OverrideWidth
		l.WidthOverridden = true
		d.log.Debug("Table width overridden by style",
			zap.String("style", t.Style),
			zap.Float64("width", d.cfg.OverrideWidth))
	}

	t.Layout = l
	d.log.Debug("Laid out table",
		zap.Int("rows", t.Rows),
		zap.Int("cols", t.Cols),
		zap.Float64("width", l.Size.Width),
		zap.Float64("height", l.Size.Height))
}

// rowPositions returns the top y of every row.
func (d *Distributor) rowPositions(heights []float64) []float64 {
	ys := make([]float64, len(heights))
	for r := range ys {
		switch d.cfg.RowPlacement {
		case RowStepMeasured:
			if r > 0 {
				ys[r] = ys[r-1] + heights[r-1]
			}
		default:
			ys[r] = float64(r) * d.cfg.RowUnit
		}
	}
	return ys
}
