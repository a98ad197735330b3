package model

import (
	"fmt"
	"strings"
)

// Span is a half-open range of grid indices [Start, End).
type Span struct {
	Start int
	End   int
}

// NewSpan returns the span of n indices starting at start.
func NewSpan(start, n int) Span {
	return Span{Start: start, End: start + n}
}

// Len returns the number of indices in the span.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Contains reports whether i lies in the span.
func (s Span) Contains(i int) bool {
	return i >= s.Start && i < s.End
}

// Last returns the largest index in the span, or Start-1 when it is empty.
func (s Span) Last() int {
	return s.End - 1
}

// Indices lists the indices of the span in increasing order.
func (s Span) Indices() []int {
	out := make([]int, 0, s.Len())
	for i := s.Start; i < s.End; i++ {
		out = append(out, i)
	}
	return out
}

func (s Span) String() string {
	return fmt.Sprint(s.Indices())
}

// TableCell is one non-empty cell of a table grid.
type TableCell struct {
	Block *TextBlock

	// RowRange always holds a single row; row spans are not modeled.
	RowRange Span

	// ColRange covers as many columns as the cell's colspan.
	ColRange Span
}

// NewTableCell creates a cell at row covering cols.
func NewTableCell(block *TextBlock, row int, cols Span) *TableCell {
	return &TableCell{
		Block:    block,
		RowRange: NewSpan(row, 1),
		ColRange: cols,
	}
}

// Row returns the row index of the cell.
func (c *TableCell) Row() int {
	return c.RowRange.Start
}

// Text returns the cell text.
func (c *TableCell) Text() string {
	return c.Block.Text
}

func (c *TableCell) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Cell = row_range: %s, col_range: %s\n", c.RowRange, c.ColRange)
	b := c.Block
	fmt.Fprintf(&sb, " %q size: %gx%g min_width: %g max_width: %g",
		b.Text, b.Size.Width, b.Size.Height, b.MinWidth, b.MaxWidth)
	if r, ok := b.Bounds(); ok {
		fmt.Fprintf(&sb, " bounds: (%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
	}
	return sb.String()
}

// Layout is the geometry assigned to a table by the distributor.
type Layout struct {
	// ColWidths holds the distributed width of every column.
	ColWidths []float64

	// MinColWidths holds, per column, the largest minimal width of the cells
	// touching it.
	MinColWidths []float64

	// RowHeights holds the largest measured height per row.
	RowHeights []float64

	// Size is the overall table size.
	Size Size

	// WidthOverridden reports that Size.Width was forced by the table's style
	// rather than summed from ColWidths.
	WidthOverridden bool
}

// Table is the grid extracted from one table element.
type Table struct {
	Rows int
	Cols int

	// Cells lists the non-empty cells in document order.
	Cells []*TableCell

	// Style is the raw style attribute of the table element.
	Style string

	// Layout is nil until the table has been laid out.
	Layout *Layout
}

// CellsInRow returns the cells of row r in column order.
func (t *Table) CellsInRow(r int) []*TableCell {
	var out []*TableCell
	for _, c := range t.Cells {
		if c.RowRange.Contains(r) {
			out = append(out, c)
		}
	}
	return out
}

// CellAt returns the cell covering (row, col), or nil.
func (t *Table) CellAt(row, col int) *TableCell {
	for _, c := range t.Cells {
		if c.RowRange.Contains(row) && c.ColRange.Contains(col) {
			return c
		}
	}
	return nil
}

// Size returns the laid-out table size, or the zero size before layout.
func (t *Table) Size() Size {
	if t.Layout == nil {
		return Size{}
	}
	return t.Layout.Size
}

func (t *Table) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Table = rows: %d, cols: %d", t.Rows, t.Cols)
	if l := t.Layout; l != nil {
		fmt.Fprintf(&sb, ", min_width_cols: %v, max_width_cols: %v, row_heights: %v, size: %gx%g",
			l.MinColWidths, l.ColWidths, l.RowHeights, l.Size.Width, l.Size.Height)
	}
	sb.WriteString("\n")
	for i, c := range t.Cells {
		fmt.Fprintf(&sb, "%d: %s\n\n", i, c)
	}
	return sb.String()
}
