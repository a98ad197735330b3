package model

import (
	"strings"
	"testing"
)

// charMeasurer is 10 units per byte, one line high.
type charMeasurer struct{}

func (charMeasurer) MeasureText(s string) Size {
	return Size{Width: float64(10 * len(s)), Height: 10}
}

func TestSpan(t *testing.T) {
	s := NewSpan(2, 3)
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if s.Last() != 4 {
		t.Errorf("Last() = %d, want 4", s.Last())
	}
	for i, want := range map[int]bool{1: false, 2: true, 4: true, 5: false} {
		if got := s.Contains(i); got != want {
			t.Errorf("Contains(%d) = %v, want %v", i, got, want)
		}
	}
	if got := s.String(); got != "[2 3 4]" {
		t.Errorf("String() = %q, want [2 3 4]", got)
	}
	if (Span{Start: 3, End: 1}).Len() != 0 {
		t.Error("inverted span has non-zero length")
	}
}

func TestNewTextBlock(t *testing.T) {
	b := NewTextBlock("abcd", charMeasurer{})
	if b.Size.Width != 40 || b.Size.Height != 10 {
		t.Errorf("Size = %+v, want 40x10", b.Size)
	}
	if b.MinWidth != 10 {
		t.Errorf("MinWidth = %g, want 10", b.MinWidth)
	}
	if b.MaxWidth != 40 {
		t.Errorf("MaxWidth = %g, want 40", b.MaxWidth)
	}
	if _, ok := b.Bounds(); ok {
		t.Error("new block reports bounds")
	}

	b.Place(BBox{X: 5, Y: 6, Width: 70, Height: 10})
	r, ok := b.Bounds()
	if !ok || r.Width != 70 {
		t.Errorf("Bounds() = %+v, %v", r, ok)
	}
	if p, _ := b.Position(); p != (Point{X: 5, Y: 6}) {
		t.Errorf("Position() = %+v", p)
	}
	if b.Size.Width != 40 {
		t.Error("Place changed the measured size")
	}
}

func TestBBox(t *testing.T) {
	a := NewBBox(Point{X: 0, Y: 0}, Size{Width: 10, Height: 10})
	b := BBox{X: 10, Y: 0, Width: 5, Height: 10}
	c := BBox{X: 5, Y: 5, Width: 10, Height: 10}

	if a.Right() != 10 || a.Bottom() != 10 {
		t.Errorf("Right/Bottom = %g/%g", a.Right(), a.Bottom())
	}
	if a.Overlaps(b) {
		t.Error("edge-sharing boxes overlap")
	}
	if !a.Overlaps(c) {
		t.Error("intersecting boxes do not overlap")
	}
	if !a.Contains(Point{X: 10, Y: 10}) {
		t.Error("corner not contained")
	}
	if !(BBox{Width: 3}).IsEmpty() {
		t.Error("zero-height box not empty")
	}
}

func TestTableLookups(t *testing.T) {
	m := charMeasurer{}
	wide := NewTableCell(NewTextBlock("head", m), 0, NewSpan(0, 2))
	left := NewTableCell(NewTextBlock("l", m), 1, NewSpan(0, 1))
	right := NewTableCell(NewTextBlock("r", m), 1, NewSpan(1, 1))
	tbl := &Table{Rows: 2, Cols: 2, Cells: []*TableCell{wide, left, right}}

	if got := tbl.CellAt(0, 1); got != wide {
		t.Errorf("CellAt(0,1) = %v, want spanning header", got)
	}
	if got := tbl.CellAt(1, 1); got != right {
		t.Errorf("CellAt(1,1) = %v", got)
	}
	if got := tbl.CellAt(2, 0); got != nil {
		t.Errorf("CellAt(2,0) = %v, want nil", got)
	}
	if row := tbl.CellsInRow(1); len(row) != 2 || row[0] != left {
		t.Errorf("CellsInRow(1) = %v", row)
	}
	if tbl.Size() != (Size{}) {
		t.Error("Size() before layout is not zero")
	}
}

func TestTableString(t *testing.T) {
	m := charMeasurer{}
	cell := NewTableCell(NewTextBlock("ab", m), 0, NewSpan(0, 2))
	tbl := &Table{Rows: 1, Cols: 2, Cells: []*TableCell{cell}}

	s := tbl.String()
	for _, want := range []string{"rows: 1, cols: 2", "row_range: [0], col_range: [0 1]", `"ab"`} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
	if strings.Contains(s, "bounds") {
		t.Error("String() prints bounds before layout")
	}

	tbl.Layout = &Layout{ColWidths: []float64{10, 10}, Size: Size{Width: 20, Height: 10}}
	cell.Block.Place(BBox{Width: 20, Height: 10})
	s = tbl.String()
	if !strings.Contains(s, "max_width_cols: [10 10]") || !strings.Contains(s, "bounds: (0,0 20x10)") {
		t.Errorf("String() after layout:\n%s", s)
	}
}

func TestDocument(t *testing.T) {
	d := NewDocument()
	if d.TableCount() != 0 || d.GetTable(0) != nil {
		t.Error("new document is not empty")
	}
	tbl := &Table{}
	d.AddTable(tbl)
	if d.TableCount() != 1 || d.GetTable(0) != tbl {
		t.Error("AddTable did not store the table")
	}
	if d.GetTable(-1) != nil {
		t.Error("GetTable(-1) returned a table")
	}
}
