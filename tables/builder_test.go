package tables

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"golang.org/x/net/html"

	"github.com/tsawler/tabgrid/dom"
	"github.com/tsawler/tabgrid/measure"
	"github.com/tsawler/tabgrid/normalize"
)

// parseNormalized parses markup, normalizes the whole tree and returns it.
func parseNormalized(t *testing.T, markup string) *dom.Tree {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	tree, root, err := dom.FromHTML(doc)
	if err != nil {
		t.Fatalf("FromHTML() error = %v", err)
	}
	if _, err := normalize.New(nil).Normalize(tree, root); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	return tree
}

func testLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}

func firstTable(t *testing.T, tree *dom.Tree) dom.NodeID {
	t.Helper()
	tbls := dom.FindElements(tree, tree.Root(), "table")
	if len(tbls) == 0 {
		t.Fatal("no table element in markup")
	}
	return tbls[0]
}

func TestBuilder_Build(t *testing.T) {
	tree := parseNormalized(t, `<table style="border:1px"><tbody>
		<tr><th colspan="2">Golden <a href="#">Hind</a> voyages</th></tr>
		<tr><td>ab</td><td>Golden Hind voyages</td></tr>
		<tr><td>x</td><td>y</td></tr>
	</tbody></table>`)

	b := NewBuilder(measure.NewMonospace(20), testLogger(t))
	tbl, err := b.Build(tree, firstTable(t, tree))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if tbl.Rows != 3 || tbl.Cols != 2 {
		t.Errorf("Rows, Cols = %d, %d; want 3, 2", tbl.Rows, tbl.Cols)
	}
	if tbl.Style != "border:1px" {
		t.Errorf("Style = %q", tbl.Style)
	}
	if len(tbl.Cells) != 5 {
		t.Fatalf("got %d cells, want 5", len(tbl.Cells))
	}

	want := []struct {
		text  string
		row   int
		start int
		n     int
	}{
		{"Golden Hind voyages", 0, 0, 2},
		{"ab", 1, 0, 1},
		{"Golden Hind voyages", 1, 1, 1},
		{"x", 2, 0, 1},
		{"y", 2, 1, 1},
	}
	for i, w := range want {
		c := tbl.Cells[i]
		if c.Text() != w.text {
			t.Errorf("cell %d text = %q, want %q", i, c.Text(), w.text)
		}
		if c.RowRange.Len() != 1 || c.Row() != w.row {
			t.Errorf("cell %d row_range = %s, want [%d]", i, c.RowRange, w.row)
		}
		if c.ColRange.Start != w.start || c.ColRange.Len() != w.n {
			t.Errorf("cell %d col_range = %s, want start %d len %d", i, c.ColRange, w.start, w.n)
		}
		if _, placed := c.Block.Bounds(); placed {
			t.Errorf("cell %d placed before layout", i)
		}
	}
	if tbl.Cells[0].Block.Size.Width != 380 || tbl.Cells[0].Block.MinWidth != 20 {
		t.Errorf("header block = %+v", tbl.Cells[0].Block)
	}
	if tbl.Layout != nil {
		t.Error("Build() set Layout")
	}
}

func TestBuilder_EmptyCellsConsumeColumns(t *testing.T) {
	tree := parseNormalized(t, `<table><tbody><tr><td></td><td colspan="2">   </td><td>z</td></tr></tbody></table>`)
	tbl, err := NewBuilder(nil, nil).Build(tree, firstTable(t, tree))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(tbl.Cells) != 1 {
		t.Fatalf("got %d cells, want 1", len(tbl.Cells))
	}
	if got := tbl.Cells[0].ColRange; got.Start != 3 || got.Len() != 1 {
		t.Errorf("col_range = %s, want [3]", got)
	}
	if tbl.Cols != 4 {
		t.Errorf("Cols = %d, want 4", tbl.Cols)
	}
}

func TestBuilder_NoCells(t *testing.T) {
	tree := parseNormalized(t, `<table><tbody><tr><td> </td></tr><tr></tr></tbody></table>`)
	tbl, err := NewBuilder(nil, nil).Build(tree, firstTable(t, tree))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if tbl.Rows != 2 || tbl.Cols != 0 || len(tbl.Cells) != 0 {
		t.Errorf("Rows, Cols, cells = %d, %d, %d; want 2, 0, 0", tbl.Rows, tbl.Cols, len(tbl.Cells))
	}
}

func TestBuilder_BodyRule(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   error
	}{
		{"no tbody", `<table><caption>only a caption</caption></table>`, ErrNoBody},
		{"two tbody", `<table><tbody><tr><td>a</td></tr></tbody><tbody><tr><td>b</td></tr></tbody></table>`, ErrMultipleBodies},
		{"nested table", `<table><tbody><tr><td><table><tr><td>in</td></tr></table></td></tr></tbody></table>`, ErrMultipleBodies},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parseNormalized(t, tt.markup)
			_, err := NewBuilder(nil, testLogger(t)).Build(tree, firstTable(t, tree))
			if !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuilder_OnlyDirectCellChildren(t *testing.T) {
	tree := dom.New()
	table := tree.NewElement("table")
	tbody := tree.NewElement("tbody")
	tr := tree.NewElement("tr")
	mustAppend(t, tree, tree.Root(), table)
	mustAppend(t, tree, table, tbody)
	mustAppend(t, tree, tbody, tr)

	td := tree.NewElement("td")
	div := tree.NewElement("div")
	th := tree.NewElement("th", dom.Attribute{Key: "colspan", Val: "3"})
	mustAppend(t, tree, tr, td, tree.NewText("stray"), div, th)
	mustAppend(t, tree, td, tree.NewText("a"))
	mustAppend(t, tree, div, tree.NewText("skipped"))
	mustAppend(t, tree, th, tree.NewText("c"))

	tbl, err := NewBuilder(nil, nil).Build(tree, table)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(tbl.Cells) != 2 {
		t.Fatalf("got %d cells, want 2", len(tbl.Cells))
	}
	if c := tbl.Cells[1]; c.Text() != "c" || c.ColRange.Start != 1 || c.ColRange.Len() != 3 {
		t.Errorf("th cell = %q %s", c.Text(), c.ColRange)
	}
	if tbl.Cols != 4 {
		t.Errorf("Cols = %d, want 4", tbl.Cols)
	}
}

func TestBuilder_InvalidNode(t *testing.T) {
	if _, err := NewBuilder(nil, nil).Build(dom.New(), 3); !errors.Is(err, dom.ErrInvalidNode) {
		t.Errorf("Build() error = %v, want ErrInvalidNode", err)
	}
}

func TestParseColSpan(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1", 1},
		{"2", 2},
		{"", 1},
		{"abc", 1},
		{"-1", 1},
		{" 2", 1},
		{"2.5", 1},
		{"0", 1},
		{"1000", 1000},
		{"5000", MaxColSpan},
		{"99999999999", 1},
	}
	for _, tt := range tests {
		if got := parseColSpan(tt.in); got != tt.want {
			t.Errorf("parseColSpan(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func mustAppend(t *testing.T, tree *dom.Tree, parent dom.NodeID, kids ...dom.NodeID) {
	t.Helper()
	for _, k := range kids {
		if err := tree.AppendChild(parent, k); err != nil {
			t.Fatalf("AppendChild() error = %v", err)
		}
	}
}
