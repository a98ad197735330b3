package tables

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tsawler/tabgrid/dom"
	"github.com/tsawler/tabgrid/measure"
)

const mixedDocument = `<html><body>
<table id="first"><tbody><tr><td>alpha</td><td>beta</td></tr></tbody></table>
<table id="caption-only"><caption>nothing</caption></table>
<table id="outer"><tbody><tr><td>
	<table id="inner"><tr><td>nested <b>cell</b></td></tr></table>
</td></tr></tbody></table>
<table id="last" style="width:50%"><tbody><tr><td>omega</td></tr></tbody></table>
</body></html>`

func TestExtractor_Extract(t *testing.T) {
	for _, workers := range []int{1, 4} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			tree := parseNormalized(t, mixedDocument)
			cfg := DefaultConfig()
			cfg.Workers = workers
			ex := NewExtractor(measure.NewMonospace(20), cfg, testLogger(t))

			tbls, err := ex.Extract(tree, tree.Root())
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if len(tbls) != 3 {
				t.Fatalf("got %d tables, want 3", len(tbls))
			}

			var texts []string
			for _, tbl := range tbls {
				if tbl.Layout == nil {
					t.Error("table returned without layout")
				}
				texts = append(texts, tbl.Cells[0].Text())
			}
			if got := strings.Join(texts, ","); got != "alpha,nested cell,omega" {
				t.Errorf("tables in order = %s", got)
			}
			if !tbls[2].Layout.WidthOverridden || tbls[2].Layout.Size.Width != 300 {
				t.Errorf("last table layout = %+v", tbls[2].Layout)
			}
			if tbls[0].Layout.Size.Width != 180 {
				t.Errorf("first table width = %g, want 180", tbls[0].Layout.Size.Width)
			}
		})
	}
}

func TestExtractor_Subtree(t *testing.T) {
	tree := parseNormalized(t, mixedDocument)
	var outer dom.NodeID = dom.NoNode
	for _, n := range dom.FindElements(tree, tree.Root(), "table") {
		if id, _ := tree.Attribute(n, "id"); id == "outer" {
			outer = n
		}
	}
	if outer == dom.NoNode {
		t.Fatal("outer table not found")
	}

	tbls, err := NewExtractor(nil, DefaultConfig(), nil).Extract(tree, outer)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(tbls) != 1 || tbls[0].Cells[0].Text() != "nested cell" {
		t.Errorf("Extract(outer) = %v", tbls)
	}
}

func TestExtractor_NoTables(t *testing.T) {
	tree := parseNormalized(t, `<p>no tables here</p>`)
	tbls, err := NewExtractor(nil, DefaultConfig(), nil).Extract(tree, tree.Root())
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(tbls) != 0 {
		t.Errorf("got %d tables, want 0", len(tbls))
	}
}

func TestExtractor_InvalidRoot(t *testing.T) {
	ex := NewExtractor(nil, DefaultConfig(), nil)
	if _, err := ex.Extract(dom.New(), 40); !errors.Is(err, dom.ErrInvalidNode) {
		t.Errorf("Extract() error = %v, want ErrInvalidNode", err)
	}
	if _, err := ex.Extract(nil, 0); !errors.Is(err, dom.ErrInvalidNode) {
		t.Errorf("Extract(nil) error = %v, want ErrInvalidNode", err)
	}
}

func TestDeclaresWidth(t *testing.T) {
	tests := []struct {
		style string
		want  bool
	}{
		{"width:100px", true},
		{"  Width : 3em ; color: red", true},
		{"color: red; width: auto", true},
		{"min-width: 3em", false},
		{"border-width: 1px", false},
		{"", false},
		{"--width: 3px", false},
	}
	for _, tt := range tests {
		if got := declaresWidth(tt.style); got != tt.want {
			t.Errorf("declaresWidth(%q) = %v, want %v", tt.style, got, tt.want)
		}
	}
}

func TestConfigStrings(t *testing.T) {
	if RowStepFixed.String() != "fixed" || RowStepMeasured.String() != "measured" || RowPlacement(9).String() != "unknown" {
		t.Error("RowPlacement.String() mismatch")
	}
	if MatchSubstring.String() != "substring" || MatchDeclaration.String() != "declaration" || OverrideMatch(9).String() != "unknown" {
		t.Error("OverrideMatch.String() mismatch")
	}
}
