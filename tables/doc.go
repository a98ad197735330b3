// Package tables extracts table grids from a document tree and lays them out.
//
// # Pipeline
//
// The [Extractor] locates every table element under a root, turns each one
// into a [model.Table] with a [Builder], and assigns geometry with a
// [Distributor]:
//
//	ex := tables.NewExtractor(measure.NewMonospace(20), tables.DefaultConfig(), log)
//	tbls, err := ex.Extract(tree, root)
//
// The tree should be normalized first (see package normalize) so that cell
// text is not split by inline markup.
//
// # Grid extraction
//
// A table is recognized only when it has exactly one tbody descendant; other
// tables are skipped without error. Rows are the tr elements of that tbody.
// Each th or td child of a row occupies colspan columns starting at the row's
// column cursor. Cells with no text still advance the cursor but produce no
// record.
//
// # Layout
//
// Column widths come from splitting each cell's measured width evenly across
// the columns it spans and keeping the maximum per column. Cells are placed at
// the running sum of column widths and widened to fill their columns. Rows
// step down by a fixed unit by default.
//
// # Configuration
//
// Layout behavior is controlled by [Config]:
//
//	config := tables.DefaultConfig()
//	config.RowPlacement = tables.RowStepMeasured
//	config.OverrideMatch = tables.MatchDeclaration
//	config.Workers = 4
//
// Configuration options include:
//
//   - RowUnit - vertical step between rows (default 20)
//   - OverrideWidth - table width forced by a width style (default 300)
//   - RowPlacement - fixed-step or measured row positions
//   - OverrideMatch - substring or declaration test on the style attribute
//   - Workers - concurrent table processing after normalization
package tables
