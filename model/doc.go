// Package model defines the records produced by table extraction.
//
// # Tables
//
// A [Table] is built from one table element and lists its non-empty cells in
// document order. Each [TableCell] owns a [TextBlock] and records the grid
// rows and columns it occupies as a [Span]:
//
//	for _, cell := range table.Cells {
//	    fmt.Println(cell.Row(), cell.ColRange, cell.Text())
//	}
//
// # Two-phase geometry
//
// Records are created without geometry. A layout pass then fills
// [Table.Layout] and places every [TextBlock]; after that the records are not
// modified again:
//
//	bounds, ok := cell.Block.Bounds()
//
// # Geometry
//
// [Point], [Size] and [BBox] use abstract layout units with Y growing
// downward, so row 0 sits at the top of the table.
package model
