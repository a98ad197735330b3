// Package tabgrid provides a fluent API for extracting laid-out table grids
// from HTML documents.
//
// Basic usage:
//
//	tables, err := tabgrid.Open("report.html").Tables()
//	if err != nil {
//	    // handle error
//	}
//	for _, t := range tables {
//	    fmt.Println(t)
//	}
//
// With options:
//
//	doc, err := tabgrid.Open("report.html").
//	    RowUnit(24).
//	    MeasuredRows().
//	    DeclarationOverride().
//	    Workers(4).
//	    Document()
//
// For advanced use cases, the lower-level htmldoc, normalize and tables
// packages are also available.
package tabgrid

import (
	"github.com/tsawler/tabgrid/htmldoc"
)

// Open opens an HTML file and returns an Extractor for fluent configuration.
// The file is read by the first terminal operation, such as Tables().
//
// Example:
//
//	tables, err := tabgrid.Open("report.html").Tables()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened htmldoc.Reader.
// Reading options (KeepNewlines, DecorationTags) have no effect since the
// document is already parsed.
// Note: The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := htmldoc.Open("report.html", htmldoc.Options{})
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	tables, err := tabgrid.FromReader(r).Tables()
func FromReader(r *htmldoc.Reader) *Extractor {
	return &Extractor{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	tables := tabgrid.Must(tabgrid.Open("report.html").Tables())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
