package tabgrid

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tsawler/tabgrid/htmldoc"
	"github.com/tsawler/tabgrid/measure"
	"github.com/tsawler/tabgrid/model"
	"github.com/tsawler/tabgrid/tables"
)

// Extractor provides a fluent interface for extracting tables from HTML.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	reader   *htmldoc.Reader

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		reader:       e.reader,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		err:          e.err,
	}
}

// ensureReader opens the reader if not already open.
func (e *Extractor) ensureReader() error {
	if e.readerOpened {
		return nil
	}
	if e.filename == "" {
		return errors.New("no filename specified")
	}

	r, err := htmldoc.Open(e.filename, htmldoc.Options{
		KeepNewlines:   e.options.keepNewlines,
		DecorationTags: e.options.decorationTags,
		Logger:         e.options.log,
	})
	if err != nil {
		return fmt.Errorf("failed to open HTML: %w", err)
	}
	e.reader = r
	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsReader && e.reader != nil {
		err := e.reader.Close()
		e.reader = nil
		e.ownsReader = false
		e.readerOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// RowUnit sets the vertical step between rows. The default is 20.
func (e *Extractor) RowUnit(unit float64) *Extractor {
	newExt := e.clone()
	if unit <= 0 && newExt.err == nil {
		newExt.err = fmt.Errorf("invalid row unit %g: must be positive", unit)
	}
	newExt.options.layout.RowUnit = unit
	return newExt
}

// OverrideWidth sets the width forced on tables whose style attribute asks
// for one. The default is 300.
func (e *Extractor) OverrideWidth(width float64) *Extractor {
	newExt := e.clone()
	if width <= 0 && newExt.err == nil {
		newExt.err = fmt.Errorf("invalid override width %g: must be positive", width)
	}
	newExt.options.layout.OverrideWidth = width
	return newExt
}

// MeasuredRows places each row below the measured heights of the rows above
// it instead of stepping by the row unit.
func (e *Extractor) MeasuredRows() *Extractor {
	newExt := e.clone()
	newExt.options.layout.RowPlacement = tables.RowStepMeasured
	return newExt
}

// DeclarationOverride applies the width override only when the style
// attribute declares a width property, not when "width" merely appears in it.
func (e *Extractor) DeclarationOverride() *Extractor {
	newExt := e.clone()
	newExt.options.layout.OverrideMatch = tables.MatchDeclaration
	return newExt
}

// Workers sets how many tables are built and laid out concurrently.
func (e *Extractor) Workers(n int) *Extractor {
	newExt := e.clone()
	if n < 1 && newExt.err == nil {
		newExt.err = fmt.Errorf("invalid worker count %d: must be at least 1", n)
	}
	newExt.options.layout.Workers = n
	return newExt
}

// Measurer sets the device used to measure cell text.
//
// Example:
//
//	tables, err := tabgrid.Open("report.html").Measurer(measure.NewFace(nil)).Tables()
func (e *Extractor) Measurer(dev measure.Device) *Extractor {
	newExt := e.clone()
	newExt.options.device = dev
	return newExt
}

// Logger sets the logger for debug output. Nothing is logged by default.
func (e *Extractor) Logger(log *zap.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.log = log
	return newExt
}

// DecorationTags replaces the set of inline tags unwrapped before
// extraction. Ignored for extractors created with FromReader.
func (e *Extractor) DecorationTags(tags ...string) *Extractor {
	newExt := e.clone()
	newExt.options.decorationTags = append([]string{}, tags...)
	return newExt
}

// KeepNewlines keeps newline and tab characters of the source markup in
// cell text. Ignored for extractors created with FromReader.
func (e *Extractor) KeepNewlines() *Extractor {
	newExt := e.clone()
	newExt.options.keepNewlines = true
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction)
// ============================================================================

// Tables extracts every table with exactly one tbody, laid out, in document
// order.
//
// Example:
//
//	tables, err := tabgrid.Open("report.html").Tables()
//	for _, t := range tables {
//	    fmt.Println(t.Rows, t.Cols, t.Size())
//	}
func (e *Extractor) Tables() ([]*model.Table, error) {
	if e.err != nil {
		return nil, e.err
	}
	if err := e.ensureReader(); err != nil {
		return nil, err
	}
	defer e.Close()

	return e.reader.Tables(e.tableExtractor())
}

// Document returns the extracted tables together with the document's head
// metadata.
//
// Example:
//
//	doc, err := tabgrid.Open("report.html").Document()
//	fmt.Println(doc.Metadata.Title, doc.TableCount())
func (e *Extractor) Document() (*model.Document, error) {
	if e.err != nil {
		return nil, e.err
	}
	if err := e.ensureReader(); err != nil {
		return nil, err
	}
	defer e.Close()

	return e.reader.Document(e.tableExtractor())
}

func (e *Extractor) tableExtractor() *tables.Extractor {
	return tables.NewExtractor(e.options.device, e.options.layout, e.options.log)
}
