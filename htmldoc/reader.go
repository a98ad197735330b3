// Package htmldoc reads HTML documents into a tree ready for table extraction.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/tsawler/tabgrid/dom"
	"github.com/tsawler/tabgrid/model"
	"github.com/tsawler/tabgrid/normalize"
	"github.com/tsawler/tabgrid/tables"
)

// Options controls how a document is read.
type Options struct {
	// KeepNewlines disables removal of newline and tab characters from the
	// source before parsing.
	KeepNewlines bool
	// DecorationTags overrides normalize.DefaultDecorationTags.
	DecorationTags []string
	// Logger receives debug output; nil disables logging.
	Logger *zap.Logger
}

// Reader provides access to the tables of an HTML document.
type Reader struct {
	tree       *dom.Tree
	root       dom.NodeID
	title      string
	metadata   map[string]string
	norm       *normalize.Normalizer
	normalized bool
	log        *zap.Logger
}

var lineBreaks = strings.NewReplacer("\n", "", "\r", "", "\t", "")

// Open opens an HTML file for reading.
func Open(filename string, opts Options) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f, opts)
}

// OpenReader parses HTML from an io.Reader. The character encoding is
// detected from a byte order mark or a meta charset declaration and the
// content is converted to UTF-8.
func OpenReader(r io.Reader, opts Options) (*Reader, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("htmldoc")

	utf8, err := charset.NewReader(r, "")
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}
	raw, err := io.ReadAll(utf8)
	if err != nil {
		return nil, fmt.Errorf("reading HTML: %w", err)
	}
	src := string(raw)
	if !opts.KeepNewlines {
		src = lineBreaks.Replace(src)
	}

	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{
		metadata: make(map[string]string),
		norm:     normalize.New(log, opts.DecorationTags...),
		log:      log,
	}
	reader.extractHead(doc)

	reader.tree, reader.root, err = dom.FromHTML(doc)
	if err != nil {
		return nil, fmt.Errorf("building tree: %w", err)
	}
	log.Debug("Parsed document",
		zap.Int("bytes", len(raw)),
		zap.Int("nodes", reader.tree.Len()),
		zap.String("title", reader.title))
	return reader, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// Title returns the document title from the head, if any.
func (r *Reader) Title() string {
	return r.title
}

// Tree returns the document tree and its root. The tree is normalized in
// place the first time Tables is called.
func (r *Reader) Tree() (*dom.Tree, dom.NodeID) {
	return r.tree, r.root
}

// Metadata returns head information. Well-known meta names populate the
// typed fields; every name/content pair is also kept in Custom.
func (r *Reader) Metadata() model.Metadata {
	md := model.Metadata{
		Title:  r.title,
		Custom: make(map[string]string, len(r.metadata)),
	}
	for k, v := range r.metadata {
		md.Custom[k] = v
		switch strings.ToLower(k) {
		case "author":
			md.Author = v
		case "description", "subject":
			md.Subject = v
		case "keywords":
			for _, kw := range strings.Split(v, ",") {
				if kw = strings.TrimSpace(kw); kw != "" {
					md.Keywords = append(md.Keywords, kw)
				}
			}
		}
	}
	return md
}

// Tables normalizes the document once and extracts its tables with ex.
func (r *Reader) Tables(ex *tables.Extractor) ([]*model.Table, error) {
	if !r.normalized {
		st, err := r.norm.Normalize(r.tree, r.root)
		if err != nil {
			return nil, fmt.Errorf("normalizing: %w", err)
		}
		r.normalized = true
		r.log.Debug("Normalized document",
			zap.Int("unwrapped", st.Unwrapped),
			zap.Int("merged", st.Merged))
	}
	tbls, err := ex.Extract(r.tree, r.root)
	if err != nil {
		return nil, fmt.Errorf("extracting tables: %w", err)
	}
	return tbls, nil
}

// Document extracts the tables with ex and returns them with the document
// metadata.
func (r *Reader) Document(ex *tables.Extractor) (*model.Document, error) {
	tbls, err := r.Tables(ex)
	if err != nil {
		return nil, err
	}
	doc := model.NewDocument()
	doc.Metadata = r.Metadata()
	for _, t := range tbls {
		doc.AddTable(t)
	}
	return doc, nil
}

// extractHead extracts title and meta tags from the head element.
func (r *Reader) extractHead(n *html.Node) {
	if n.Type == html.ElementNode && n.Data == "head" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "title":
				r.title = dom.CollapseBlanks(textContent(c))
			case "meta":
				name, content := "", ""
				for _, attr := range c.Attr {
					switch attr.Key {
					case "name", "property":
						name = attr.Val
					case "content":
						content = attr.Val
					}
				}
				if name != "" && content != "" {
					r.metadata[name] = content
				}
			}
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.extractHead(c)
	}
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
