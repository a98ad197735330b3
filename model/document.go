package model

// Document is the result of extracting tables from one markup document.
type Document struct {
	Metadata Metadata
	Tables   []*Table
}

// Metadata contains document-level information
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords []string
	// Custom holds every <meta> name/content pair found in the head.
	Custom map[string]string
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Metadata: Metadata{
			Custom: make(map[string]string),
		},
		Tables: make([]*Table, 0),
	}
}

// AddTable appends a laid-out table in document order.
func (d *Document) AddTable(t *Table) {
	d.Tables = append(d.Tables, t)
}

// TableCount returns the number of tables
func (d *Document) TableCount() int {
	return len(d.Tables)
}

// GetTable returns a table by position (0-indexed), or nil.
func (d *Document) GetTable(i int) *Table {
	if i < 0 || i >= len(d.Tables) {
		return nil
	}
	return d.Tables[i]
}
