// Package tabledoc reads declarative table documents and builds tables
// from them.
//
// A document is YAML (and therefore also JSON):
//
//	title: Lakes
//	style: double-v2
//	interior: {vertical: true, horizontal: false}
//	padding: {left: 1, right: 1}
//	columns:
//	  - {align: left}
//	  - {align: right, min_width: 6}
//	rows:
//	  - [Name, Area]
//	  - [Vänern, "5650"]
//	  - [Vättern and Mälaren]
//	spans:
//	  - {row: 2, col: 0, span: 2}
//
// CSV input is accepted as a document holding only rows.
package tabledoc

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/unitbl/pkg/table"
)

// ErrNoRows is returned for a document without any row.
var ErrNoRows = errors.New("table document has no rows")

// Document is the decoded form of a table document.
type Document struct {
	Title      string     `yaml:"title,omitempty"`
	TitleLine  *bool      `yaml:"title_line,omitempty"`
	Style      string     `yaml:"style,omitempty"`
	HeaderLine *bool      `yaml:"header_line,omitempty"`
	Interior   *Interior  `yaml:"interior,omitempty"`
	Padding    *Padding   `yaml:"padding,omitempty"`
	Columns    []Column   `yaml:"columns,omitempty"`
	Rows       [][]string `yaml:"rows"`
	Spans      []Span     `yaml:"spans,omitempty"`
	Cells      []Cell     `yaml:"cells,omitempty"`
}

// Interior toggles the separators inside the table.
type Interior struct {
	Vertical   bool `yaml:"vertical"`
	Horizontal bool `yaml:"horizontal"`
}

// Padding is a left/right cell padding in spaces.
type Padding struct {
	Left  int `yaml:"left"`
	Right int `yaml:"right"`
}

// Column holds per-column settings, applied in column order.
type Column struct {
	Align    string   `yaml:"align,omitempty"`
	Width    int      `yaml:"width,omitempty"`
	MinWidth int      `yaml:"min_width,omitempty"`
	Padding  *Padding `yaml:"padding,omitempty"`
}

// Span merges Span columns starting at (Row, Col).
type Span struct {
	Row  int `yaml:"row"`
	Col  int `yaml:"col"`
	Span int `yaml:"span"`
}

// Cell overrides the settings of a single cell.
type Cell struct {
	Row     int      `yaml:"row"`
	Col     int      `yaml:"col"`
	Align   string   `yaml:"align,omitempty"`
	Padding *Padding `yaml:"padding,omitempty"`
}

// Defaults are the table settings used where a document is silent.
type Defaults struct {
	InteriorVertical   bool
	InteriorHorizontal bool
	HeaderLine         bool
}

// Parse decodes a YAML or JSON document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode table document: %w", err)
	}
	if len(doc.Rows) == 0 {
		return nil, ErrNoRows
	}
	return &doc, nil
}

// ReadCSV reads comma-separated records into a document. Records may have
// different lengths; short rows are filled with empty cells.
func ReadCSV(r io.Reader) (*Document, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoRows
	}
	return &Document{Rows: records}, nil
}

// Dimensions returns the row count and the widest row's column count.
func (d *Document) Dimensions() (rows, cols int) {
	for _, r := range d.Rows {
		cols = max(cols, len(r))
	}
	return len(d.Rows), cols
}

// StyleName returns the document's style, or fallback when it names none.
func (d *Document) StyleName(fallback string) string {
	if d.Style == "" {
		return fallback
	}
	return d.Style
}

// Build creates a table holding the document's rows and settings. Settings
// the document leaves out come from def.
func (d *Document) Build(def Defaults, opts ...table.Option) (*table.Table, error) {
	rows, cols := d.Dimensions()
	if rows == 0 || cols == 0 {
		return nil, ErrNoRows
	}
	t, err := table.New(rows, cols, opts...)
	if err != nil {
		return nil, err
	}

	for r, rec := range d.Rows {
		if err := t.SetRow(r, rec...); err != nil {
			return nil, fmt.Errorf("rows[%d]: %w", r, err)
		}
	}

	v, h := def.InteriorVertical, def.InteriorHorizontal
	if d.Interior != nil {
		v, h = d.Interior.Vertical, d.Interior.Horizontal
	}
	t.SetInterior(v, h)

	header := def.HeaderLine
	if d.HeaderLine != nil {
		header = *d.HeaderLine
	}
	t.SetHeaderLine(header)

	// spans first so broadcast padding skips merged cells
	for i, s := range d.Spans {
		if err := t.SetColSpan(s.Row, s.Col, s.Span); err != nil {
			return nil, fmt.Errorf("spans[%d]: %w", i, err)
		}
	}

	if d.Padding != nil {
		if err := t.SetTablePadding(d.Padding.Left, d.Padding.Right); err != nil {
			return nil, fmt.Errorf("padding: %w", err)
		}
	}

	for c, col := range d.Columns {
		if err := applyColumn(t, c, col); err != nil {
			return nil, fmt.Errorf("columns[%d]: %w", c, err)
		}
	}

	for i, cell := range d.Cells {
		if err := applyCell(t, cell); err != nil {
			return nil, fmt.Errorf("cells[%d]: %w", i, err)
		}
	}

	if d.Title != "" {
		ts := table.TitleLine
		if d.TitleLine != nil && !*d.TitleLine {
			ts = table.TitleNoLine
		}
		if err := t.SetTitle(d.Title, ts); err != nil {
			return nil, fmt.Errorf("title: %w", err)
		}
	}
	return t, nil
}

func applyColumn(t *table.Table, c int, col Column) error {
	if col.Align != "" {
		a, err := table.ParseAlign(col.Align)
		if err != nil {
			return err
		}
		if err := t.SetColAlign(c, a); err != nil {
			return err
		}
	}
	if col.Width > 0 {
		if err := t.SetColWidth(c, col.Width); err != nil {
			return err
		}
	}
	if col.MinWidth > 0 {
		if err := t.SetMinColWidth(c, col.MinWidth); err != nil {
			return err
		}
	}
	if col.Padding != nil {
		return t.SetColPadding(c, col.Padding.Left, col.Padding.Right)
	}
	return nil
}

func applyCell(t *table.Table, cell Cell) error {
	if cell.Align != "" {
		a, err := table.ParseAlign(cell.Align)
		if err != nil {
			return err
		}
		if err := t.SetAlign(cell.Row, cell.Col, a); err != nil {
			return err
		}
	}
	if cell.Padding != nil {
		return t.SetPadding(cell.Row, cell.Col, cell.Padding.Left, cell.Padding.Right)
	}
	return nil
}
