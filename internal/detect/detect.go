// Package detect sniffs stdin to determine the input format.
package detect

import (
	"bytes"
	"encoding/csv"

	"gopkg.in/yaml.v3"
)

// Format represents a recognized input format.
type Format int

const (
	Unknown  Format = iota
	Document        // YAML or JSON mapping with a table document key
	CSV             // comma-separated records
)

func (f Format) String() string {
	switch f {
	case Document:
		return "document"
	case CSV:
		return "csv"
	}
	return "unknown"
}

// Sniff examines input to determine its format. A YAML or JSON mapping
// holding any table document key is a Document, even when its rows are
// missing or malformed, so the document parser can report why. Anything
// else that parses as CSV is CSV.
func Sniff(data []byte) Format {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return Unknown
	}
	if isDocument(data) {
		return Document
	}
	if isCSV(data) {
		return CSV
	}
	return Unknown
}

// documentKeys are the top-level keys of a table document.
var documentKeys = []string{
	"title", "title_line", "style", "header_line", "interior",
	"padding", "columns", "rows", "spans", "cells",
}

func isDocument(data []byte) bool {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return false
	}
	for _, k := range documentKeys {
		if _, ok := doc[k]; ok {
			return true
		}
	}
	return false
}

func isCSV(data []byte) bool {
	// only the first record matters; later ones may be cut off by the peek
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	r := csv.NewReader(bytes.NewReader(line))
	r.FieldsPerRecord = -1
	rec, err := r.Read()
	return err == nil && len(rec) > 0
}
