package table

import (
	"strings"

	"github.com/dkoosis/unitbl/pkg/style"
)

// junctions returns the junction map of the rule between grid rows above
// and below; -1 stands for the outer border on either side. Index i is the
// character column i+1 of the line, so the last entry is always the right
// border and is never drawn from the map.
func (t *Table) junctions(above, below int) []style.Junction {
	m := make([]style.Junction, t.totalWidth()-1)
	if above >= 0 {
		t.markVerticals(m, above, style.JunctionAbove)
	}
	if below >= 0 {
		t.markVerticals(m, below, style.JunctionBelow)
	}
	return m
}

// markVerticals ORs mark into m at the right edge of every cell of grid
// row g, treating a span as one cell.
func (t *Table) markVerticals(m []style.Junction, g int, mark style.Junction) {
	abs := 0
	for c := 0; c < t.cols; {
		span := t.at(g, c).cspan
		abs += t.spanWidth(c, span) + 1
		m[abs-1] |= mark
		c += span
	}
}

// rule draws one horizontal line through the junction map m.
func rule(sb *strings.Builder, g style.LineGlyphs, m []style.Junction) {
	sb.WriteString(g.Left)
	for _, j := range m[:len(m)-1] {
		sb.WriteString(g.Glyph(j))
	}
	sb.WriteString(g.Right)
	sb.WriteByte('\n')
}
