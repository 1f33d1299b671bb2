package table

import (
	"strings"

	"github.com/dkoosis/unitbl/pkg/style"
	"github.com/dkoosis/unitbl/pkg/xstr"
)

// writeRow draws the content line of grid row g.
func (t *Table) writeRow(sb *strings.Builder, d *style.Descriptor, g int) {
	for c := 0; c < t.cols; {
		x := t.at(g, c)
		if c == 0 {
			sb.WriteString(d.BorderVertical)
		} else {
			sb.WriteString(d.MiddleVertical)
		}
		w := t.spanWidth(c, x.cspan)
		sb.WriteString(align(t.fit(x, w), w, x.align))
		c += x.cspan
	}
	sb.WriteString(d.BorderVertical)
	sb.WriteByte('\n')
}

// fit clips the padded text of x to at most w code points following the
// configured padding policy.
func (t *Table) fit(x *cell, w int) string {
	lpad, rpad := xstr.Spaces(x.lpad), xstr.Spaces(x.rpad)
	if t.cfg.Policy == CutPadding {
		return xstr.Truncate(lpad+x.text+rpad, w)
	}
	s := xstr.Truncate(lpad+x.text, max(w-x.rpad, 0))
	return xstr.Truncate(s+rpad, w)
}

// align places s, already no wider than w, in a field of w code points.
// Centring puts w/2 - n/2 spaces in front and the remainder behind.
func align(s string, w int, a Align) string {
	n := xstr.Len(s)
	if n >= w {
		return s
	}
	switch a {
	case AlignRight:
		return xstr.Spaces(w-n) + s
	case AlignCenter:
		lead := w/2 - n/2
		return xstr.Spaces(lead) + s + xstr.Spaces(w-n-lead)
	}
	return s + xstr.Spaces(w-n)
}
