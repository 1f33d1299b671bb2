package table

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dkoosis/unitbl/pkg/style"
	"github.com/dkoosis/unitbl/pkg/xstr"
)

// Render strokes the table in style s and returns the text. The output is
// bounded by Config.MaxOutput when that is set.
func (t *Table) Render(s style.Style) (string, error) {
	return t.RenderLimit(s, t.cfg.MaxOutput)
}

// RenderLimit strokes the table into at most limit bytes (limit <= 0 means
// unbounded). If the table does not fit, it returns ErrBufferFull and no text.
func (t *Table) RenderLimit(s style.Style, limit int) (string, error) {
	buf := xstr.NewBuffer(limit)
	if err := t.stroke(buf, s); err != nil {
		if errors.Is(err, xstr.ErrBufferFull) {
			t.cfg.logf(LevelError, "table needs more than %d bytes of output", limit)
		}
		return "", err
	}
	return buf.String(), nil
}

// RenderInto strokes the table into dst, using its length as the capacity.
// It returns the number of bytes written; on ErrBufferFull dst is untouched.
func (t *Table) RenderInto(dst []byte, s style.Style) (int, error) {
	if len(dst) == 0 {
		return 0, fmt.Errorf("%w: empty destination", ErrBufferFull)
	}
	out, err := t.RenderLimit(s, len(dst))
	if err != nil {
		return 0, err
	}
	return copy(dst, out), nil
}

// Stroke renders the table in style s and writes it to w.
func (t *Table) Stroke(w io.Writer, s style.Style) (int, error) {
	out, err := t.Render(s)
	if err != nil {
		return 0, err
	}
	return io.WriteString(w, out)
}

// StrokeStdout renders the table in style s to standard output.
func (t *Table) StrokeStdout(s style.Style) (int, error) {
	return t.Stroke(os.Stdout, s)
}

// stroke runs a full render pass into buf: title promotion, callbacks,
// width resolution, then the lines top to bottom.
func (t *Table) stroke(buf *xstr.Buffer, s style.Style) error {
	t.promoteTitle()
	t.runCallbacks()
	t.resolveWidths()

	d := style.Resolve(s, t.interiorV)
	var sb strings.Builder
	sb.Grow(t.totalWidth() * 4)
	flush := func() error {
		err := buf.WriteString(sb.String())
		sb.Reset()
		return err
	}

	// a promoted title spans every column, so it marks no inner junctions
	rule(&sb, d.Line(style.LineTop), t.junctions(-1, 0))
	if err := flush(); err != nil {
		return err
	}

	last := t.height - 1
	for g := 0; g <= last; g++ {
		t.writeRow(&sb, &d, g)

		next := g + 1
		if next > last {
			next = -1
		}
		switch {
		case t.headerLine && g == t.offset():
			rule(&sb, d.Line(style.LineHeader), t.junctions(g, next))
		case t.promoted && g == 0:
			if t.titleStyle == TitleLine {
				rule(&sb, d.Line(style.LineMiddle), t.junctions(g, next))
			}
		case t.interiorH && g < last:
			rule(&sb, d.Line(style.LineMiddle), t.junctions(g, next))
		}
		if err := flush(); err != nil {
			return err
		}
	}

	if d.HasBottomBorder {
		rule(&sb, d.Line(style.LineBottom), t.junctions(last, -1))
		if err := flush(); err != nil {
			return err
		}
	}
	return buf.Err()
}
