package table

import (
	"fmt"
	"strings"
)

// SetTitle sets a title drawn centred across the whole table above the
// first row. The title becomes part of the grid on the next stroke; after
// that only its text can change and clearing it returns ErrTitleLocked.
func (t *Table) SetTitle(title string, style TitleStyle) error {
	if t.promoted && title == "" {
		t.cfg.logf(LevelWarn, "title cannot be removed once the table has been stroked")
		return ErrTitleLocked
	}
	if style != TitleLine && style != TitleNoLine {
		return fmt.Errorf("%w: title style %d", ErrInvalidSize, int(style))
	}
	t.title = strings.Clone(title)
	t.titleStyle = style
	return nil
}

// Title returns the current title text.
func (t *Table) Title() string { return t.title }

// TitleStyle returns whether a rule is drawn under the title.
func (t *Table) TitleStyle() TitleStyle { return t.titleStyle }

// SetHeaderLine toggles the rule drawn under the first data row.
func (t *Table) SetHeaderLine(on bool) { t.headerLine = on }

// HeaderLine reports whether the header rule is drawn.
func (t *Table) HeaderLine() bool { return t.headerLine }

// SetInterior toggles the vertical separators between columns and the
// horizontal rules between body rows.
func (t *Table) SetInterior(vertical, horizontal bool) {
	t.interiorV, t.interiorH = vertical, horizontal
}

// Interior reports the interior separator flags.
func (t *Table) Interior() (vertical, horizontal bool) {
	return t.interiorV, t.interiorH
}

// promoteTitle inserts the pending title as grid row 0, spanning every
// column. It runs at most once per table; later calls refresh the text.
func (t *Table) promoteTitle() {
	if t.title == "" && !t.promoted {
		return
	}
	if t.promoted {
		t.at(0, 0).text = t.title
		return
	}

	n := t.height * t.cols
	t.grid = append(t.grid, make([]cell, t.cols)...)
	copy(t.grid[t.cols:], t.grid[:n])
	for i := t.cols; i < len(t.grid); i++ {
		t.grid[i].parentRow++
	}

	for c := 0; c < t.cols; c++ {
		x := newCell(0, c)
		if c > 0 {
			x.merged = true
			x.parentCol = 0
		}
		t.grid[c] = x
	}
	head := t.at(0, 0)
	head.text = t.title
	head.explicit = true
	head.align = AlignCenter
	head.cspan = t.cols

	t.height++
	t.promoted = true
	t.cfg.logf(LevelDebug, "title promoted into row 0, grid height %d", t.height)
}
