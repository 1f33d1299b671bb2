package table

import (
	"fmt"

	"github.com/dkoosis/unitbl/pkg/xstr"
)

// SetColWidth fixes the width of col in code points; 0 restores auto width.
func (t *Table) SetColWidth(col, width int) error {
	if err := t.checkCol(col, width); err != nil {
		return err
	}
	t.widths[col] = width
	return nil
}

// ColWidth returns the explicit width of col, 0 when it is automatic.
func (t *Table) ColWidth(col int) (int, error) {
	if err := t.checkCol(col, 0); err != nil {
		return 0, err
	}
	return t.widths[col], nil
}

// SetMinColWidth sets the smallest width an automatic column resolves to.
func (t *Table) SetMinColWidth(col, width int) error {
	if err := t.checkCol(col, width); err != nil {
		return err
	}
	t.minWidths[col] = width
	return nil
}

// MinColWidth returns the minimum width of col.
func (t *Table) MinColWidth(col int) (int, error) {
	if err := t.checkCol(col, 0); err != nil {
		return 0, err
	}
	return t.minWidths[col], nil
}

// SetTableColWidth fixes the width of every column.
func (t *Table) SetTableColWidth(width int) error {
	for c := 0; c < t.cols; c++ {
		if err := t.SetColWidth(c, width); err != nil {
			return err
		}
	}
	return nil
}

// SetTableMinColWidth sets the minimum width of every column.
func (t *Table) SetTableMinColWidth(width int) error {
	for c := 0; c < t.cols; c++ {
		if err := t.SetMinColWidth(c, width); err != nil {
			return err
		}
	}
	return nil
}

// ResetColWidths makes every column automatic again. Minimum widths stay.
func (t *Table) ResetColWidths() {
	clear(t.widths)
}

// Widths resolves the column widths for the current content and returns
// a copy. Callbacks are not run; the widths of the last stroke may differ
// when callbacks fill cells.
func (t *Table) Widths() []int {
	t.resolveWidths()
	return append([]int(nil), t.resolved...)
}

func (t *Table) checkCol(col, width int) error {
	if col < 0 || col >= t.cols {
		t.cfg.logf(LevelWarn, "table column specified is out of range [%d]", col)
		return fmt.Errorf("%w: column %d", ErrOutOfRange, col)
	}
	if width < 0 {
		return fmt.Errorf("%w: width %d", ErrInvalidSize, width)
	}
	return nil
}

// resolveWidths computes the width of every automatic column as the widest
// non-merged data cell (text plus padding), raised to the column minimum
// and to at least one code point.
func (t *Table) resolveWidths() {
	for c := 0; c < t.cols; c++ {
		if t.widths[c] > 0 {
			t.resolved[c] = t.widths[c]
			continue
		}
		w := 0
		for g := t.offset(); g < t.height; g++ {
			x := t.at(g, c)
			if x.merged {
				continue
			}
			w = max(w, xstr.Len(x.text)+x.lpad+x.rpad)
		}
		t.resolved[c] = max(w, t.minWidths[c], 1)
	}
}

// totalWidth is the number of code points in every line of the table.
func (t *Table) totalWidth() int {
	n := 1
	for _, w := range t.resolved {
		n += w + 1
	}
	return n
}

// spanWidth is the interior width of a cell starting at col and covering
// span columns, absorbing the separators between them.
func (t *Table) spanWidth(col, span int) int {
	w := span - 1
	for i := col; i < col+span; i++ {
		w += t.resolved[i]
	}
	return w
}
