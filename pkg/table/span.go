package table

import "fmt"

// SetColSpan makes the cell at (row, col) span the next span columns of
// its row. The span-1 cells after it become merged and follow it.
//
// Calling SetColSpan on a merged cell detaches it from its old owner, whose
// span is shortened to end just before col, and its followers past the
// new span are released. Spans that previously started
// inside the new range are dissolved. A span of 1 turns a span owner back
// into an ordinary cell.
func (t *Table) SetColSpan(row, col, span int) error {
	c, err := t.lookup(row, col)
	if err != nil {
		return err
	}
	if span < 1 || col+span > t.cols {
		t.cfg.logf(LevelWarn, "column span %d at [%d, %d] exceeds table width %d", span, row, col, t.cols)
		return fmt.Errorf("%w: span %d at [%d, %d] in %d columns", ErrSpan, span, row, col, t.cols)
	}

	g := row + t.offset()
	if c.merged {
		owner := t.at(g, c.parentCol)
		oldEnd := c.parentCol + owner.cspan
		owner.cspan = col - c.parentCol
		t.release(g, col+span, oldEnd)
	} else {
		t.release(g, col+1, col+c.cspan)
	}

	end := col + span
	for i := col + 1; i < end; i++ {
		x := t.at(g, i)
		if !x.merged && x.cspan > 1 {
			t.release(g, i+1, i+x.cspan)
		}
		x.merged = true
		x.cspan = 1
		x.parentRow, x.parentCol = g, col
	}

	c.merged = false
	c.cspan = span
	c.parentRow, c.parentCol = g, col
	return nil
}

// ColSpan returns the number of columns the cell at (row, col) spans.
// Merged cells report 1.
func (t *Table) ColSpan(row, col int) (int, error) {
	c, err := t.lookup(row, col)
	if err != nil {
		return 0, err
	}
	return c.cspan, nil
}

// IsMerged reports whether the cell at (row, col) is covered by another
// cell's span.
func (t *Table) IsMerged(row, col int) (bool, error) {
	c, err := t.lookup(row, col)
	if err != nil {
		return false, err
	}
	return c.merged, nil
}

// release turns the cells of grid row g in columns [from, to) back into
// independent cells. Their text is kept.
func (t *Table) release(g, from, to int) {
	for i := from; i < to && i < t.cols; i++ {
		x := t.at(g, i)
		x.merged = false
		x.cspan = 1
		x.parentRow, x.parentCol = g, i
	}
}
