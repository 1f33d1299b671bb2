package table

import "fmt"

// SetPadding sets the number of spaces kept left and right of a cell's text.
func (t *Table) SetPadding(row, col, left, right int) error {
	c, err := t.addressable(row, col, "pad")
	if err != nil {
		return err
	}
	if left < 0 || right < 0 {
		return fmt.Errorf("%w: padding %d/%d", ErrInvalidSize, left, right)
	}
	c.lpad, c.rpad = left, right
	return nil
}

// Padding returns the left and right padding of a cell. A merged cell
// reports the padding of its span owner.
func (t *Table) Padding(row, col int) (left, right int, err error) {
	c, err := t.lookup(row, col)
	if err != nil {
		return 0, 0, err
	}
	o := t.owner(c)
	return o.lpad, o.rpad, nil
}

// SetColPadding pads every cell of col that is not merged into a span.
func (t *Table) SetColPadding(col, left, right int) error {
	for r := 0; r < t.rows; r++ {
		merged, err := t.IsMerged(r, col)
		if err != nil {
			return err
		}
		if merged {
			continue
		}
		if err := t.SetPadding(r, col, left, right); err != nil {
			return err
		}
	}
	return nil
}

// SetTablePadding pads every data cell that is not merged into a span.
func (t *Table) SetTablePadding(left, right int) error {
	for c := 0; c < t.cols; c++ {
		if err := t.SetColPadding(c, left, right); err != nil {
			return err
		}
	}
	return nil
}
