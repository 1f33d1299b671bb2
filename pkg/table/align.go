package table

import (
	"fmt"
	"strings"
)

// Align is the horizontal placement of text within a cell.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

func (a Align) String() string {
	switch a {
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	}
	return "left"
}

// ParseAlign accepts left, right or center (also "centre").
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "center", "centre":
		return AlignCenter, nil
	}
	return AlignLeft, fmt.Errorf("unknown alignment %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Align) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Align) UnmarshalText(text []byte) error {
	v, err := ParseAlign(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// SetAlign sets the alignment of one cell.
func (t *Table) SetAlign(row, col int, a Align) error {
	c, err := t.lookup(row, col)
	if err != nil {
		return err
	}
	c.align = a
	return nil
}

// Align returns the alignment of one cell.
func (t *Table) Align(row, col int) (Align, error) {
	c, err := t.lookup(row, col)
	if err != nil {
		return AlignLeft, err
	}
	return c.align, nil
}

// SetRowAlign sets the alignment of every cell in row.
func (t *Table) SetRowAlign(row int, a Align) error {
	for c := 0; c < t.cols; c++ {
		if err := t.SetAlign(row, c, a); err != nil {
			return err
		}
	}
	return nil
}

// SetColAlign sets the alignment of every cell in col.
func (t *Table) SetColAlign(col int, a Align) error {
	for r := 0; r < t.rows; r++ {
		if err := t.SetAlign(r, col, a); err != nil {
			return err
		}
	}
	return nil
}

// SetTableAlign sets the alignment of every data cell.
func (t *Table) SetTableAlign(a Align) error {
	for r := 0; r < t.rows; r++ {
		if err := t.SetRowAlign(r, a); err != nil {
			return err
		}
	}
	return nil
}
