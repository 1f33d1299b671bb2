package table

// SetCallback registers cb to produce the text of a cell. It is consulted
// on every stroke as long as the cell holds no text set through SetCell.
// A nil cb removes the callback.
func (t *Table) SetCallback(row, col int, cb Callback) error {
	c, err := t.addressable(row, col, "set callback on")
	if err != nil {
		return err
	}
	c.cb = cb
	return nil
}

// SetTableCallback registers cb on every data cell not merged into a span.
func (t *Table) SetTableCallback(cb Callback) {
	for g := t.offset(); g < t.height; g++ {
		for c := 0; c < t.cols; c++ {
			if x := t.at(g, c); !x.merged {
				x.cb = cb
			}
		}
	}
}

// runCallbacks fills cells that have a callback but no explicit text.
// Callbacks see data-row indexes.
func (t *Table) runCallbacks() {
	off := t.offset()
	for g := off; g < t.height; g++ {
		for c := 0; c < t.cols; c++ {
			x := t.at(g, c)
			if x.merged || x.explicit || x.cb == nil {
				continue
			}
			if text, ok := x.cb(g-off, c, t.tag); ok {
				x.text = text
			}
		}
	}
}
