package table

import (
	"errors"

	"github.com/dkoosis/unitbl/pkg/xstr"
)

var (
	// ErrOutOfRange reports a row or column outside the table.
	ErrOutOfRange = errors.New("table cell out of range")
	// ErrMerged reports an attempt to address a cell merged into a span.
	ErrMerged = errors.New("cell is merged into a column span")
	// ErrSpan reports a column span that does not fit the table.
	ErrSpan = errors.New("column span exceeds table width")
	// ErrInvalidSize reports a non-positive dimension or a negative size.
	ErrInvalidSize = errors.New("invalid table size")
	// ErrDataSize reports initial data whose length does not match the grid.
	ErrDataSize = errors.New("data does not match table dimensions")
	// ErrTitleLocked reports an attempt to remove a title that has already
	// been promoted into the grid.
	ErrTitleLocked = errors.New("title already promoted into the table")
	// ErrBufferFull reports a render that did not fit its output limit.
	ErrBufferFull = xstr.ErrBufferFull
)
