package xstr

import (
	"errors"
	"strings"
)

// ErrBufferFull is returned once a write would take a Buffer past its limit.
var ErrBufferFull = errors.New("output buffer exhausted")

// Buffer accumulates text up to an optional byte limit.
//
// The first write that does not fit fails the buffer: the write is
// dropped, every later write is a no-op, and Err reports ErrBufferFull.
// A limit <= 0 means unbounded.
type Buffer struct {
	sb    strings.Builder
	limit int
	err   error
}

// NewBuffer returns a buffer that holds at most limit bytes.
func NewBuffer(limit int) *Buffer {
	b := &Buffer{limit: limit}
	if limit > 0 {
		b.sb.Grow(min(limit, 64*1024))
	}
	return b
}

// WriteString appends s unless doing so would exceed the limit.
func (b *Buffer) WriteString(s string) error {
	if b.err != nil {
		return b.err
	}
	if b.limit > 0 && b.sb.Len()+len(s) > b.limit {
		b.err = ErrBufferFull
		return b.err
	}
	b.sb.WriteString(s)
	return nil
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return b.sb.Len() }

// Remaining returns how many bytes can still be written, or -1 if unbounded.
func (b *Buffer) Remaining() int {
	if b.limit <= 0 {
		return -1
	}
	return b.limit - b.sb.Len()
}

// Err reports whether the buffer has overflowed.
func (b *Buffer) Err() error { return b.err }

// String returns the accumulated text. It returns "" after an overflow so
// a partial render is never exposed.
func (b *Buffer) String() string {
	if b.err != nil {
		return ""
	}
	return b.sb.String()
}
