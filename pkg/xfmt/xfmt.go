// Package xfmt is a small chainable byte buffer for building diagnostic
// strings without the allocations fmt.Sprintf brings along. It covers only
// the handful of calls the rest of this module makes: a string append, a
// single-byte append, and a decimal-integer append.
package xfmt

import "strconv"

// Buffer accumulates bytes for later conversion to a string. The zero value
// is ready to use.
type Buffer struct {
	buf []byte
}

// S appends a string.
func (b *Buffer) S(s string) *Buffer {
	b.buf = append(b.buf, s...)
	return b
}

// C appends a single byte-sized rune.
func (b *Buffer) C(c rune) *Buffer {
	b.buf = append(b.buf, byte(c))
	return b
}

// D appends the decimal representation of an int.
func (b *Buffer) D(v int) *Buffer {
	b.buf = strconv.AppendInt(b.buf, int64(v), 10)
	return b
}

// D64 appends the decimal representation of an int64.
func (b *Buffer) D64(v int64) *Buffer {
	b.buf = strconv.AppendInt(b.buf, v, 10)
	return b
}

// Bytes returns the accumulated bytes. The returned slice aliases the
// buffer's internal storage; callers that need to keep writing after
// reading Bytes should copy it first.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// String returns the accumulated bytes converted to a string.
func (b *Buffer) String() string {
	return string(b.buf)
}

// Reset empties the buffer for reuse.
func (b *Buffer) Reset() *Buffer {
	b.buf = b.buf[:0]
	return b
}
