// Package parse implements a small combinator layer for decoding mixed
// ASCII/binary container formats. Parsing progress is carried explicitly as
// an immutable Cursor value; every primitive takes a Cursor and returns a
// Result holding the parsed value and a fresh Cursor positioned after it.
// There is no ambient parse state, so steps compose and test independently,
// and every failure is attributable to an exact byte offset.
package parse

import "fmt"

// Cursor is an immutable view over a byte buffer plus a scanning offset.
// Cursors are never mutated in place; advancing produces a new value, which
// makes holding on to (or discarding) partial progress safe.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor creates a Cursor positioned at the start of buf.
func NewCursor(buf []byte) Cursor {
	return Cursor{buf: buf}
}

// Offset returns the cursor's position within the underlying buffer.
func (c Cursor) Offset() int {
	return c.off
}

// Remaining returns the number of unread bytes.
func (c Cursor) Remaining() int {
	return len(c.buf) - c.off
}

func (c Cursor) advance(n int) Cursor {
	return Cursor{buf: c.buf, off: c.off + n}
}

func (c Cursor) peek() (byte, bool) {
	if c.off >= len(c.buf) {
		return 0, false
	}
	return c.buf[c.off], true
}

// Error describes a parse failure at a specific byte offset.
type Error struct {
	Offset int
	Msg    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Msg)
}

// Result is the outcome of a parsing step: either a value plus the cursor
// positioned after it, or an Error. Combinators never look at Value or Rest
// once Err is non-nil, so a failure short-circuits a whole chain untouched.
type Result[T any] struct {
	Value T
	Rest  Cursor
	Err   *Error
}

// Ok wraps a successfully parsed value and the cursor following it.
func Ok[T any](v T, rest Cursor) Result[T] {
	return Result[T]{Value: v, Rest: rest}
}

// Fail produces a failed Result located at the given cursor's offset.
func Fail[T any](c Cursor, format string, args ...any) Result[T] {
	return Result[T]{Err: &Error{Offset: c.off, Msg: fmt.Sprintf(format, args...)}}
}

// failAs rewraps a failure from one result type into another.
func failAs[A, B any](r Result[A]) Result[B] {
	return Result[B]{Err: r.Err}
}

// Bind chains a parsing step onto a previous result. If r already failed,
// the error propagates unchanged and next is never called. Bind is the
// single mechanism for sequencing: multi-step decoders are built by
// repeated binding.
func Bind[A, B any](r Result[A], next func(A, Cursor) Result[B]) Result[B] {
	if r.Err != nil {
		return failAs[A, B](r)
	}
	return next(r.Value, r.Rest)
}

// Map transforms a result's value without consuming any input.
func Map[A, B any](r Result[A], f func(A) B) Result[B] {
	if r.Err != nil {
		return failAs[A, B](r)
	}
	return Ok(f(r.Value), r.Rest)
}

// Byte consumes a single byte.
func Byte(c Cursor) Result[byte] {
	b, ok := c.peek()
	if !ok {
		return Fail[byte](c, "unexpected end of input")
	}
	return Ok(b, c.advance(1))
}

// FixedBytes consumes exactly n bytes. The returned slice aliases the
// underlying buffer; callers must treat it as read-only.
func FixedBytes(c Cursor, n int) Result[[]byte] {
	if n < 0 {
		return Fail[[]byte](c, "negative byte count %d", n)
	}
	if c.Remaining() < n {
		return Fail[[]byte](c, "need %d bytes, have %d", n, c.Remaining())
	}
	return Ok(c.buf[c.off:c.off+n], c.advance(n))
}

// Literal consumes the given tag, failing at the cursor's position (not at
// the mismatching byte) so that a bad leading magic reports offset 0.
func Literal(c Cursor, tag string) Result[string] {
	if c.Remaining() < len(tag) {
		return Fail[string](c, "expected %q, got end of input", tag)
	}
	got := c.buf[c.off : c.off+len(tag)]
	if string(got) != tag {
		return Fail[string](c, "expected %q, got %q", tag, got)
	}
	return Ok(tag, c.advance(len(tag)))
}

// Natural consumes a non-empty run of ASCII digits as a base-10 integer.
func Natural(c Cursor) Result[int] {
	n := 0
	i := c.off
	for i < len(c.buf) && isDigit(c.buf[i]) {
		n = n*10 + int(c.buf[i]-'0')
		i++
	}
	if i == c.off {
		b, ok := c.peek()
		if !ok {
			return Fail[int](c, "expected digit, got end of input")
		}
		return Fail[int](c, "expected digit, got %q", b)
	}
	return Ok(n, c.advance(i-c.off))
}

// SkipSpace consumes a possibly empty run of ASCII whitespace. Comments
// introduced by '#' are skipped through the end of their line, matching
// netpbm header conventions.
func SkipSpace(c Cursor) Result[struct{}] {
	i := c.off
	for i < len(c.buf) {
		switch {
		case isSpace(c.buf[i]):
			i++
		case c.buf[i] == '#':
			for i < len(c.buf) && c.buf[i] != '\n' {
				i++
			}
		default:
			return Ok(struct{}{}, c.advance(i-c.off))
		}
	}
	return Ok(struct{}{}, c.advance(i-c.off))
}

// IsSpace reports whether b is ASCII whitespace as understood by SkipSpace.
func IsSpace(b byte) bool {
	return isSpace(b)
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
