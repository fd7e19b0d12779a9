package asm

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the codec's error kinds. Callers should
// use errors.Is against these rather than comparing strings.
var (
	// ErrValueOutOfRange indicates a word exceeds MaxWord (32775)
	// where an operand or register-sloted value is required.
	ErrValueOutOfRange = errors.New("asm: value outside 15-bit range")

	// ErrMalformedToken indicates an assembly token is neither a known
	// mnemonic/register name nor a parseable hexadecimal literal.
	ErrMalformedToken = errors.New("asm: token does not parse as a value")
)

// EncodeError reports a failure while rendering a word sequence as
// assembly text: a value of 32776 or above in an operand position is a
// fatal encoding error. It is tagged with the word offset that
// triggered it.
type EncodeError struct {
	Addr Word
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("asm: word %#04x: %s", e.Addr, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// SyntaxError reports a failure while parsing assembly text back into
// words. It carries the source span of the offending token — the
// line number and the byte offsets of the token within the text that
// follows the line's first colon (the whole line when it has none),
// whitespace included — so a future span-rendering collaborator has
// everything it needs.
type SyntaxError struct {
	Path       string
	Line       int // 1-based
	Start, End int // byte offsets within the text after the first colon
	Token      string
	Err        error
}

func (e *SyntaxError) Error() string {
	where := e.Path
	if where == "" {
		where = "<input>"
	}
	return fmt.Sprintf("%s:%d: %q: %s", where, e.Line, e.Token, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
