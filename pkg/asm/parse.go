package asm

import (
	"strconv"
	"strings"
)

// TextToWords tokenizes assembly text and resolves each token to a
// Word. path is used only to tag errors and may be empty for
// in-memory text.
//
// Per line: an optional leading "<label>:" prefix (any text before the
// first colon) is stripped — the label is purely advisory, and a
// colon appearing anywhere else on the line would be stripped the
// same way; no mnemonic or operand token ever contains one, so this
// stays unambiguous in practice. Tokens equal to "data" are discarded
// so that a raw word may follow. Remaining tokens are looked up in the
// mnemonic/register table first, then parsed as hexadecimal (with or
// without a "0x" prefix). Any token whose value is >= 32776, or that
// parses as neither, produces a *SyntaxError tagged with the line and
// the token's byte span; the first error encountered, in line order,
// is the one returned.
func TextToWords(path string, text string) ([]Word, error) {
	var words []Word
	for i, line := range strings.Split(text, "\n") {
		lineWords, err := parseLine(path, i+1, line)
		if err != nil {
			return nil, err
		}
		words = append(words, lineWords...)
	}
	return words, nil
}

func parseLine(path string, lineno int, line string) ([]Word, error) {
	tail := line
	if idx := strings.IndexByte(line, ':'); idx >= 0 {
		tail = line[idx+1:]
	}

	var out []Word
	for _, tok := range tokenize(tail) {
		if tok.text == "data" {
			continue
		}
		value, err := resolveToken(tok.text)
		if err != nil {
			return nil, &SyntaxError{
				Path: path, Line: lineno,
				Start: tok.start, End: tok.end,
				Token: tok.text, Err: err,
			}
		}
		out = append(out, value)
	}
	return out, nil
}

type token struct {
	text       string
	start, end int // byte offsets within the line's tail
}

// tokenize splits s on whitespace, recording each token's byte span
// within s.
func tokenize(s string) []token {
	var toks []token
	i := 0
	for i < len(s) {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		start := i
		for i < len(s) && !isSpace(s[i]) {
			i++
		}
		if i > start {
			toks = append(toks, token{text: s[start:i], start: start, end: i})
		}
	}
	return toks
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func resolveToken(tok string) (Word, error) {
	if op, ok := mnemonicToOpcode[tok]; ok {
		return op, nil
	}
	if reg, ok := tokenToRegister[tok]; ok {
		return reg, nil
	}
	digits := strings.TrimPrefix(tok, "0x")
	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, ErrMalformedToken
	}
	if value > uint64(MaxWord) {
		return 0, ErrValueOutOfRange
	}
	return Word(value), nil
}
