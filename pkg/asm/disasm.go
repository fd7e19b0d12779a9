package asm

import (
	"fmt"
	"strings"
)

// WordsToText renders a word sequence as line-oriented assembly text.
// At each position, if the word
// names a known opcode, it emits one line of the form
// "<addr>:<mnemonic> <operand>..." and advances past that opcode's
// operand words; a word that is not a valid opcode, or that appears
// where an opcode's operands are still pending, is emitted as
// "<addr>:data <value>". Operand values in [RegisterBase, MaxWord] are
// printed as $0..$7; values in [0, RegisterBase) are printed as
// 0x####; a value at or above MaxWord+1 in an operand position is a
// fatal *EncodeError.
func WordsToText(words []Word) (string, error) {
	var lines []string
	for addr := 0; addr < len(words); {
		word := words[addr]

		name, ok := Mnemonic(word)
		width, widthOK := Width(word)
		if !ok || !widthOK || addr+1+width > len(words) {
			lines = append(lines, fmt.Sprintf("%s:data %s", hexAddr(addr), hexWord(word)))
			addr++
			continue
		}

		operands := words[addr+1 : addr+1+width]
		tokens := make([]string, 0, width+1)
		tokens = append(tokens, fmt.Sprintf("%s:%s", hexAddr(addr), name))
		for i, v := range operands {
			tok, err := operandToken(v)
			if err != nil {
				return "", &EncodeError{Addr: Word(addr + 1 + i), Err: err}
			}
			tokens = append(tokens, tok)
		}
		lines = append(lines, strings.Join(tokens, " "))
		addr += 1 + width
	}
	return strings.Join(lines, "\n"), nil
}

func operandToken(v Word) (string, error) {
	switch {
	case v >= RegisterBase && v <= MaxWord:
		return registerTokens[v], nil
	case v < RegisterBase:
		return hexWord(v), nil
	default:
		return "", fmt.Errorf("%w: %d", ErrValueOutOfRange, v)
	}
}

func hexAddr(addr int) string {
	return fmt.Sprintf("0x%04x", addr)
}

func hexWord(v Word) string {
	return fmt.Sprintf("0x%04x", v)
}
