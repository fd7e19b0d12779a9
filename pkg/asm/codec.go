package asm

import (
	"encoding/binary"
)

// BytesToWords interprets input as a sequence of little-endian 16-bit
// words. A trailing odd byte, if any, is discarded.
func BytesToWords(input []byte) []Word {
	n := len(input) / 2
	words := make([]Word, n)
	for i := 0; i < n; i++ {
		words[i] = binary.LittleEndian.Uint16(input[2*i : 2*i+2])
	}
	return words
}

// WordsToBytes emits each word as two little-endian bytes.
func WordsToBytes(words []Word) []byte {
	out := make([]byte, 2*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint16(out[2*i:2*i+2], w)
	}
	return out
}
