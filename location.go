package jvalue

import (
	"fmt"

	"go4.org/mem"
)

// A LineCol describes the line number and column of a location in source
// text. Both are 1-based; the column counts Unicode characters, not bytes.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // character offset of column in line, 1-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// lineColAt computes the location of the given byte offset in input.
// An offset at or past the end of input refers to the position just after
// the last character.
func lineColAt(input mem.RO, offset int) LineCol {
	lc := LineCol{Line: 1, Column: 1}
	offset = min(offset, input.Len())
	for i := 0; i < offset; i++ {
		switch b := input.At(i); {
		case b == '\n':
			lc.Line++
			lc.Column = 1
		case b&0xc0 != 0x80: // not a UTF-8 continuation byte
			lc.Column++
		}
	}
	return lc
}
