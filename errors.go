// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"fmt"
	"io"
	"strings"
)

// ErrorKind classifies a ParseError.
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	UnexpectedEndOfInput ErrorKind = iota + 1 // input ended inside a value
	UnexpectedCharacter                       // input does not match the grammar
	NumberOutOfRange                          // number does not fit a float64
	DepthExceeded                             // objects and arrays nested too deeply
)

var errorKindStr = [...]string{
	0:                    "no error",
	UnexpectedEndOfInput: "unexpected end of input",
	UnexpectedCharacter:  "unexpected character",
	NumberOutOfRange:     "number out of range",
	DepthExceeded:        "nesting depth exceeded",
}

func (k ErrorKind) String() string {
	v := int(k)
	if v >= len(errorKindStr) {
		return errorKindStr[0]
	}
	return errorKindStr[v]
}

// ParseError is the concrete type of errors reported by the parser.
type ParseError struct {
	Kind ErrorKind

	// For UnexpectedCharacter, Found is the character at the error location,
	// and Expected lists every character the grammar would have accepted
	// there. An empty Expected means only the end of input was acceptable.
	Found    rune
	Expected []rune

	Offset   int     // byte offset of the error, 0-based
	Location LineCol // line and column of the error, 1-based

	err error
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	var msg string
	switch e.Kind {
	case UnexpectedCharacter:
		msg = fmt.Sprintf("unexpected %q, want %s", e.Found, expectLabel(e.Expected))
	case NumberOutOfRange:
		msg = fmt.Sprintf("%v: %v", e.Kind, e.err)
	default:
		msg = e.Kind.String()
	}
	return fmt.Sprintf("at %s: %s", e.Location, msg)
}

// Unwrap supports error wrapping. An UnexpectedEndOfInput error wraps
// io.ErrUnexpectedEOF.
func (e *ParseError) Unwrap() error {
	if e.Kind == UnexpectedEndOfInput {
		return io.ErrUnexpectedEOF
	}
	return e.err
}

// expectLabel makes a human-readable summary of the expected characters.
func expectLabel(want []rune) string {
	switch len(want) {
	case 0:
		return "end of input"
	case 1:
		return fmt.Sprintf("%q", want[0])
	}
	last := len(want) - 1
	ss := make([]string, last)
	for i, r := range want[:last] {
		ss[i] = fmt.Sprintf("%q", r)
	}
	return strings.Join(ss, ", ") + " or " + fmt.Sprintf("%q", want[last])
}
