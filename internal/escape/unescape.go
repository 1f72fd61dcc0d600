// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles the escape sequences permitted in JSON strings.
package escape

// Chars lists the characters that may follow a backslash in a string, in the
// order they are reported to the user.
const Chars = `"\nrt`

var unescape = [...]byte{
	'"':  '"',
	'\\': '\\',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Unescape returns the byte denoted by the escape sequence "\c", and reports
// whether c is a valid escape. Unicode escapes (\u) are not supported.
func Unescape(c byte) (byte, bool) {
	if int(c) < len(unescape) {
		if d := unescape[c]; d != 0 {
			return d, true
		}
	}
	return 0, false
}
