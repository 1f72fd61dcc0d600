// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import "go4.org/mem"

// Unquote decodes a JSON string value. The input must include the enclosing
// double quotation marks, and escapes are decoded as they are by Parse.  The
// result views src unless src contains escapes.
//
// In case of error, the concrete type of the error is [*ParseError].
func Unquote(src string) (Text, error) {
	p := parser{input: mem.S(src)}
	t, err := p.parseString()
	if err != nil {
		return Text{}, err
	} else if !p.atEOF() {
		return Text{}, p.unexpected()
	}
	return t, nil
}
