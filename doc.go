// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jvalue implements a recursive-descent parser that converts JSON
// text into a tree of values.
//
// # Parsing
//
// Call Parse (or ParseBytes) with the complete input text. Parse returns the
// root of the value tree, or an error of concrete type *jvalue.ParseError:
//
//	v, err := jvalue.Parse(input)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// The first malformed construct stops the parse. A ParseError reports the
// kind of failure and the 1-based line and column where it occurred:
//
//	var perr *jvalue.ParseError
//	if errors.As(err, &perr) && perr.Kind == jvalue.UnexpectedCharacter {
//	   log.Printf("At %v: found %q", perr.Location, perr.Found)
//	}
//
// # Values
//
// A Value is one of these concrete types:
//
//	JSON type  | Type   | Representation
//	---------- | ------ | -----------------------------------------------
//	string     | String | Text, borrowed from the input or owned
//	number     | Number | float64, for integers and decimals alike
//	boolean    | Bool   | bool
//	object     | Object | []Member, keys unique, last duplicate wins
//	array      | Array  | []Value, in source order
//	null       | Null   | struct{}
//
// Strings that contain no escape sequences are not copied: their Text views
// the input directly. Values parsed by ParseBytes therefore alias the input
// slice, which the caller must retain and not modify while the values are in
// use. Strings with escapes are decoded into separately-allocated buffers.
//
// # Grammar
//
// The grammar is a subset of JSON: numbers have no exponents, and strings
// support only the escapes \" \\ \n \r \t. By default a single trailing comma
// is permitted before the closing brace or bracket of an object or array, and
// input following the top-level value is not examined. Use Options to select
// a stricter grammar, or to permit comments:
//
//	opts := &jvalue.Options{StrictCommas: true, RequireEOF: true}
//	v, err := opts.Parse(input)
//
// To parse several values from one input, use a Decoder.
package jvalue
