// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"io"

	"go4.org/mem"
)

// A Decoder parses a sequence of JSON values from a single input buffer. The
// values may be separated by whitespace (and comments, if enabled).
type Decoder struct {
	p   parser
	err error
}

// NewDecoder constructs a Decoder that parses values from input using the
// default grammar. Values returned by the decoder may alias input.
func NewDecoder(input []byte) *Decoder { return (*Options)(nil).NewDecoder(input) }

// NewDecoder constructs a Decoder that parses values from input using the
// grammar selected by o. The RequireEOF option has no effect on a Decoder.
func (o *Options) NewDecoder(input []byte) *Decoder {
	return &Decoder{p: o.newParser(mem.B(input))}
}

// Next parses and returns the next value from the input. Next returns io.EOF
// if no further values are available. Once Next has reported an error, every
// subsequent call reports the same error.
func (d *Decoder) Next() (Value, error) {
	if d.err != nil {
		return nil, d.err
	}
	if err := d.p.skipSpace(); err != nil {
		d.err = err
		return nil, err
	} else if d.p.atEOF() {
		d.err = io.EOF
		return nil, io.EOF
	}
	v, err := d.p.parseValue()
	if err != nil {
		d.err = err
		return nil, err
	}
	return v, nil
}

// Offset returns the byte offset of the decoder in its input.
func (d *Decoder) Offset() int { return d.p.pos }

// ParseAll parses and returns all the JSON values in input. In case of error,
// any complete values already parsed are returned along with the error.
func ParseAll(input []byte) ([]Value, error) {
	d := NewDecoder(input)
	var vs []Value
	for {
		v, err := d.Next()
		if err == io.EOF {
			return vs, nil
		} else if err != nil {
			return vs, err
		}
		vs = append(vs, v)
	}
}
