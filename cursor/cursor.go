// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor navigates the tree of values produced by the jvalue parser.
package cursor

import (
	"fmt"
	"slices"

	"github.com/creachadair/jvalue"
)

// Path follows path from v as Cursor.Down does, and returns the value reached
// if it has type T.
func Path[T jvalue.Value](v jvalue.Value, path ...any) (T, error) {
	var zero T
	c := New(v).Down(path...)
	if c.err != nil {
		return zero, c.err
	}
	if t, ok := c.Value().(T); ok {
		return t, nil
	}
	return zero, fmt.Errorf("value is %v, not %T", kindOf(c.Value()), zero)
}

// A Cursor walks from an origin value down into nested objects and arrays,
// and remembers the values it passed through so that it can climb back.
type Cursor struct {
	trail []jvalue.Value // trail[0] is the origin
	err   error
}

// New constructs a Cursor positioned at origin.
func New(origin jvalue.Value) *Cursor { return &Cursor{trail: []jvalue.Value{origin}} }

// Origin returns the value c was constructed with.
func (c *Cursor) Origin() jvalue.Value { return c.trail[0] }

// AtOrigin reports whether c is positioned at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.trail) == 1 }

// Value returns the value at the current position of c.
func (c *Cursor) Value() jvalue.Value { return c.trail[len(c.trail)-1] }

// Path returns the values from the origin to the current position, inclusive.
func (c *Cursor) Path() []jvalue.Value { return slices.Clone(c.trail) }

// Err reports the error from the most recent call to Down, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves c to the parent of its current position, unless c is at its
// origin. It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.trail); n > 1 {
		c.trail = c.trail[:n-1]
	}
	return c
}

// Reset returns c to its origin and clears its error.
func (c *Cursor) Reset() { c.trail = c.trail[:1]; c.err = nil }

// Down follows path from the current value. Each element selects a child of
// the value reached so far:
//
//   - string: the value of the object member with that key
//   - int: the array element at that offset; negative offsets count back
//     from the end, so -1 is the last element
//   - func(jvalue.Value) (jvalue.Value, error): whatever the function returns
//
// Down stops at the first element it cannot follow, leaving c at the last
// value reached, and records the reason for Err. It returns c to permit
// chaining.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	for i, elt := range path {
		next, err := step(c.Value(), elt)
		if err != nil {
			c.err = fmt.Errorf("path element %d: %w", i, err)
			break
		}
		c.trail = append(c.trail, next)
	}
	return c
}

func step(v jvalue.Value, elt any) (jvalue.Value, error) {
	switch t := elt.(type) {
	case string:
		obj, ok := v.(jvalue.Object)
		if !ok {
			return nil, fmt.Errorf("key %q applied to %v", t, kindOf(v))
		}
		if m, ok := obj.Find(t); ok {
			return m, nil
		}
		return nil, fmt.Errorf("key %q not found", t)

	case int:
		arr, ok := v.(jvalue.Array)
		if !ok {
			return nil, fmt.Errorf("index %d applied to %v", t, kindOf(v))
		}
		i := t
		if i < 0 {
			i += len(arr)
		}
		if i < 0 || i >= len(arr) {
			return nil, fmt.Errorf("index %d out of range for %d elements", t, len(arr))
		}
		return arr[i], nil

	case func(jvalue.Value) (jvalue.Value, error):
		return t(v)

	default:
		return nil, fmt.Errorf("invalid path element %T", elt)
	}
}

func kindOf(v jvalue.Value) jvalue.Kind {
	if v == nil {
		return jvalue.KindInvalid
	}
	return v.Kind()
}
