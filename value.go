// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies which variant of Value a value is.
type Kind byte

// Constants defining the valid Kind values.
const (
	KindInvalid Kind = iota // not a valid value
	KindString              // quoted string
	KindNumber              // number, integer or decimal
	KindBool                // constant: true or false
	KindObject              // object { ... }
	KindArray               // array [ ... ]
	KindNull                // constant: null
)

var kindStr = [...]string{
	KindInvalid: "invalid",
	KindString:  "string",
	KindNumber:  "number",
	KindBool:    "boolean",
	KindObject:  "object",
	KindArray:   "array",
	KindNull:    "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[KindInvalid]
	}
	return kindStr[v]
}

// A Value is a parsed JSON value. The concrete type of a Value is one of
// String, Number, Bool, Object, Array, or Null; no other types implement it.
//
// The String method of a Value returns a debugging representation, not JSON.
type Value interface {
	Kind() Kind
	String() string

	isValue()
}

// A String is a JSON string value.
type String struct{ Text }

// Kind satisfies the Value interface.
func (String) Kind() Kind { return KindString }

// Value returns a copy of the contents of s.
func (s String) Value() string { return s.Text.String() }

// Equal reports whether s and t have the same contents.
func (s String) Equal(t String) bool { return s.Text.Equal(t.Text) }

func (s String) String() string { return fmt.Sprintf("String(%q)", s.Text.String()) }

func (String) isValue() {}

// A Number is a JSON number. Integers and decimals share this representation.
type Number float64

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return KindNumber }

func (n Number) String() string {
	return "Number(" + strconv.FormatFloat(float64(n), 'g', -1, 64) + ")"
}

func (Number) isValue() {}

// A Bool is a Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return KindBool }

func (b Bool) String() string { return "Boolean(" + strconv.FormatBool(bool(b)) + ")" }

func (Bool) isValue() {}

// Null represents the null constant.
type Null struct{}

// Kind satisfies the Value interface.
func (Null) Kind() Kind { return KindNull }

func (Null) String() string { return "Null" }

func (Null) isValue() {}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   Text
	Value Value
}

// An Object is a collection of key-value members with unique keys.  The order
// of members is not significant, and does not participate in equality.
type Object []Member

// Kind satisfies the Value interface.
func (Object) Kind() Kind { return KindObject }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the value of the member of o with the given key, and reports
// whether such a member was found.
func (o Object) Find(key string) (Value, bool) {
	if i := o.index(key); i >= 0 {
		return o[i].Value, true
	}
	return nil, false
}

func (o Object) index(key string) int {
	for i, m := range o {
		if m.Key.EqualString(key) {
			return i
		}
	}
	return -1
}

// Equal reports whether o and p have equal members, without regard to order.
func (o Object) Equal(p Object) bool {
	if len(o) != len(p) {
		return false
	}
nextMember:
	for _, m := range o {
		for _, n := range p {
			if m.Key.Equal(n.Key) {
				if !Equal(m.Value, n.Value) {
					return false
				}
				continue nextMember
			}
		}
		return false
	}
	return true
}

func (o Object) String() string {
	ms := make([]string, len(o))
	for i, m := range o {
		ms[i] = fmt.Sprintf("%q: %v", m.Key.String(), m.Value)
	}
	slices.Sort(ms)
	return "Object{" + strings.Join(ms, ", ") + "}"
}

func (Object) isValue() {}

// An Array is a sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return KindArray }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// Equal reports whether a and b have equal elements in the same order.
func (a Array) Equal(b Array) bool { return slices.EqualFunc(a, b, Equal) }

func (a Array) String() string {
	vs := make([]string, len(a))
	for i, v := range a {
		vs[i] = v.String()
	}
	return "Array[" + strings.Join(vs, ", ") + "]"
}

func (Array) isValue() {}

// Equal reports whether a and b are structurally equal. Strings are compared
// by content, whether or not they are borrowed.
func Equal(a, b Value) bool {
	switch t := a.(type) {
	case String:
		u, ok := b.(String)
		return ok && t.Equal(u)
	case Number:
		u, ok := b.(Number)
		return ok && t == u
	case Bool:
		u, ok := b.(Bool)
		return ok && t == u
	case Null:
		_, ok := b.(Null)
		return ok
	case Object:
		u, ok := b.(Object)
		return ok && t.Equal(u)
	case Array:
		u, ok := b.(Array)
		return ok && t.Equal(u)
	default:
		return a == nil && b == nil
	}
}

// Interface converts v into plain Go values: objects become map[string]any,
// arrays []any, numbers float64, strings string, Booleans bool, and null nil.
// All strings are copied, so the result does not depend on the input buffer.
func Interface(v Value) any {
	switch t := v.(type) {
	case String:
		return t.Value()
	case Number:
		return float64(t)
	case Bool:
		return bool(t)
	case Object:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key.String()] = Interface(e.Value)
		}
		return m
	case Array:
		vs := make([]any, len(t))
		for i, elt := range t {
			vs[i] = Interface(elt)
		}
		return vs
	default:
		return nil
	}
}
