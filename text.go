// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import "go4.org/mem"

// Text is the contents of a JSON string. A Text either views a range of the
// input it was parsed from (borrowed), or owns a separately-allocated buffer
// holding the decoded contents of a string that contained escapes.
//
// The two forms behave identically to callers that only read the contents.
// Borrowed text from [ParseBytes] aliases the caller's input slice, and is only
// valid as long as that slice is retained and not modified.
type Text struct {
	ro    mem.RO
	owned bool
}

// TextOf returns a Text that views the contents of s.
func TextOf(s string) Text { return borrowText(mem.S(s)) }

func borrowText(ro mem.RO) Text { return Text{ro: ro} }

func ownText(buf []byte) Text { return Text{ro: mem.B(buf), owned: true} }

// Borrowed reports whether t is a view of the original input.
func (t Text) Borrowed() bool { return !t.owned }

// Len reports the length of t in bytes.
func (t Text) Len() int { return t.ro.Len() }

// At returns the byte at offset i of t.
func (t Text) At(i int) byte { return t.ro.At(i) }

// Mem returns a read-only view of the contents of t.
func (t Text) Mem() mem.RO { return t.ro }

// String returns a copy of the contents of t.
func (t Text) String() string { return t.ro.StringCopy() }

// AppendTo appends the contents of t to dst and returns the updated slice.
func (t Text) AppendTo(dst []byte) []byte { return mem.Append(dst, t.ro) }

// Equal reports whether t and u have the same contents, regardless of whether
// either is borrowed.
func (t Text) Equal(u Text) bool { return t.ro.Equal(u.ro) }

// EqualString reports whether the contents of t equal s.
func (t Text) EqualString(s string) bool { return t.ro.EqualString(s) }
