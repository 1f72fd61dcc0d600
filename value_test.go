// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jvalue_test

import (
	"testing"

	"github.com/creachadair/jvalue"
	"github.com/google/go-cmp/cmp"
)

func TestString(t *testing.T) {
	tests := []struct {
		input jvalue.Value
		want  string
	}{
		{jvalue.Null{}, "Null"},

		{jvalue.Bool(false), "Boolean(false)"},
		{jvalue.Bool(true), "Boolean(true)"},

		{str(""), `String("")`},
		{str("a \t b"), `String("a \t b")`},
		{str(`say "hi"`), `String("say \"hi\"")`},

		{jvalue.Number(-0.00239), `Number(-0.00239)`},
		{jvalue.Number(0), `Number(0)`},
		{jvalue.Number(17), `Number(17)`},

		{arr(), `Array[]`},
		{arr(jvalue.Bool(true), jvalue.Number(199)), `Array[Boolean(true), Number(199)]`},

		{obj(), `Object{}`},
		{obj("b", jvalue.Null{}, "a", arr(str("x"))), `Object{"a": Array[String("x")], "b": Null}`},

		{jvalue.MustParse(`{"o":{"p":"v"}}`), `Object{"o": Object{"p": String("v")}}`},
	}
	for _, tc := range tests {
		if got := tc.input.String(); got != tc.want {
			t.Errorf("String: got %#q, want %#q", got, tc.want)
		}
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		input string
		want  jvalue.Kind
		name  string
	}{
		{`"s"`, jvalue.KindString, "string"},
		{`1.5`, jvalue.KindNumber, "number"},
		{`false`, jvalue.KindBool, "boolean"},
		{`{}`, jvalue.KindObject, "object"},
		{`[]`, jvalue.KindArray, "array"},
		{`null`, jvalue.KindNull, "null"},
	}
	for _, tc := range tests {
		v := jvalue.MustParse(tc.input)
		if got := v.Kind(); got != tc.want {
			t.Errorf("Kind %#q: got %v, want %v", tc.input, got, tc.want)
		}
		if got := v.Kind().String(); got != tc.name {
			t.Errorf("Kind %#q: got name %q, want %q", tc.input, got, tc.name)
		}
	}
	if got := jvalue.Kind(99).String(); got != "invalid" {
		t.Errorf("Kind(99): got %q, want invalid", got)
	}
}

func TestEqual(t *testing.T) {
	escaped := jvalue.MustParse(`"a\"b"`).(jvalue.String)
	plain := jvalue.MustParse(`"a"`).(jvalue.String)
	if escaped.Borrowed() || !plain.Borrowed() {
		t.Fatalf("Borrowed: escaped=%v plain=%v", escaped.Borrowed(), plain.Borrowed())
	}

	tests := []struct {
		a, b jvalue.Value
		want bool
	}{
		{jvalue.Null{}, jvalue.Null{}, true},
		{jvalue.Null{}, jvalue.Bool(false), false},
		{jvalue.Number(1), jvalue.Number(1), true},
		{jvalue.Number(1), jvalue.Number(2), false},
		{jvalue.Number(0), jvalue.Bool(false), false},
		{jvalue.Bool(true), jvalue.Bool(true), true},
		{str("a"), plain, true},
		{str(`a"b`), escaped, true},
		{str(`a"b`), plain, false},
		{str("1"), jvalue.Number(1), false},

		{arr(), arr(), true},
		{arr(jvalue.Number(1), jvalue.Number(2)), arr(jvalue.Number(1), jvalue.Number(2)), true},
		{arr(jvalue.Number(1), jvalue.Number(2)), arr(jvalue.Number(2), jvalue.Number(1)), false},
		{arr(jvalue.Number(1)), arr(jvalue.Number(1), jvalue.Number(1)), false},
		{arr(), obj(), false},

		{obj(), obj(), true},
		{obj("a", jvalue.Number(1), "b", jvalue.Null{}), obj("b", jvalue.Null{}, "a", jvalue.Number(1)), true},
		{obj("a", jvalue.Number(1)), obj("a", jvalue.Number(2)), false},
		{obj("a", jvalue.Number(1)), obj("b", jvalue.Number(1)), false},
		{obj("a", jvalue.Number(1)), obj("a", jvalue.Number(1), "b", jvalue.Number(1)), false},

		{jvalue.MustParse(`{"x": [1, {"y": "z"}]}`), jvalue.MustParse(`{ "x" : [ 1 , { "y" : "z" } ] }`), true},
		{nil, nil, true},
		{nil, jvalue.Null{}, false},
	}
	for _, tc := range tests {
		if got := jvalue.Equal(tc.a, tc.b); got != tc.want {
			t.Errorf("Equal(%v, %v): got %v, want %v", tc.a, tc.b, got, tc.want)
		}
		if got := jvalue.Equal(tc.b, tc.a); got != tc.want {
			t.Errorf("Equal(%v, %v): got %v, want %v", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestInterface(t *testing.T) {
	v := jvalue.MustParse(`{
  "s": "text\n",
  "n": -2.5,
  "b": true,
  "z": null,
  "a": [1, "two", [], {}],
  "o": {"k": false}
}`)
	want := map[string]any{
		"s": "text\n",
		"n": -2.5,
		"b": true,
		"z": nil,
		"a": []any{1.0, "two", []any{}, map[string]any{}},
		"o": map[string]any{"k": false},
	}
	if diff := cmp.Diff(any(want), jvalue.Interface(v)); diff != "" {
		t.Errorf("Interface (-want, +got):\n%s", diff)
	}
}

func TestObjectFind(t *testing.T) {
	o := jvalue.MustParse(`{"a": 1, "b": {"c": "d"}, "a": 3}`).(jvalue.Object)
	if o.Len() != 2 {
		t.Errorf("Len: got %d, want 2", o.Len())
	}
	if v, ok := o.Find("a"); !ok || v != jvalue.Number(3) {
		t.Errorf(`Find("a"): got %v, %v; want 3, true`, v, ok)
	}
	if v, ok := o.Find("b"); !ok || !jvalue.Equal(v, obj("c", str("d"))) {
		t.Errorf(`Find("b"): got %v, %v`, v, ok)
	}
	if v, ok := o.Find("c"); ok {
		t.Errorf(`Find("c"): got %v, want not found`, v)
	}
}

func TestText(t *testing.T) {
	txt := jvalue.TextOf("hello")
	if !txt.Borrowed() {
		t.Error("TextOf is not borrowed")
	}
	if txt.Len() != 5 || txt.At(1) != 'e' {
		t.Errorf("Len/At: got %d, %q", txt.Len(), txt.At(1))
	}
	if got := string(txt.AppendTo([]byte("say "))); got != "say hello" {
		t.Errorf("AppendTo: got %q", got)
	}
	if !txt.EqualString("hello") || txt.EqualString("hello!") {
		t.Error("EqualString gave the wrong answer")
	}
	if !txt.Mem().EqualString("hello") {
		t.Error("Mem does not view the text")
	}
}
