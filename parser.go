// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"slices"

	"github.com/creachadair/jvalue/internal/escape"
	"go4.org/mem"
)

// DefaultMaxDepth is the nesting limit for objects and arrays used when
// Options.MaxDepth is not positive.
const DefaultMaxDepth = 10000

// Options control the grammar accepted by the parser. A nil *Options is ready
// for use, and accepts the default grammar.
type Options struct {
	// StrictCommas rejects a comma before the closing brace or bracket of an
	// object or array. By default, one such trailing comma is accepted.
	StrictCommas bool

	// RequireEOF rejects input with anything other than whitespace after the
	// top-level value. By default, input after the value is not examined.
	RequireEOF bool

	// AllowComments treats C++ style block comments (/* ... */) and line
	// comments (// ...) as whitespace. Comments are a non-standard extension
	// of JSON.
	AllowComments bool

	// MaxDepth limits the nesting of objects and arrays. If MaxDepth ≤ 0,
	// DefaultMaxDepth is used.
	MaxDepth int
}

// Parse parses a single JSON value from input using the default grammar. In
// case of error, the concrete type of the error is [*ParseError].
//
// Strings without escapes in the result share memory with input.
func Parse(input string) (Value, error) { return (*Options)(nil).Parse(input) }

// ParseBytes parses a single JSON value from input using the default grammar.
// In case of error, the concrete type of the error is [*ParseError].
//
// Strings without escapes in the result alias input: the caller must not
// modify input while the result is in use.
func ParseBytes(input []byte) (Value, error) { return (*Options)(nil).ParseBytes(input) }

// MustParse parses input as by Parse, and panics if parsing fails.
func MustParse(input string) Value {
	v, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse parses a single JSON value from input using the grammar selected by o.
func (o *Options) Parse(input string) (Value, error) { return o.parse(mem.S(input)) }

// ParseBytes parses a single JSON value from input using the grammar selected
// by o. The result may alias input, as described for [ParseBytes].
func (o *Options) ParseBytes(input []byte) (Value, error) { return o.parse(mem.B(input)) }

func (o *Options) parse(input mem.RO) (Value, error) {
	p := o.newParser(input)
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if p.opts.RequireEOF {
		if err := p.skipSpace(); err != nil {
			return nil, err
		} else if !p.atEOF() {
			return nil, p.unexpected()
		}
	}
	return v, nil
}

func (o *Options) newParser(input mem.RO) parser {
	p := parser{input: input}
	if o != nil {
		p.opts = *o
	}
	if p.opts.MaxDepth <= 0 {
		p.opts.MaxDepth = DefaultMaxDepth
	}
	return p
}

// Expected character sets reported in errors.
var (
	valueStart   = []rune(`"{[-0123456789tfn`)
	memberStart  = []rune(`"}`)
	keyStart     = []rune(`"`)
	afterMember  = []rune(`,}`)
	afterElement = []rune(`,]`)
	digitChars   = []rune(`0123456789`)
	escapeChars  = []rune(escape.Chars)
	commentChars = []rune(`/*`)
)

// A parser is a recursive-descent parser for a single input. The cursor pos
// is shared by all the parsing methods, each of which advances it past the
// text it consumes.
type parser struct {
	opts  Options
	input mem.RO
	pos   int // offset of the next unread byte
	depth int // current nesting of objects and arrays
}

func (p *parser) atEOF() bool { return p.pos >= p.input.Len() }

// peek returns the byte at the cursor. Precondition: !p.atEOF().
func (p *parser) peek() byte { return p.input.At(p.pos) }

// parseValue consumes a single value of any type.
func (p *parser) parseValue() (Value, error) {
	if err := p.skipSpace(); err != nil {
		return nil, err
	} else if p.atEOF() {
		return nil, p.unexpected()
	}
	switch c := p.peek(); {
	case c == '"':
		t, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return String{t}, nil
	case c == '{':
		o, err := p.parseObject()
		if err != nil {
			return nil, err
		}
		return o, nil
	case c == '[':
		a, err := p.parseArray()
		if err != nil {
			return nil, err
		}
		return a, nil
	case c == '-' || isDigit(c):
		n, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		return n, nil
	case c == 't' || c == 'f':
		b, err := p.parseBool()
		if err != nil {
			return nil, err
		}
		return b, nil
	case c == 'n':
		if err := p.literal("null"); err != nil {
			return nil, err
		}
		return Null{}, nil
	default:
		return nil, p.unexpected(valueStart...)
	}
}

// parseObject consumes an object and its members.
// Precondition: the cursor is at "{".
func (p *parser) parseObject() (Object, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if err := p.expect('{'); err != nil {
		return nil, err
	} else if err := p.skipSpace(); err != nil {
		return nil, err
	}
	var obj members
	if !p.atEOF() && p.peek() == '}' {
		p.pos++
		return obj.object(), nil
	}
	want := memberStart
	for {
		if p.atEOF() || p.peek() != '"' {
			return nil, p.unexpected(want...)
		}
		key, val, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		obj.set(key, val)

		// Check whether we have more members (",") or are done ("}").
		if p.atEOF() {
			return nil, p.unexpected()
		}
		switch p.peek() {
		case ',':
			p.pos++
			if err := p.skipSpace(); err != nil {
				return nil, err
			}
			if p.opts.StrictCommas {
				want = keyStart
			} else if !p.atEOF() && p.peek() == '}' {
				p.pos++
				return obj.object(), nil // end of object with trailing comma
			}
		case '}':
			p.pos++
			return obj.object(), nil
		default:
			return nil, p.unexpected(afterMember...)
		}
	}
}

// parseMember consumes a single "key": value pair and any whitespace that
// follows it.
func (p *parser) parseMember() (Text, Value, error) {
	key, err := p.parseString()
	if err != nil {
		return Text{}, nil, err
	}
	if err := p.skipSpace(); err != nil {
		return Text{}, nil, err
	} else if err := p.expect(':'); err != nil {
		return Text{}, nil, err
	}
	val, err := p.parseValue()
	if err != nil {
		return Text{}, nil, err
	} else if err := p.skipSpace(); err != nil {
		return Text{}, nil, err
	}
	return key, val, nil
}

// members accumulates the members of an object being parsed. Setting a key
// that is already present replaces its value.
type members struct {
	list  Object
	index map[uint64]int // key hash → offset in list; nil while list is short
}

// indexMin is the number of members at which members begins to index keys.
const indexMin = 16

func (m *members) set(key Text, val Value) {
	if i := m.find(key); i >= 0 {
		m.list[i].Value = val
		return
	}
	m.list = append(m.list, Member{Key: key, Value: val})
	if m.index != nil {
		m.index[key.ro.MapHash()] = len(m.list) - 1
	} else if len(m.list) == indexMin {
		m.index = make(map[uint64]int, 2*indexMin)
		for i, e := range m.list {
			m.index[e.Key.ro.MapHash()] = i
		}
	}
}

func (m *members) find(key Text) int {
	if m.index != nil {
		i, ok := m.index[key.ro.MapHash()]
		if !ok {
			return -1
		} else if m.list[i].Key.Equal(key) {
			return i
		}
		// A hash collision; fall back to searching.
	}
	for i, e := range m.list {
		if e.Key.Equal(key) {
			return i
		}
	}
	return -1
}

// object returns the completed object, which is never nil.
func (m *members) object() Object {
	if m.list == nil {
		return Object{}
	}
	return m.list
}

// parseArray consumes an array and its elements.
// Precondition: the cursor is at "[".
func (p *parser) parseArray() (Array, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if err := p.expect('['); err != nil {
		return nil, err
	} else if err := p.skipSpace(); err != nil {
		return nil, err
	}
	arr := Array{}
	if !p.atEOF() && p.peek() == ']' {
		p.pos++
		return arr, nil
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		if err := p.skipSpace(); err != nil {
			return nil, err
		} else if p.atEOF() {
			return nil, p.unexpected()
		}
		switch p.peek() {
		case ',':
			p.pos++
			if err := p.skipSpace(); err != nil {
				return nil, err
			}
			// With strict commas, a close bracket here fails as a value.
			if !p.opts.StrictCommas && !p.atEOF() && p.peek() == ']' {
				p.pos++
				return arr, nil // end of array with trailing comma
			}
		case ']':
			p.pos++
			return arr, nil
		default:
			return nil, p.unexpected(afterElement...)
		}
	}
}

// parseString consumes a quoted string and returns its decoded contents.  If
// the string contains no escapes, the result is a view of the input;
// otherwise the decoded bytes are copied into a new buffer.
// Precondition: the cursor is at `"`.
func (p *parser) parseString() (Text, error) {
	if err := p.expect('"'); err != nil {
		return Text{}, err
	}
	start := p.pos

	// The decoded contents, allocated at the first escape and seeded with
	// everything scanned before it.
	var buf []byte
	for !p.atEOF() {
		switch c := p.peek(); c {
		case '"':
			end := p.pos
			p.pos++
			if buf == nil {
				return borrowText(p.input.Slice(start, end)), nil
			}
			return ownText(buf), nil

		case '\\':
			if buf == nil {
				buf = make([]byte, 0, 2*(p.pos-start)+16)
				buf = mem.Append(buf, p.input.Slice(start, p.pos))
			}
			p.pos++
			if p.atEOF() {
				return Text{}, p.unexpected()
			}
			d, ok := escape.Unescape(p.peek())
			if !ok {
				return Text{}, p.unexpected(escapeChars...)
			}
			buf = append(buf, d)
			p.pos++

		default:
			if buf != nil {
				buf = append(buf, c)
			}
			p.pos++
		}
	}
	return Text{}, p.unexpected()
}

// parseNumber consumes a number with an optional sign and fraction.
// Precondition: the cursor is at "-" or a digit.
func (p *parser) parseNumber() (Number, error) {
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	if err := p.digits(); err != nil {
		return 0, err
	}
	if !p.atEOF() && p.peek() == '.' {
		p.pos++
		if err := p.digits(); err != nil {
			return 0, err
		}
	}

	// The syntax is already checked, so the only possible error is range.
	f, err := mem.ParseFloat(p.input.Slice(start, p.pos), 64)
	if err != nil {
		return 0, p.failAt(start, NumberOutOfRange, err)
	}
	return Number(f), nil
}

// digits consumes a non-empty run of decimal digits.
func (p *parser) digits() error {
	pos := p.pos
	for !p.atEOF() && isDigit(p.peek()) {
		p.pos++
	}
	if p.pos == pos {
		return p.unexpected(digitChars...)
	}
	return nil
}

// parseBool consumes one of the constants true or false.
// Precondition: the cursor is at "t" or "f".
func (p *parser) parseBool() (Bool, error) {
	if p.peek() == 't' {
		return true, p.literal("true")
	}
	return false, p.literal("false")
}

// literal consumes exactly the bytes of word, one at a time.
func (p *parser) literal(word string) error {
	for i := 0; i < len(word); i++ {
		if err := p.expect(word[i]); err != nil {
			return err
		}
	}
	return nil
}

// expect consumes the byte c from the input, or reports an error.
func (p *parser) expect(c byte) error {
	if p.atEOF() || p.peek() != c {
		return p.unexpected(rune(c))
	}
	p.pos++
	return nil
}

// skipSpace consumes whitespace, and comments if they are enabled.
func (p *parser) skipSpace() error {
	for !p.atEOF() {
		c := p.peek()
		if isSpace(c) {
			p.pos++
		} else if c == '/' && p.opts.AllowComments {
			if err := p.skipComment(); err != nil {
				return err
			}
		} else {
			break
		}
	}
	return nil
}

// skipComment consumes a line or block comment.
// Precondition: the cursor is at "/".
func (p *parser) skipComment() error {
	p.pos++
	if p.atEOF() {
		return p.unexpected()
	}
	switch p.peek() {
	case '/': // line comment to LF
		rest := p.input.SliceFrom(p.pos)
		if i := mem.IndexByte(rest, '\n'); i >= 0 {
			p.pos += i + 1
		} else {
			p.pos = p.input.Len()
		}
		return nil

	case '*': // block comment
		p.pos++
		rest := p.input.SliceFrom(p.pos)
		if i := mem.Index(rest, mem.S("*/")); i >= 0 {
			p.pos += i + 2
			return nil
		}
		p.pos = p.input.Len()
		return p.unexpected()

	default:
		return p.unexpected(commentChars...)
	}
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		return p.failAt(p.pos, DepthExceeded, nil)
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// unexpected reports an error at the cursor. If the input is exhausted, the
// error is UnexpectedEndOfInput; otherwise it is UnexpectedCharacter and the
// characters that would have been accepted are listed in want.
func (p *parser) unexpected(want ...rune) error {
	if p.atEOF() {
		return p.failAt(p.pos, UnexpectedEndOfInput, nil)
	}
	e := p.failAt(p.pos, UnexpectedCharacter, nil)
	e.Found, _ = mem.DecodeRune(p.input.SliceFrom(p.pos))
	e.Expected = slices.Clone(want)
	return e
}

func (p *parser) failAt(pos int, kind ErrorKind, err error) *ParseError {
	return &ParseError{
		Kind:     kind,
		Offset:   pos,
		Location: lineColAt(p.input, pos),
		err:      err,
	}
}

func isSpace(c byte) bool { return c == ' ' || c == '\r' || c == '\n' || c == '\t' }
func isDigit(c byte) bool { return '0' <= c && c <= '9' }
