// Copyright (C) 2026 The flatjson authors. All Rights Reserved.

package flatjson

import (
	"bytes"
	"fmt"

	"github.com/advxolltm/flatjson/arena"

	"go4.org/mem"
)

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Offset  int    // byte offset in the input where the error was detected
	Message string // human-readable description
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Message, e.Offset)
}

// Parse parses a complete JSON document from input and returns its record
// list. The document must be a single object, which becomes a one-element
// record list, or an array whose every element is an object, whose elements
// become the record list directly. Anything else, including an empty input
// and trailing non-whitespace after the document, is a syntax error of
// concrete type [*SyntaxError].
//
// The value tree and the record list are allocated entirely from perm.
// String and number values alias input wherever possible, so input must stay
// alive and unmodified for as long as the returned values are in use.
func Parse(input []byte, perm *arena.Arena) (recs []*Value, err error) {
	defer func() {
		if v := recover(); v != nil {
			serr, ok := v.(*SyntaxError)
			if !ok {
				panic(v)
			}
			recs, err = nil, serr
		}
	}()

	p := &parser{input: input, perm: perm}
	top := p.parseValue()
	p.skipSpace()
	if p.pos != len(p.input) {
		p.failf("unexpected data after top-level value")
	}

	switch top.Kind() {
	case Object:
		return arena.Append(perm, nil, top), nil
	case Array:
		for _, el := range top.Values() {
			if el.Kind() != Object {
				p.failf("top-level array element is %v, not object", el.Kind())
			}
		}
		// The elements become the records directly; only the array's own
		// backing slice is abandoned.
		return top.Values(), nil
	default:
		p.failf("top-level value is %v, not object or array of objects", top.Kind())
		panic("unreachable")
	}
}

// A parser is a single-pass recursive-descent consumer of a byte buffer.
// All parse methods report errors by panicking with a *SyntaxError, which
// Parse recovers at the top.
type parser struct {
	input []byte
	pos   int
	perm  *arena.Arena
	buf   []byte // scratch for escaped-string decoding, reused across strings
}

const eof = -1

func (p *parser) peek() int {
	if p.pos >= len(p.input) {
		return eof
	}
	return int(p.input[p.pos])
}

func (p *parser) next() {
	if p.pos < len(p.input) {
		p.pos++
	}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) expect(ch byte) {
	if p.peek() != int(ch) {
		p.failf("expected %q, got %s", ch, p.describe())
	}
	p.next()
}

// describe renders the byte at the current position for error messages.
func (p *parser) describe() string {
	if p.pos >= len(p.input) {
		return "end of input"
	}
	return fmt.Sprintf("%q", p.input[p.pos])
}

func (p *parser) failf(msg string, args ...any) {
	panic(&SyntaxError{Offset: p.pos, Message: fmt.Sprintf(msg, args...)})
}

func (p *parser) parseValue() *Value {
	p.skipSpace()
	switch ch := p.peek(); {
	case ch == eof:
		p.failf("unexpected end of input")
	case ch == '"':
		v := newValue(p.perm, String)
		v.text = p.parseString()
		return v
	case ch == '{':
		return p.parseObject()
	case ch == '[':
		return p.parseArray()
	case ch == '-' || isDigit(ch):
		v := newValue(p.perm, Number)
		v.text = p.parseNumber()
		return v
	case ch == 't':
		p.matchKeyword("true")
		v := newValue(p.perm, Bool)
		v.boo = true
		return v
	case ch == 'f':
		p.matchKeyword("false")
		return newValue(p.perm, Bool)
	case ch == 'n':
		p.matchKeyword("null")
		return newValue(p.perm, Null)
	}
	p.failf("unexpected %s", p.describe())
	panic("unreachable")
}

func (p *parser) parseObject() *Value {
	p.expect('{')
	p.skipSpace()

	obj := newValue(p.perm, Object)
	if p.peek() == '}' {
		p.next()
		return obj
	}
	for {
		p.skipSpace()
		if p.peek() != '"' {
			p.failf("object key must be a string, got %s", p.describe())
		}
		key := p.parseString()
		p.skipSpace()
		p.expect(':')

		obj.pushMember(p.perm, key, p.parseValue())

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.next()
			p.skipSpace()
			if p.peek() == '}' {
				p.failf("trailing comma in object")
			}
		case '}':
			p.next()
			return obj
		default:
			p.failf("expected ',' or '}' in object, got %s", p.describe())
		}
	}
}

func (p *parser) parseArray() *Value {
	p.expect('[')
	p.skipSpace()

	arr := newValue(p.perm, Array)
	if p.peek() == ']' {
		p.next()
		return arr
	}
	for {
		arr.pushElem(p.perm, p.parseValue())

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.next()
			p.skipSpace()
			if p.peek() == ']' {
				p.failf("trailing comma in array")
			}
		case ']':
			p.next()
			return arr
		default:
			p.failf("expected ',' or ']' in array, got %s", p.describe())
		}
	}
}

// parseString consumes a quoted string. The fast path scans for the closing
// quote and, if no backslash intervenes, returns a slice aliasing the input
// with no copying. Hitting a backslash restarts from the opening quote down
// the slow path, which decodes escapes into the scratch buffer and copies the
// result once into the permanent arena.
func (p *parser) parseString() mem.RO {
	p.expect('"')
	start := p.pos

	i := bytes.IndexAny(p.input[start:], "\"\\")
	if i < 0 {
		p.pos = len(p.input)
		p.failf("unterminated string")
	}
	if p.input[start+i] == '"' {
		p.pos = start + i + 1
		return mem.B(p.input[start : start+i])
	}
	return p.parseStringSlow(start)
}

func (p *parser) parseStringSlow(start int) mem.RO {
	p.buf = p.buf[:0]
	p.pos = start

	for {
		ch := p.peek()
		if ch == eof {
			p.failf("unterminated string")
		}
		if ch == '"' {
			break
		}
		if ch != '\\' {
			p.buf = append(p.buf, byte(ch))
			p.next()
			continue
		}

		p.next() // consume the backslash
		switch p.peek() {
		case eof:
			p.failf("incomplete escape sequence")
		case '"':
			p.buf = append(p.buf, '"')
		case '\\':
			p.buf = append(p.buf, '\\')
		case '/':
			p.buf = append(p.buf, '/')
		case 'b':
			p.buf = append(p.buf, '\b')
		case 'f':
			p.buf = append(p.buf, '\f')
		case 'n':
			p.buf = append(p.buf, '\n')
		case 'r':
			p.buf = append(p.buf, '\r')
		case 't':
			p.buf = append(p.buf, '\t')
		case 'u':
			// Code points above 0x7F are replaced with '?'. Full UTF-8
			// synthesis is out of scope for CSV cell text.
			v := 0
			for i := 0; i < 4; i++ {
				p.next()
				hv := hexVal(p.peek())
				if hv < 0 {
					p.failf("invalid Unicode escape")
				}
				v = v<<4 | hv
			}
			if v <= 0x7F {
				p.buf = append(p.buf, byte(v))
			} else {
				p.buf = append(p.buf, '?')
			}
		default:
			p.failf("invalid %s after escape", p.describe())
		}
		p.next() // consume the escape letter (or last hex digit)
	}
	p.expect('"')

	return mem.B(p.perm.Copy(p.buf))
}

// parseNumber validates the JSON number grammar character by character but
// returns the number as a verbatim slice into the input, preserving the
// original digit sequence exactly.
func (p *parser) parseNumber() mem.RO {
	start := p.pos

	if p.peek() == '-' {
		p.next()
	}
	if !isDigit(p.peek()) {
		p.failf("malformed number")
	}
	if p.peek() == '0' {
		p.next()
		if isDigit(p.peek()) {
			p.failf("extra leading zeroes in number")
		}
	} else {
		for isDigit(p.peek()) {
			p.next()
		}
	}

	if p.peek() == '.' {
		p.next()
		if !isDigit(p.peek()) {
			p.failf("no digits after decimal point")
		}
		for isDigit(p.peek()) {
			p.next()
		}
	}

	if ch := p.peek(); ch == 'e' || ch == 'E' {
		p.next()
		if ch := p.peek(); ch == '+' || ch == '-' {
			p.next()
		}
		if !isDigit(p.peek()) {
			p.failf("missing exponent digits")
		}
		for isDigit(p.peek()) {
			p.next()
		}
	}

	return mem.B(p.input[start:p.pos])
}

func (p *parser) matchKeyword(kw string) {
	if len(p.input)-p.pos < len(kw) || string(p.input[p.pos:p.pos+len(kw)]) != kw {
		p.failf("unknown constant")
	}
	p.pos += len(kw)
}

func isDigit(ch int) bool { return '0' <= ch && ch <= '9' }

func hexVal(ch int) int {
	switch {
	case '0' <= ch && ch <= '9':
		return ch - '0'
	case 'a' <= ch && ch <= 'f':
		return ch - 'a' + 10
	case 'A' <= ch && ch <= 'F':
		return ch - 'A' + 10
	}
	return -1
}
