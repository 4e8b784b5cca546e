// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package jsonval

import (
	"math"
	"strings"
)

// Parser is a single-pass recursive-descent JSON parser over a source
// buffer with an explicit cursor. It bails on the first error: every parse
// method returns ErrParse with no partial result.
//
// The parser is byte-oriented. Grammar tokens must be ASCII; any non-ASCII
// source byte inside a string becomes one 16-bit code unit. It is not
// UTF-8 aware beyond that.
//
// A Parser is single-use and not safe for concurrent use. Most callers
// want ParseSingle.
type Parser struct {
	source string
	index  int
}

// NewParser returns a parser positioned at the start of source.
func NewParser(source string) *Parser {
	return &Parser{source: source}
}

// ParseSingle parses one JSON value from source. Bytes after the first
// complete value are ignored, matching the wire reader's contract of one
// message per buffer.
func ParseSingle(source string) (Value, error) {
	return NewParser(source).ParseValue()
}

func (p *Parser) eof() bool {
	return p.index >= len(p.source)
}

// unchecked reads the current byte. Callers must have ruled out EOF.
func (p *Parser) unchecked() byte {
	return p.source[p.index]
}

// cur returns the current byte, or false at EOF.
func (p *Parser) cur() (byte, bool) {
	if p.eof() {
		return 0, false
	}
	return p.unchecked(), true
}

func (p *Parser) accept() {
	p.index++
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\r' || b == '\t'
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

func fromHex(b byte) uint16 {
	switch {
	case 'A' <= b && b <= 'F':
		return uint16(b-'A') + 10
	case 'a' <= b && b <= 'f':
		return uint16(b-'a') + 10
	default:
		return uint16(b - '0')
	}
}

func (p *Parser) skipWhitespace() {
	for !p.eof() && isWhitespace(p.unchecked()) {
		p.accept()
	}
}

// parseDigits consumes a digit run, returning its value and how many
// digits were consumed.
func (p *Parser) parseDigits() (value uint64, count int) {
	for !p.eof() && isDigit(p.unchecked()) {
		value = value*10 + uint64(p.unchecked()-'0')
		p.accept()
		count++
	}
	return value, count
}

// parseNumber parses the JSON number grammar: optional sign, an integral
// part that is either a bare zero or a non-zero-prefixed digit run, an
// optional fraction, and an optional exponent applied as a base-10 scale.
func (p *Parser) parseNumber() (float64, error) {
	negative := false
	if c, ok := p.cur(); ok && c == '-' {
		negative = true
		p.accept()
	}

	var integral uint64
	c, ok := p.cur()
	switch {
	case !ok:
		return 0, ErrParse
	case c == '0':
		// no leading zeroes on a number, so if it starts with
		// zero then the integral part is just zero
		p.accept()
	case isDigit(c):
		integral, _ = p.parseDigits()
	default:
		return 0, ErrParse
	}

	fraction := 0.0
	if c, ok := p.cur(); ok && c == '.' {
		p.accept()
		if c, ok := p.cur(); !ok || !isDigit(c) {
			return 0, ErrParse
		}
		digits, count := p.parseDigits()
		fraction = float64(digits) / math.Pow10(count)
	}

	exponent := 0
	if c, ok := p.cur(); ok && (c == 'e' || c == 'E') {
		p.accept()
		sign := 1
		if c, ok := p.cur(); ok && c == '-' {
			sign = -1
			p.accept()
		} else if ok && c == '+' {
			p.accept()
		}
		if c, ok := p.cur(); !ok || !isDigit(c) {
			return 0, ErrParse
		}
		digits, _ := p.parseDigits()
		exponent = sign * int(digits)
	}

	value := (float64(integral) + fraction) * math.Pow10(exponent)
	if negative {
		value = -value
	}
	return value, nil
}

// parseFourHex parses exactly four hexadecimal digits into one code unit.
func (p *Parser) parseFourHex() (uint16, error) {
	var value uint16
	for i := 0; i < 4; i++ {
		c, ok := p.cur()
		if !ok || !isHexDigit(c) {
			return 0, ErrParse
		}
		value = value<<4 | fromHex(c)
		p.accept()
	}
	return value, nil
}

// parseEscape parses the character after a backslash. \uXXXX yields one
// code unit; surrogate pairs are not combined.
func (p *Parser) parseEscape() (uint16, error) {
	c, ok := p.cur()
	if !ok {
		return 0, ErrParse
	}
	switch c {
	case '"':
		p.accept()
		return '"', nil
	case '\\':
		p.accept()
		return '\\', nil
	case '/':
		p.accept()
		return '/', nil
	case 'b':
		p.accept()
		return '\b', nil
	case 'f':
		p.accept()
		return '\f', nil
	case 'n':
		p.accept()
		return '\n', nil
	case 'r':
		p.accept()
		return '\r', nil
	case 't':
		p.accept()
		return '\t', nil
	case 'u':
		p.accept()
		return p.parseFourHex()
	default:
		return 0, ErrParse
	}
}

// parseString assumes the opening quote has been accepted and consumes up
// to and including the closing quote.
func (p *Parser) parseString() (Str, error) {
	value := Str{}
	for {
		c, ok := p.cur()
		if !ok {
			return nil, ErrParse // unterminated string
		}
		if c == '"' {
			p.accept()
			return value, nil
		}
		if c == '\\' {
			p.accept()
			escaped, err := p.parseEscape()
			if err != nil {
				return nil, err
			}
			value = append(value, escaped)
			continue
		}
		value = append(value, uint16(c))
		p.accept()
	}
}

// parseArray assumes the opening bracket has been accepted. A missing
// comma between elements ends the sequence; the closing bracket is
// mandatory.
func (p *Parser) parseArray() ([]Value, error) {
	var values []Value

	p.skipWhitespace()
	for {
		c, ok := p.cur()
		if !ok || c == ']' {
			break
		}
		value, err := p.ParseValue()
		if err != nil {
			return nil, err
		}
		values = append(values, value)
		if c, ok := p.cur(); !ok || c != ',' {
			break
		}
		p.accept()
		p.skipWhitespace()
	}

	if c, ok := p.cur(); !ok || c != ']' {
		return nil, ErrParse
	}
	p.accept()
	return values, nil
}

// parseObject assumes the opening brace has been accepted. Keys must be
// quoted strings; a duplicate key fails the whole parse.
func (p *Parser) parseObject() (Object, error) {
	var pairs Object

	p.skipWhitespace()
	for {
		c, ok := p.cur()
		if !ok || c == '}' {
			break
		}
		if c != '"' {
			return Object{}, ErrParse
		}
		p.accept()
		key, err := p.parseString()
		if err != nil {
			return Object{}, err
		}
		p.skipWhitespace()
		if c, ok := p.cur(); !ok || c != ':' {
			return Object{}, ErrParse
		}
		p.accept()
		value, err := p.ParseValue()
		if err != nil {
			return Object{}, err
		}
		if !pairs.Set(key, value) {
			return Object{}, ErrParse // duplicate key
		}
		if c, ok := p.cur(); !ok || c != ',' {
			break
		}
		p.accept()
		p.skipWhitespace()
	}

	if c, ok := p.cur(); !ok || c != '}' {
		return Object{}, ErrParse
	}
	p.accept()
	return pairs, nil
}

// ParseValue parses one value at the cursor, trying in order: the literals
// false/true/null, a number, an object, an array, a string. Any other
// lookahead is a parse failure. Whitespace around the value is skipped.
func (p *Parser) ParseValue() (Value, error) {
	p.skipWhitespace()
	if p.eof() {
		return Value{}, ErrParse
	}

	var final Value
	rest := p.source[p.index:]
	switch {
	case strings.HasPrefix(rest, "false"):
		p.index += len("false")
		final = NewBool(false)
	case strings.HasPrefix(rest, "true"):
		p.index += len("true")
		final = NewBool(true)
	case strings.HasPrefix(rest, "null"):
		p.index += len("null")
		final = Null()
	case p.unchecked() == '-' || isDigit(p.unchecked()):
		number, err := p.parseNumber()
		if err != nil {
			return Value{}, err
		}
		final = NewNumber(number)
	default:
		switch p.unchecked() {
		case '{':
			p.accept()
			object, err := p.parseObject()
			if err != nil {
				return Value{}, err
			}
			final = NewObject(object)
		case '[':
			p.accept()
			elems, err := p.parseArray()
			if err != nil {
				return Value{}, err
			}
			final = NewArray(elems)
		case '"':
			p.accept()
			str, err := p.parseString()
			if err != nil {
				return Value{}, err
			}
			final = NewString(str)
		default:
			return Value{}, ErrParse
		}
	}

	p.skipWhitespace()
	return final, nil
}
