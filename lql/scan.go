/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// scan.go holds the lexical primitives. Each scanner takes a byte offset
// into the parser's input and returns the scanned text, the offset just past
// it, and an error. A recoverable error means "not this token"; unterminated
// strings are fatal.

package lql

import "strings"

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return isLetter(ch) || ch == '_'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}

// isKeywordChar reports whether ch can be part of a search keyword, based on
// the SumoLogic keyword search syntax.
func isKeywordChar(ch byte) bool {
	switch ch {
	case '-', '_', ':', '/', '.', '+', '@', '#', '$', '%', '^', '*':
		return true
	}
	return isLetter(ch) || isDigit(ch)
}

// skipSpace advances past insignificant whitespace.
func (p *Parser) skipSpace(pos int) int {
	for pos < len(p.input) {
		switch p.input[pos] {
		case ' ', '\t', '\n', '\r':
			pos++
		default:
			return pos
		}
	}
	return pos
}

// peekByte returns the byte at pos, or 0 at end of input.
func (p *Parser) peekByte(pos int) byte {
	if pos >= len(p.input) {
		return 0
	}
	return p.input[pos]
}

// lit matches the literal text at pos without skipping whitespace.
func (p *Parser) lit(pos int, text string) (int, bool) {
	if strings.HasPrefix(p.input[pos:], text) {
		return pos + len(text), true
	}
	return pos, false
}

// litWord matches a word literal at pos. Unlike lit, the match fails when an
// identifier character follows, so "from" does not match inside "fromage".
func (p *Parser) litWord(pos int, word string) (int, bool) {
	next, ok := p.lit(pos, word)
	if !ok || (next < len(p.input) && isIdentChar(p.input[next])) {
		return pos, false
	}
	return next, true
}

// scanIdent scans an identifier: a letter or underscore followed by any run
// of letters, digits and underscores.
func (p *Parser) scanIdent(pos int) (string, int, *SyntaxError) {
	if pos >= len(p.input) || !isIdentStart(p.input[pos]) {
		return "", pos, errNoMatch(pos)
	}
	end := pos + 1
	for end < len(p.input) && isIdentChar(p.input[end]) {
		end++
	}
	return p.input[pos:end], end, nil
}

// scanKeywordToken scans a run of one or more search keyword characters.
func (p *Parser) scanKeywordToken(pos int) (string, int, *SyntaxError) {
	end := pos
	for end < len(p.input) && isKeywordChar(p.input[end]) {
		end++
	}
	if end == pos {
		return "", pos, errNoMatch(pos)
	}
	return p.input[pos:end], end, nil
}

// scanQuotedString scans a single- or double-quoted string. The contents are
// returned raw, escape sequences included: a backslash consumes the
// following character verbatim, so an escaped delimiter does not terminate
// the string. A quote opened but never closed is a fatal error whose kind
// names the quote style.
func (p *Parser) scanQuotedString(pos int) (string, int, *SyntaxError) {
	if pos >= len(p.input) || (p.input[pos] != '"' && p.input[pos] != '\'') {
		return "", pos, errNoMatch(pos)
	}
	quote := p.input[pos]
	i := pos + 1
	for i < len(p.input) {
		switch p.input[i] {
		case '\\':
			i += 2
		case quote:
			return p.input[pos+1 : i], i + 1, nil
		default:
			i++
		}
	}
	kind := UnterminatedDoubleQuotedString
	if quote == '\'' {
		kind = UnterminatedSingleQuotedString
	}
	return "", pos, newUnterminatedStringError(kind, pos, len(p.input))
}

// scanDigits scans a run of one or more decimal digits.
func (p *Parser) scanDigits(pos int) (string, int, *SyntaxError) {
	end := pos
	for end < len(p.input) && isDigit(p.input[end]) {
		end++
	}
	if end == pos {
		return "", pos, errNoMatch(pos)
	}
	return p.input[pos:end], end, nil
}

// scanNumber scans a floating point literal: optional sign, digits with an
// optional fraction, and an optional exponent. The text is returned along
// with its end offset; conversion happens at the call site.
func (p *Parser) scanNumber(pos int) (string, int, *SyntaxError) {
	start := pos
	if pos < len(p.input) && (p.input[pos] == '+' || p.input[pos] == '-') {
		pos++
	}
	digits := 0
	for pos < len(p.input) && isDigit(p.input[pos]) {
		pos++
		digits++
	}
	if pos < len(p.input) && p.input[pos] == '.' {
		pos++
		for pos < len(p.input) && isDigit(p.input[pos]) {
			pos++
			digits++
		}
	}
	if digits == 0 {
		return "", start, errNoMatch(start)
	}
	if pos < len(p.input) && (p.input[pos] == 'e' || p.input[pos] == 'E') {
		expEnd := pos + 1
		if expEnd < len(p.input) && (p.input[expEnd] == '+' || p.input[expEnd] == '-') {
			expEnd++
		}
		expDigits := 0
		for expEnd < len(p.input) && isDigit(p.input[expEnd]) {
			expEnd++
			expDigits++
		}
		if expDigits > 0 {
			pos = expEnd
		}
	}
	return p.input[start:pos], pos, nil
}
