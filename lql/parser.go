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

package lql

import (
	"strings"

	"github.com/rulego/logsql/logger"
)

// log is the package logger. Parsing is pure; the logger only carries DEBUG
// traces and is discarded unless a caller installs one via SetLogger.
var log = logger.NewDiscardLogger()

// SetLogger installs the logger used for parser debug traces.
func SetLogger(l logger.Logger) {
	log = l
}

// Parser parses one query string. A Parser only reads its input and keeps
// no other state, so independent parses may run concurrently.
type Parser struct {
	input string
}

// NewParser creates a parser over the given query text.
func NewParser(input string) *Parser {
	return &Parser{input: input}
}

// Parse is the package-level entry point: it parses the query string into a
// Query AST or returns a *SyntaxError describing the single failure.
func Parse(query string) (*Query, error) {
	return NewParser(query).Parse()
}

// Parse parses the whole input:
//
//	query := filter? ('|' operator ('|' operator)*)?
//
// The entire input must be consumed; trailing text is a hard failure, never
// a partial parse.
func (p *Parser) Parse() (*Query, error) {
	log.Debug("parsing query %q", p.input)

	search, cur, err := p.parseFilter(0)
	if err != nil {
		return nil, p.fail(err)
	}

	var operators []Operator
	cur = p.skipSpace(cur)
	for {
		afterPipe, ok := p.lit(cur, "|")
		if !ok {
			break
		}
		op, next, opErr := p.parseOperator(afterPipe)
		if opErr != nil {
			if opErr.Recoverable {
				at := p.skipSpace(afterPipe)
				opErr = newUnexpectedInputError(at, p.remainingToken(at), "expected an operator after '|'")
			}
			return nil, p.fail(opErr)
		}
		operators = append(operators, op)
		cur = p.skipSpace(next)
	}

	if cur != len(p.input) {
		return nil, p.fail(newUnexpectedInputError(cur, p.remainingToken(cur), "unexpected trailing input"))
	}

	log.Debug("parsed %d search terms, %d operators", len(search), len(operators))
	return &Query{Search: search, Operators: operators}, nil
}

// parseFilter parses the keyword search phase: whitespace-separated terms,
// each an exact quoted string or a wildcard bare token. Consecutive terms
// must be separated by whitespace, so `"a"b` stops after the quoted term
// and the leftover fails the whole-input check. Surrounding * on a bare
// token are stripped, since a * anywhere already implies wildcard matching,
// and terms left empty by the stripping are discarded: they would match
// everything anyway.
func (p *Parser) parseFilter(pos int) ([]Keyword, int, *SyntaxError) {
	var search []Keyword
	cur := pos
	for {
		termStart := p.skipSpace(cur)
		if cur != pos && termStart == cur {
			return search, cur, nil
		}

		if text, next, err := p.scanQuotedString(termStart); err == nil {
			search = append(search, NewExactKeyword(text))
			cur = next
			continue
		} else if !err.Recoverable {
			return nil, pos, err
		}

		if token, next, err := p.scanKeywordToken(termStart); err == nil {
			trimmed := strings.Trim(token, "*")
			if trimmed != "" {
				search = append(search, NewWildcardKeyword(trimmed))
			}
			cur = next
			continue
		}

		return search, cur, nil
	}
}

// remainingToken extracts a short token at pos for error reporting.
func (p *Parser) remainingToken(pos int) string {
	end := pos
	for end < len(p.input) && !strings.ContainsRune(" \t\r\n", rune(p.input[end])) {
		end++
	}
	if end-pos > 20 {
		end = pos + 20
	}
	return p.input[pos:end]
}

// fail finalizes a syntax error before it leaves the parser: the caret
// context is rendered and the failure traced.
func (p *Parser) fail(err *SyntaxError) *SyntaxError {
	if err.Context == "" {
		err.Context = FormatErrorContext(p.input, int(err.StartPos), 20)
	}
	log.Debug("parse failed: %v", err)
	return err
}
