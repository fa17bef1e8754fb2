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

// expr.go implements the expression grammar:
//
//	expr := atom comparison_op atom | '!' atom | atom
//	atom := ident | literal | '(' expr ')'
//
// Alternatives are tried in order and the first success wins. There is a
// single comparison level and no precedence climbing. Fatal errors from a
// partially matched construct (unterminated string, missing closing paren)
// propagate through every alternative.

package lql

import (
	"strings"

	"github.com/rulego/logsql/types"
)

// parseExpr parses one expression at pos.
func (p *Parser) parseExpr(pos int) (Expr, int, *SyntaxError) {
	// binary: atom comparison_op atom
	left, next, err := p.parseAtom(pos)
	if err != nil && !err.Recoverable {
		return nil, pos, err
	}
	if err == nil {
		op, afterOp, opErr := p.parseComparisonOp(next)
		if opErr == nil {
			right, afterRight, rightErr := p.parseAtom(afterOp)
			if rightErr == nil {
				return &BinaryExpr{Op: BinaryOp{Comparison: op}, Left: left, Right: right}, afterRight, nil
			}
			if !rightErr.Recoverable {
				return nil, pos, rightErr
			}
		} else if !opErr.Recoverable {
			return nil, pos, opErr
		}
	}

	// unary: '!' atom
	if afterBang, ok := p.lit(p.skipSpace(pos), "!"); ok {
		operand, next, err := p.parseAtom(afterBang)
		if err == nil {
			return &UnaryExpr{Op: Not, Operand: operand}, next, nil
		}
		if !err.Recoverable {
			return nil, pos, err
		}
	}

	// atom
	return p.parseAtom(pos)
}

// parseAtom parses a column reference, a literal value, or a parenthesized
// sub-expression. A parenthesized expression whose closing paren is missing
// fails fatally with MissingParen so that `(a == b` is reported as a broken
// parenthesis rather than "not an expression".
func (p *Parser) parseAtom(pos int) (Expr, int, *SyntaxError) {
	pos = p.skipSpace(pos)

	if name, next, err := p.scanIdent(pos); err == nil {
		return &ColumnExpr{Name: name}, next, nil
	}

	value, next, err := p.parseValue(pos)
	if err == nil {
		return value, next, nil
	}
	if !err.Recoverable {
		return nil, pos, err
	}

	if afterOpen, ok := p.lit(pos, "("); ok {
		inner, next, err := p.parseExpr(afterOpen)
		if err != nil {
			if !err.Recoverable {
				return nil, pos, err
			}
			return nil, pos, errNoMatch(pos)
		}
		next = p.skipSpace(next)
		if afterClose, ok := p.lit(next, ")"); ok {
			return inner, afterClose, nil
		}
		return nil, pos, newMissingParenError(next)
	}

	return nil, pos, errNoMatch(pos)
}

// parseValue parses a literal: a quoted string or a run of digits.
func (p *Parser) parseValue(pos int) (Expr, int, *SyntaxError) {
	pos = p.skipSpace(pos)

	if s, next, err := p.scanQuotedString(pos); err == nil {
		return &ValueExpr{Value: types.StringValue(s)}, next, nil
	} else if !err.Recoverable {
		return nil, pos, err
	}

	if digits, next, err := p.scanDigits(pos); err == nil {
		return &ValueExpr{Value: types.FromString(digits)}, next, nil
	}

	return nil, pos, errNoMatch(pos)
}

// parseComparisonOp parses one comparison operator. Two-character operators
// are tried before their one-character prefixes.
func (p *Parser) parseComparisonOp(pos int) (ComparisonOp, int, *SyntaxError) {
	pos = p.skipSpace(pos)
	ops := []struct {
		text string
		op   ComparisonOp
	}{
		{"==", Eq},
		{"<=", Lte},
		{">=", Gte},
		{"!=", Neq},
		{">", Gt},
		{"<", Lt},
	}
	for _, candidate := range ops {
		if next, ok := p.lit(pos, candidate.text); ok {
			return candidate.op, next, nil
		}
	}
	return 0, pos, errNoMatch(pos)
}

// parseSourcedExpr parses an expression and also captures the exact source
// text it consumed, trimmed of surrounding whitespace, for use as a
// human-readable column header. The AST value is reparsed from that
// substring so the header text and the parsed value always agree.
func (p *Parser) parseSourcedExpr(pos int) (string, Expr, int, *SyntaxError) {
	start := p.skipSpace(pos)
	_, end, err := p.parseExpr(start)
	if err != nil {
		return "", nil, pos, err
	}
	source := strings.TrimSpace(p.input[start:end])
	value, _, subErr := NewParser(source).parseExpr(0)
	if subErr != nil {
		return "", nil, pos, subErr
	}
	return source, value, end, nil
}

// parseSourcedExprList parses a nonempty comma-separated list of sourced
// expressions, returning the headers and parsed forms in parallel order.
func (p *Parser) parseSourcedExprList(pos int) ([]string, []Expr, int, *SyntaxError) {
	header, value, next, err := p.parseSourcedExpr(pos)
	if err != nil {
		return nil, nil, pos, err
	}
	headers := []string{header}
	values := []Expr{value}
	cur := next
	for {
		afterComma, ok := p.lit(p.skipSpace(cur), ",")
		if !ok {
			break
		}
		header, value, next, err := p.parseSourcedExpr(afterComma)
		if err != nil {
			if !err.Recoverable {
				return nil, nil, pos, err
			}
			break
		}
		headers = append(headers, header)
		values = append(values, value)
		cur = next
	}
	return headers, values, cur, nil
}
