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

// operator.go implements the per-operator grammars and the did-you-mean
// lookahead that turns `| jsonn` into a NOT_AN_OPERATOR diagnostic instead
// of a bare syntax error.

package lql

import (
	"strconv"
)

// ValidInlineOperators lists the inline operator names the parser accepts.
var ValidInlineOperators = []string{"parse", "limit", "json", "total", "fields", "where"}

// ValidAggregateOperators lists the aggregate and sort family names. The
// percentile forms (pNN, pctNN, percentileNN) are recognized by a dedicated
// prefix rule rather than a table entry.
var ValidAggregateOperators = []string{"count", "average", "avg", "sum", "count_distinct", "sort"}

// ValidOperators is the full operator whitelist. Built once at package load
// and never mutated, so concurrent parses share it without locking.
var ValidOperators = append(append([]string{}, ValidInlineOperators...), ValidAggregateOperators...)

// didYouMean checks, without consuming input on success, that the upcoming
// token is one of choices (or a percentile form) followed by a
// non-alphabetic boundary. On a miss it commits to failure: the
// identifier-like token is consumed and a fatal error of the given kind is
// returned, so callers cannot backtrack into an unrelated rule and report a
// confusing generic failure.
func (p *Parser) didYouMean(pos int, choices []string, kind ErrorKind) *SyntaxError {
	pos = p.skipSpace(pos)

	if _, next, ok := p.scanPercentileFn(pos); ok && !isLetter(p.peekByte(next)) {
		return nil
	}
	for _, choice := range choices {
		if next, ok := p.lit(pos, choice); ok && !isLetter(p.peekByte(next)) {
			return nil
		}
	}

	end := pos
	for end < len(p.input) && isIdentChar(p.input[end]) {
		end++
	}
	token := p.input[pos:end]
	return newUnknownNameError(kind, pos, end, token, choices)
}

func (p *Parser) didYouMeanOperator(pos int) *SyntaxError {
	return p.didYouMean(pos, ValidOperators, NotAnOperator)
}

func (p *Parser) didYouMeanAggregate(pos int) *SyntaxError {
	return p.didYouMean(pos, ValidAggregateOperators, NotAnAggregateOperator)
}

// scanPercentileFn matches the percentile function prefix followed by
// exactly two decimal digits, returning the digit pair. Single-digit and
// three-digit forms do not match the fixed-width rule.
func (p *Parser) scanPercentileFn(pos int) (string, int, bool) {
	for _, prefix := range []string{"pct", "percentile", "p"} {
		next, ok := p.lit(pos, prefix)
		if !ok {
			continue
		}
		if next+2 <= len(p.input) && isDigit(p.input[next]) && isDigit(p.input[next+1]) {
			return p.input[next : next+2], next + 2, true
		}
	}
	return "", pos, false
}

// parseOperator parses one pipeline stage. The did-you-mean gate runs
// first; after it passes, the real grammars re-scan the same text in
// ordered-choice fashion.
func (p *Parser) parseOperator(pos int) (Operator, int, *SyntaxError) {
	if err := p.didYouMeanOperator(pos); err != nil {
		return nil, pos, err
	}

	if op, next, err := p.parseInlineOperator(pos); err == nil {
		return op, next, nil
	} else if !err.Recoverable {
		return nil, pos, err
	}
	if op, next, err := p.parseSortOperator(pos); err == nil {
		return op, next, nil
	} else if !err.Recoverable {
		return nil, pos, err
	}
	return p.parseMultiAggregateOperator(pos)
}

// parseInlineOperator tries each inline operator grammar in order, wrapping
// the winner with its source span.
func (p *Parser) parseInlineOperator(pos int) (Operator, int, *SyntaxError) {
	rules := []func(int) (InlineOperator, int, *SyntaxError){
		p.parseParseOp,
		p.parseJSONOp,
		p.parseFieldsOp,
		p.parseWhereOp,
		p.parseLimitOp,
		p.parseTotalOp,
	}
	for _, rule := range rules {
		op, next, err := withPos(p, pos, rule)
		if err == nil {
			return &Inline{Operator: op}, next, nil
		}
		if !err.Recoverable {
			return nil, pos, err
		}
	}
	return nil, pos, errNoMatch(pos)
}

// parseJSONOp parses `json [from IDENT]`.
func (p *Parser) parseJSONOp(pos int) (InlineOperator, int, *SyntaxError) {
	next, ok := p.lit(pos, "json")
	if !ok {
		return nil, pos, errNoMatch(pos)
	}
	op := &JSONOp{}
	if afterFrom, ok := p.litWord(p.skipSpace(next), "from"); ok {
		if name, afterIdent, err := p.scanIdent(p.skipSpace(afterFrom)); err == nil {
			op.InputColumn = name
			return op, afterIdent, nil
		}
	}
	return op, next, nil
}

// parseParseOp parses `parse STRING [from EXPR] as IDENT(, IDENT)* [nodrop]`.
// The quoted string is a wildcard pattern whose * markers denote capture
// positions; whether they correspond 1:1 with the field list is checked by
// the evaluator.
func (p *Parser) parseParseOp(pos int) (InlineOperator, int, *SyntaxError) {
	next, ok := p.lit(pos, "parse")
	if !ok {
		return nil, pos, errNoMatch(pos)
	}
	pattern, next, err := p.scanQuotedString(p.skipSpace(next))
	if err != nil {
		if !err.Recoverable {
			return nil, pos, err
		}
		return nil, pos, errNoMatch(pos)
	}

	var inputColumn Expr
	if afterFrom, ok := p.litWord(p.skipSpace(next), "from"); ok {
		column, afterExpr, err := p.parseExpr(afterFrom)
		if err == nil {
			inputColumn = column
			next = afterExpr
		} else if !err.Recoverable {
			return nil, pos, err
		}
	}

	afterAs, ok := p.litWord(p.skipSpace(next), "as")
	if !ok {
		return nil, pos, errNoMatch(next)
	}
	fields, next, err := p.parseIdentList(afterAs)
	if err != nil {
		return nil, pos, err
	}

	noDrop := false
	if afterNoDrop, ok := p.litWord(p.skipSpace(next), "nodrop"); ok {
		noDrop = true
		next = afterNoDrop
	}

	return &ParseOp{
		Pattern:     NewWildcardKeyword(pattern),
		Fields:      fields,
		InputColumn: inputColumn,
		NoDrop:      noDrop,
	}, next, nil
}

// parseFieldsOp parses `fields [mode] IDENT(, IDENT)*` where mode is
// + | only | include (keep) or - | except | drop (remove).
func (p *Parser) parseFieldsOp(pos int) (InlineOperator, int, *SyntaxError) {
	next, ok := p.lit(pos, "fields")
	if !ok {
		return nil, pos, errNoMatch(pos)
	}
	mode := FieldModeOnly
	modePos := p.skipSpace(next)
	for _, candidate := range []struct {
		text string
		mode FieldMode
	}{
		{"+", FieldModeOnly},
		{"only", FieldModeOnly},
		{"include", FieldModeOnly},
		{"-", FieldModeExcept},
		{"except", FieldModeExcept},
		{"drop", FieldModeExcept},
	} {
		afterMode, ok := p.lit(modePos, candidate.text)
		if isLetter(candidate.text[0]) {
			afterMode, ok = p.litWord(modePos, candidate.text)
		}
		if ok {
			mode = candidate.mode
			next = afterMode
			break
		}
	}
	fields, next, err := p.parseIdentList(next)
	if err != nil {
		return nil, pos, err
	}
	return &FieldsOp{Mode: mode, Fields: fields}, next, nil
}

// parseWhereOp parses `where [EXPR]`. The expression is optional; an empty
// where is syntactically valid and its meaning is the evaluator's call.
func (p *Parser) parseWhereOp(pos int) (InlineOperator, int, *SyntaxError) {
	next, ok := p.lit(pos, "where")
	if !ok {
		return nil, pos, errNoMatch(pos)
	}
	op := &WhereOp{}
	if condition, afterExpr, err := withPos(p, next, p.parseExpr); err == nil {
		op.Expr = &condition
		return op, afterExpr, nil
	} else if !err.Recoverable {
		return nil, pos, err
	}
	return op, next, nil
}

// parseLimitOp parses `limit [NUMBER]`. The count stays an unvalidated
// float with its own span; range and integrality checks happen downstream.
func (p *Parser) parseLimitOp(pos int) (InlineOperator, int, *SyntaxError) {
	next, ok := p.lit(pos, "limit")
	if !ok {
		return nil, pos, errNoMatch(pos)
	}
	op := &LimitOp{}
	if count, afterNumber, err := withPos(p, next, p.parseFloat); err == nil {
		op.Count = &count
		return op, afterNumber, nil
	}
	return op, next, nil
}

// parseFloat scans and converts a float literal.
func (p *Parser) parseFloat(pos int) (float64, int, *SyntaxError) {
	text, next, err := p.scanNumber(pos)
	if err != nil {
		return 0, pos, err
	}
	value, convErr := strconv.ParseFloat(text, 64)
	if convErr != nil {
		return 0, pos, errNoMatch(pos)
	}
	return value, next, nil
}

// parseTotalOp parses `total (EXPR) [as IDENT]`; the output column defaults
// to _total.
func (p *Parser) parseTotalOp(pos int) (InlineOperator, int, *SyntaxError) {
	next, ok := p.lit(pos, "total")
	if !ok {
		return nil, pos, errNoMatch(pos)
	}
	column, next, err := p.parseParenExpr(next)
	if err != nil {
		return nil, pos, err
	}
	output := "_total"
	if name, afterRename, ok := p.parseAsRename(next); ok {
		output = name
		next = afterRename
	}
	return &TotalOp{InputColumn: column, OutputColumn: output}, next, nil
}

// parseParenExpr parses `( EXPR )`. A missing opening paren is a
// recoverable no-match; once the paren is open, a missing closer is the
// fatal MissingParen.
func (p *Parser) parseParenExpr(pos int) (Expr, int, *SyntaxError) {
	afterOpen, ok := p.lit(p.skipSpace(pos), "(")
	if !ok {
		return nil, pos, errNoMatch(pos)
	}
	value, next, err := p.parseExpr(afterOpen)
	if err != nil {
		if !err.Recoverable {
			return nil, pos, err
		}
		return nil, pos, errNoMatch(pos)
	}
	next = p.skipSpace(next)
	afterClose, ok := p.lit(next, ")")
	if !ok {
		return nil, pos, newMissingParenError(next)
	}
	return value, afterClose, nil
}

// parseAsRename parses an optional `as IDENT` suffix.
func (p *Parser) parseAsRename(pos int) (string, int, bool) {
	afterAs, ok := p.litWord(p.skipSpace(pos), "as")
	if !ok {
		return "", pos, false
	}
	name, next, err := p.scanIdent(p.skipSpace(afterAs))
	if err != nil {
		return "", pos, false
	}
	return name, next, true
}

// parseIdentList parses a nonempty comma-separated identifier list.
func (p *Parser) parseIdentList(pos int) ([]string, int, *SyntaxError) {
	name, next, err := p.scanIdent(p.skipSpace(pos))
	if err != nil {
		return nil, pos, err
	}
	names := []string{name}
	cur := next
	for {
		afterComma, ok := p.lit(p.skipSpace(cur), ",")
		if !ok {
			break
		}
		name, next, err := p.scanIdent(p.skipSpace(afterComma))
		if err != nil {
			break
		}
		names = append(names, name)
		cur = next
	}
	return names, cur, nil
}

// parseSortOperator parses `sort [by] IDENT(, IDENT)* [direction]`. The
// direction aliases are matched longest first so `ascending` is not eaten
// as `asc` plus leftover text.
func (p *Parser) parseSortOperator(pos int) (Operator, int, *SyntaxError) {
	next, ok := p.lit(p.skipSpace(pos), "sort")
	if !ok {
		return nil, pos, errNoMatch(pos)
	}
	op := &SortOperator{Direction: Ascending}

	listPos := next
	if afterBy, ok := p.litWord(p.skipSpace(next), "by"); ok {
		listPos = afterBy
	}
	if cols, afterList, err := p.parseIdentList(listPos); err == nil {
		op.SortCols = cols
		next = afterList
	}

	dirPos := p.skipSpace(next)
	for _, candidate := range []struct {
		text string
		mode SortMode
	}{
		{"ascending", Ascending},
		{"asc", Ascending},
		{"descending", Descending},
		{"desc", Descending},
		{"dsc", Descending},
	} {
		if afterDir, ok := p.litWord(dirPos, candidate.text); ok {
			op.Direction = candidate.mode
			next = afterDir
			break
		}
	}
	return op, next, nil
}
