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

// aggregate.go implements the aggregate function grammars and the combined
// multi-aggregate operator:
//
//	count | sum(EXPR) | avg(EXPR) | average(EXPR)
//	count_distinct[(EXPR, ...)] | pNN(EXPR) | pctNN(EXPR) | percentileNN(EXPR)
//
// each optionally renamed with `as IDENT`, comma-combined, and optionally
// grouped with `by EXPR(, EXPR)*`.

package lql

import "strconv"

// parseAggregateFunction parses one aggregate function with its source
// span. The did-you-mean gate runs before the real grammars; count_distinct
// is tried before count so the longer name is not eaten as a prefix.
func (p *Parser) parseAggregateFunction(pos int) (Positioned[AggregateFunction], int, *SyntaxError) {
	var zero Positioned[AggregateFunction]
	if err := p.didYouMeanAggregate(pos); err != nil {
		return zero, pos, err
	}

	rules := []func(int) (AggregateFunction, int, *SyntaxError){
		p.parseCountDistinct,
		p.parseCount,
		p.parseAverage,
		p.parseSum,
		p.parsePercentile,
	}
	for _, rule := range rules {
		fn, next, err := withPos(p, pos, rule)
		if err == nil {
			return fn, next, nil
		}
		if !err.Recoverable {
			return zero, pos, err
		}
	}
	return zero, pos, errNoMatch(pos)
}

// parseCount parses `count`.
func (p *Parser) parseCount(pos int) (AggregateFunction, int, *SyntaxError) {
	next, ok := p.lit(pos, "count")
	if !ok {
		return nil, pos, errNoMatch(pos)
	}
	return &CountAgg{}, next, nil
}

// parseSum parses `sum(EXPR)`.
func (p *Parser) parseSum(pos int) (AggregateFunction, int, *SyntaxError) {
	next, ok := p.lit(pos, "sum")
	if !ok {
		return nil, pos, errNoMatch(pos)
	}
	column, next, err := p.parseParenExpr(next)
	if err != nil {
		return nil, pos, err
	}
	return &SumAgg{Column: column}, next, nil
}

// parseAverage parses `avg(EXPR)` or `average(EXPR)`.
func (p *Parser) parseAverage(pos int) (AggregateFunction, int, *SyntaxError) {
	next, ok := p.lit(pos, "avg")
	if !ok {
		next, ok = p.lit(pos, "average")
	}
	if !ok {
		return nil, pos, errNoMatch(pos)
	}
	column, next, err := p.parseParenExpr(next)
	if err != nil {
		return nil, pos, err
	}
	return &AverageAgg{Column: column}, next, nil
}

// parseCountDistinct parses `count_distinct` with an optional parenthesized
// expression list.
func (p *Parser) parseCountDistinct(pos int) (AggregateFunction, int, *SyntaxError) {
	next, ok := p.lit(pos, "count_distinct")
	if !ok {
		return nil, pos, errNoMatch(pos)
	}
	op := &CountDistinctAgg{}
	if args, afterArgs, err := withPos(p, next, p.parseExprList); err == nil {
		op.Columns = &args
		return op, afterArgs, nil
	} else if !err.Recoverable {
		return nil, pos, err
	}
	return op, next, nil
}

// parseExprList parses a parenthesized, possibly empty, comma-separated
// expression list. A missing closing paren is fatal. A comma is consumed
// only when an expression follows it, so a trailing comma leaves the list
// and fails the closing-paren check at the comma itself.
func (p *Parser) parseExprList(pos int) ([]Expr, int, *SyntaxError) {
	afterOpen, ok := p.lit(pos, "(")
	if !ok {
		return nil, pos, errNoMatch(pos)
	}
	var values []Expr
	cur := afterOpen
	if value, next, err := p.parseExpr(cur); err == nil {
		values = append(values, value)
		cur = next
		for {
			afterComma, ok := p.lit(p.skipSpace(cur), ",")
			if !ok {
				break
			}
			value, next, err := p.parseExpr(afterComma)
			if err != nil {
				if !err.Recoverable {
					return nil, pos, err
				}
				break
			}
			values = append(values, value)
			cur = next
		}
	} else if !err.Recoverable {
		return nil, pos, err
	}
	cur = p.skipSpace(cur)
	afterClose, ok := p.lit(cur, ")")
	if !ok {
		return nil, pos, newMissingParenError(cur)
	}
	return values, afterClose, nil
}

// parsePercentile parses the pNN / pctNN / percentileNN family. The
// percentile fraction comes from textually prefixing 0. to the fixed-width
// digit pair, preserving the user's spelling in PercentileStr.
func (p *Parser) parsePercentile(pos int) (AggregateFunction, int, *SyntaxError) {
	digits, next, ok := p.scanPercentileFn(pos)
	if !ok {
		return nil, pos, errNoMatch(pos)
	}
	column, next, err := p.parseParenExpr(next)
	if err != nil {
		return nil, pos, err
	}
	percentile, convErr := strconv.ParseFloat("0."+digits, 64)
	if convErr != nil {
		return nil, pos, errNoMatch(pos)
	}
	return &PercentileAgg{
		Percentile:    percentile,
		PercentileStr: digits,
		Column:        column,
	}, next, nil
}

// parseCompleteAggFunction parses an aggregate function plus its optional
// `as IDENT` rename, defaulting the output name per function.
func (p *Parser) parseCompleteAggFunction(pos int) (NamedAggregate, int, *SyntaxError) {
	fn, next, err := p.parseAggregateFunction(pos)
	if err != nil {
		return NamedAggregate{}, pos, err
	}
	name := fn.Value.DefaultName()
	if rename, afterRename, ok := p.parseAsRename(next); ok {
		name = rename
		next = afterRename
	}
	return NamedAggregate{Name: name, Func: fn}, next, nil
}

// parseMultiAggregateOperator parses one or more comma-separated aggregate
// functions with an optional trailing `by` key list. Group keys keep their
// trimmed source text as display headers alongside their parsed forms; no
// `by` clause means a single implicit group over the whole input.
func (p *Parser) parseMultiAggregateOperator(pos int) (Operator, int, *SyntaxError) {
	agg, next, err := p.parseCompleteAggFunction(pos)
	if err != nil {
		return nil, pos, err
	}
	aggregates := []NamedAggregate{agg}
	cur := next
	for {
		afterComma, ok := p.lit(p.skipSpace(cur), ",")
		if !ok {
			break
		}
		agg, next, err := p.parseCompleteAggFunction(afterComma)
		if err != nil {
			if !err.Recoverable {
				return nil, pos, err
			}
			break
		}
		aggregates = append(aggregates, agg)
		cur = next
	}

	op := &MultiAggregateOperator{Aggregates: aggregates}
	if afterBy, ok := p.litWord(p.skipSpace(cur), "by"); ok {
		headers, keys, next, err := p.parseSourcedExprList(afterBy)
		if err != nil {
			if !err.Recoverable {
				return nil, pos, err
			}
		} else {
			op.KeyColHeaders = headers
			op.KeyCols = keys
			cur = next
		}
	}
	return op, cur, nil
}
