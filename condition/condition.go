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

package condition

import (
	"bytes"
	"regexp"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/spf13/cast"

	"github.com/rulego/logsql/lql"
)

// Condition evaluates a predicate against one log record.
type Condition interface {
	Evaluate(env interface{}) bool
}

// ExprCondition is a Condition backed by a compiled expr-lang program.
// Undefined variables are allowed so that records missing a field simply
// fail the predicate instead of erroring.
type ExprCondition struct {
	program *vm.Program
}

// NewExprCondition compiles an expression string into a condition.
func NewExprCondition(expression string) (Condition, error) {
	program, err := expr.Compile(expression,
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, err
	}
	return &ExprCondition{program: program}, nil
}

// FromExpr compiles a parsed where-clause expression into a condition.
func FromExpr(e lql.Expr) (Condition, error) {
	return NewExprCondition(Render(e))
}

// Render formats a parsed expression as expr-lang source text. The operator
// set of where clauses (==, !=, <, <=, >, >=, !) is shared with expr-lang,
// so the formatted text compiles unchanged.
func Render(e lql.Expr) string {
	var buf bytes.Buffer
	e.Format(&buf)
	return buf.String()
}

// Evaluate runs the program against env. A runtime error counts as false.
func (ec *ExprCondition) Evaluate(env interface{}) bool {
	result, err := expr.Run(ec.program, env)
	if err != nil {
		return false
	}
	return result.(bool)
}

// KeywordCondition matches the query's search phase against a raw log line.
// All keywords must match: search terms are conjunctive.
type KeywordCondition struct {
	patterns []*regexp.Regexp
}

// NewKeywordCondition compiles the search keywords of a parsed query.
func NewKeywordCondition(keywords []lql.Keyword) *KeywordCondition {
	patterns := make([]*regexp.Regexp, 0, len(keywords))
	for _, kw := range keywords {
		patterns = append(patterns, kw.ToRegexp())
	}
	return &KeywordCondition{patterns: patterns}
}

// Evaluate reports whether every keyword matches the record. Non-string
// records are coerced to their string form first.
func (kc *KeywordCondition) Evaluate(env interface{}) bool {
	line := cast.ToString(env)
	for _, pattern := range kc.patterns {
		if !pattern.MatchString(line) {
			return false
		}
	}
	return true
}
