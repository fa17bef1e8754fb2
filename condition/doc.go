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

/*
Package condition compiles parsed logsql predicates into executable form.

This package bridges the lql front end and the expr-lang library: where
clauses parsed by lql are rendered back to expression text and compiled to
bytecode, and the search phase of a query is compiled to regular expressions.
It is the execution counterpart of the parser and carries no parsing logic
of its own.

# Condition Interface

Unified interface for predicate evaluation:

	type Condition interface {
		Evaluate(env interface{}) bool
	}

# Usage Examples

Compiling a where clause:

	query, err := lql.Parse(`* | where status_code >= 400`)
	if err != nil {
		log.Fatal(err)
	}
	where := query.Operators[0].(*lql.Inline).Operator.Value.(*lql.WhereOp)
	cond, err := condition.FromExpr(where.Expr.Value)

	record := map[string]interface{}{"status_code": 502}
	cond.Evaluate(record) // true

Compiling the search phase:

	query, _ := lql.Parse(`error "connection refused"`)
	filter := condition.NewKeywordCondition(query.Search)
	filter.Evaluate("ERROR dialing upstream: connection refused") // true

# Semantics

Where-clause evaluation allows undefined variables, so a record that lacks a
referenced field fails the predicate rather than aborting the run. Keyword
matching is case-insensitive and conjunctive: a record passes only if every
search term matches.
*/
package condition
