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
Package lql parses the logsql log query language.

A query is a keyword search phase followed by a pipeline of operators:

	error "connection refused" | json | where status_code >= 400 | count by host

This package is a pure front end: it turns a query string into a typed AST
and reports a single structured error on failure. It never touches log data;
execution belongs to the packages built on top of it.

# Query Structure

	query    := filter? ('|' operator)*
	filter   := (keyword | quoted-string)*
	operator := inline-operator | aggregate-operator | sort-operator

The search phase matches raw log lines. Bare keywords match
case-insensitively and may carry * wildcards; quoted strings match their
contents verbatim. Everything after the first | transforms records.

# Inline Operators

Record-by-record transforms, applicable to unbounded streams:

	json [from column]                     - unpack JSON fields
	parse "pattern" [from expr] as a, b [nodrop] - extract wildcard captures
	fields [+|-] a, b                      - keep or drop columns
	where [expr]                           - filter by predicate
	limit [count]                          - truncate the stream
	total(expr) [as name]                  - running total

# Aggregate Operators

Whole-stream reductions, optionally grouped with a trailing "by" clause:

	count, sum(expr), average(expr) / avg(expr)
	count_distinct(a, b), pNN(expr) / pctNN(expr) / percentileNN(expr)

Several aggregates may be combined in one operator:

	count, p50(latency) as median by endpoint

# Sort

	sort [by a, b] [asc|desc|dsc|ascending|descending]

# Positions

Every operator and several sub-clauses are wrapped in Positioned[T], which
records the byte span of the clause in the original query string. Spans let
downstream layers attach warnings or execution stats to the exact text that
produced them.

# Errors

Parse returns *SyntaxError, which carries an ErrorKind, the byte span of the
failure, the offending token, and suggestions when a near-miss of a known
operator name is detected:

	_, err := lql.Parse("* | jsan")
	// [NOT_AN_OPERATOR] unknown operator 'jsan' ... Did you mean 'json'?

FormatErrorContext renders a caret diagram pointing at the failure inside
the query text.

# Usage Example

	query, err := lql.Parse(`error | json | count by host`)
	if err != nil {
		var syntaxErr *lql.SyntaxError
		if errors.As(err, &syntaxErr) {
			fmt.Println(syntaxErr.Context)
		}
		return err
	}
	for _, op := range query.Operators {
		// dispatch on the operator type
	}
*/
package lql
