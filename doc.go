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
Package logsql is a query language front end for log search pipelines.

A logsql query combines free-text keyword search with a pipe-delimited
pipeline of transforms and aggregations:

	error "dial timeout" | json | where status >= 500 | count by host | sort by _count desc

# Architecture

The module is split into focused packages:

• lql - the parser: query text in, typed AST or structured error out

• condition - compiles parsed predicates and search terms to executable form

• types - the scalar value model shared by parser and evaluators

• logger - leveled logging used across the module

This root package is a thin facade over them for the common cases.

# Quick Start

	query, err := logsql.Parse(`error | json | count by host`)
	if err != nil {
		log.Fatal(err)
	}

	search := logsql.CompileSearch(query)
	search.Evaluate("ERROR dialing upstream")  // true

Parsing is side-effect free and safe to run concurrently. Errors returned by
Parse are *lql.SyntaxError values carrying the error kind, the byte span of
the offending text, and did-you-mean suggestions for misspelled operator
names.
*/
package logsql
