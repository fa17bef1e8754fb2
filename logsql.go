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

package logsql

import (
	"github.com/rulego/logsql/condition"
	"github.com/rulego/logsql/logger"
	"github.com/rulego/logsql/lql"
)

// Parse parses a log query into its AST. See the lql package for the query
// syntax and the AST types.
func Parse(query string) (*lql.Query, error) {
	return lql.Parse(query)
}

// Validate reports whether query is syntactically valid without keeping the
// parse result.
func Validate(query string) error {
	_, err := lql.Parse(query)
	return err
}

// CompileSearch compiles the search phase of a parsed query into a predicate
// over raw log lines.
func CompileSearch(query *lql.Query) condition.Condition {
	return condition.NewKeywordCondition(query.Search)
}

// SetLogger installs the logger used for parser debug traces.
func SetLogger(l logger.Logger) {
	lql.SetLogger(l)
}
