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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/logsql/logger"
	"github.com/rulego/logsql/lql"
)

func TestParse(t *testing.T) {
	query, err := Parse(`error | json | count by host | sort by _count desc`)
	require.NoError(t, err)
	assert.Equal(t, []lql.Keyword{lql.NewWildcardKeyword("error")}, query.Search)
	require.Len(t, query.Operators, 3)

	_, ok := query.Operators[0].(*lql.Inline)
	assert.True(t, ok)
	agg, ok := query.Operators[1].(*lql.MultiAggregateOperator)
	require.True(t, ok)
	assert.Equal(t, []string{"host"}, agg.KeyColHeaders)
	sort, ok := query.Operators[2].(*lql.SortOperator)
	require.True(t, ok)
	assert.Equal(t, []string{"_count"}, sort.SortCols)
	assert.Equal(t, lql.Descending, sort.Direction)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("* | json | limit 10"))
	assert.Error(t, Validate("* | jsan"))
}

func TestCompileSearch(t *testing.T) {
	query, err := Parse(`error "dial timeout"`)
	require.NoError(t, err)

	search := CompileSearch(query)
	assert.True(t, search.Evaluate("ERROR upstream: dial timeout after 5s"))
	assert.False(t, search.Evaluate("WARN upstream: dial timeout after 5s"))
}

func TestSetLogger(t *testing.T) {
	SetLogger(logger.NewLogger(logger.ERROR, os.Stderr))
	defer SetLogger(logger.NewDiscardLogger())

	_, err := Parse("* | count")
	assert.NoError(t, err)
}
