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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/logsql/lql"
)

func TestNewExprCondition(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{
			name:       "simple comparison",
			expression: "status_code > 499",
			wantErr:    false,
		},
		{
			name:       "negation",
			expression: "!(level == 'debug')",
			wantErr:    false,
		},
		{
			name:       "invalid expression",
			expression: "status_code >",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := NewExprCondition(tt.expression)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cond)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, cond)
			}
		})
	}
}

func TestFromExpr(t *testing.T) {
	tests := []struct {
		name  string
		query string
		env   map[string]interface{}
		want  bool
	}{
		{
			name:  "numeric comparison passes",
			query: `* | where status_code >= 400`,
			env:   map[string]interface{}{"status_code": 502},
			want:  true,
		},
		{
			name:  "numeric comparison fails",
			query: `* | where status_code >= 400`,
			env:   map[string]interface{}{"status_code": 200},
			want:  false,
		},
		{
			name:  "string equality",
			query: `* | where level == "error"`,
			env:   map[string]interface{}{"level": "error"},
			want:  true,
		},
		{
			name:  "negated column",
			query: `* | where !internal`,
			env:   map[string]interface{}{"internal": false},
			want:  true,
		},
		{
			name:  "missing field fails the predicate",
			query: `* | where status_code >= 400`,
			env:   map[string]interface{}{},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := lql.Parse(tt.query)
			require.NoError(t, err)
			require.Len(t, query.Operators, 1)

			where, ok := query.Operators[0].(*lql.Inline).Operator.Value.(*lql.WhereOp)
			require.True(t, ok)
			require.NotNil(t, where.Expr)

			cond, err := FromExpr(where.Expr.Value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cond.Evaluate(tt.env))
		})
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "comparison",
			query: `* | where status_code >= 400`,
			want:  "status_code >= 400",
		},
		{
			name:  "string value is single quoted",
			query: `* | where level == "error"`,
			want:  "level == 'error'",
		},
		{
			name:  "unary operand keeps parentheses",
			query: `* | where !(a == b)`,
			want:  "!(a == b)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := lql.Parse(tt.query)
			require.NoError(t, err)

			where := query.Operators[0].(*lql.Inline).Operator.Value.(*lql.WhereOp)
			require.NotNil(t, where.Expr)
			assert.Equal(t, tt.want, Render(where.Expr.Value))
		})
	}
}

func TestKeywordCondition(t *testing.T) {
	tests := []struct {
		name  string
		query string
		line  string
		want  bool
	}{
		{
			name:  "wildcard matches anything",
			query: `*`,
			line:  "any line at all",
			want:  true,
		},
		{
			name:  "bare keyword is case insensitive",
			query: `error`,
			line:  "2026-08-31 ERROR dialing upstream",
			want:  true,
		},
		{
			name:  "all terms must match",
			query: `error upstream`,
			line:  "2026-08-31 ERROR dialing origin",
			want:  false,
		},
		{
			name:  "quoted term matches exactly",
			query: `"connection refused"`,
			line:  "dial tcp: connection refused",
			want:  true,
		},
		{
			name:  "quoted term with regex metacharacters",
			query: `"[502]"`,
			line:  "upstream returned [502]",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := lql.Parse(tt.query)
			require.NoError(t, err)

			cond := NewKeywordCondition(query.Search)
			assert.Equal(t, tt.want, cond.Evaluate(tt.line))
		})
	}
}
