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

package lql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordToRegexp(t *testing.T) {
	tests := []struct {
		name    string
		keyword Keyword
		text    string
		match   bool
	}{
		{
			name:    "wildcard star matches a run",
			keyword: NewWildcardKeyword("abc*"),
			text:    "log line abcdef",
			match:   true,
		},
		{
			name:    "trailing star must reach end of text",
			keyword: NewWildcardKeyword("abc*"),
			text:    "abcdef suffix",
			match:   true,
		},
		{
			name:    "star may match nothing",
			keyword: NewWildcardKeyword("abc*"),
			text:    "abc",
			match:   true,
		},
		{
			name:    "inner star",
			keyword: NewWildcardKeyword("a*c"),
			text:    "xxabbbcxx",
			match:   true,
		},
		{
			name:    "case insensitive",
			keyword: NewWildcardKeyword("error"),
			text:    "ERROR: boom",
			match:   true,
		},
		{
			name:    "exact mode treats star literally",
			keyword: NewExactKeyword("a*c"),
			text:    "abc",
			match:   false,
		},
		{
			name:    "exact mode matches literal star",
			keyword: NewExactKeyword("a*c"),
			text:    "xa*cx",
			match:   true,
		},
		{
			name:    "exact mode escapes metacharacters",
			keyword: NewExactKeyword("[500]"),
			text:    "status [500] returned",
			match:   true,
		},
		{
			name:    "escaped quote is unescaped before matching",
			keyword: NewExactKeyword(`say \"hi\"`),
			text:    `they say "hi" loudly`,
			match:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := tt.keyword.ToRegexp()
			assert.Equal(t, tt.match, re.MatchString(tt.text), "pattern %q against %q", re, tt.text)
		})
	}
}

func TestKeywordCaptures(t *testing.T) {
	// parse patterns rely on each * becoming one capture group
	re := NewWildcardKeyword("[*] *: *").ToRegexp()
	groups := re.FindStringSubmatch("[INFO] server: listening on :8080")
	assert.Equal(t, []string{"[INFO] server: listening on :8080", "INFO", "server", "listening on :8080"}, groups)
}

func TestKeywordIsEmpty(t *testing.T) {
	assert.True(t, NewWildcardKeyword("").IsEmpty())
	assert.False(t, NewWildcardKeyword("x").IsEmpty())
	assert.Equal(t, "abc", NewWildcardKeyword("abc").String())
}

func TestKeywordEqualIgnoresMode(t *testing.T) {
	assert.True(t, NewExactKeyword("abc").Equal(NewWildcardKeyword("abc")))
	assert.False(t, NewExactKeyword("abc").Equal(NewExactKeyword("abd")))
}
