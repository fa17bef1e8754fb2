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
	"regexp"
	"strings"
)

// KeywordMode determines how a keyword string is interpreted when matched
// against record text.
type KeywordMode int

const (
	// KeywordExact requires the keyword text to occur literally
	// (case-insensitively) in the matched text.
	KeywordExact KeywordMode = iota
	// KeywordWildcard lets * in the keyword text match any substring.
	KeywordWildcard
)

// Keyword is a search term from the pre-pipe filter phase, or the pattern of
// a parse operator.
type Keyword struct {
	text string
	mode KeywordMode
}

// NewExactKeyword creates a Keyword that matches its text literally, even
// when the text contains * or regex metacharacters.
func NewExactKeyword(text string) Keyword {
	return Keyword{text: text, mode: KeywordExact}
}

// NewWildcardKeyword creates a Keyword whose * characters match any
// substring.
func NewWildcardKeyword(text string) Keyword {
	return Keyword{text: text, mode: KeywordWildcard}
}

// IsEmpty reports whether the keyword text is empty. The mode is ignored: an
// empty keyword matches everything regardless of interpretation.
func (k Keyword) IsEmpty() bool {
	return k.text == ""
}

// Equal compares keyword text only; the mode does not participate.
func (k Keyword) Equal(other Keyword) bool {
	return k.text == other.text
}

// String returns the raw keyword text.
func (k Keyword) String() string {
	return k.text
}

// ToRegexp compiles the keyword to a case-insensitive regular expression for
// the evaluator to run. The literal text is metacharacter-escaped after
// unescaping any \" left over from the quoted form. In wildcard mode every *
// becomes a non-greedy capture of any characters, and a trailing * anchors
// the pattern to end of input so the match must consume the rest of the
// field.
func (k Keyword) ToRegexp() *regexp.Regexp {
	pattern := regexp.QuoteMeta(strings.ReplaceAll(k.text, `\"`, `"`))
	pattern = "(?i)" + pattern
	if k.mode == KeywordWildcard {
		pattern = strings.ReplaceAll(pattern, `\*`, `(.*?)`)
		if strings.HasSuffix(k.text, "*") {
			pattern += "$"
		}
	}
	return regexp.MustCompile(pattern)
}
