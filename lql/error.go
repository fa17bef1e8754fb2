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
	"fmt"
	"strings"
)

// ErrorKind discriminates syntax errors. Two severities exist: recoverable
// errors mean an alternative simply did not match and the parser may try the
// next one; fatal errors mean a partially matched construct is structurally
// broken and must propagate to the caller unchanged, never swallowed by a
// surrounding alternative.
type ErrorKind int

const (
	// StartOfError is the generic marker bracketing recoverable-vs-fatal
	// error regions; every plain "this alternative did not match" failure
	// carries it.
	StartOfError ErrorKind = iota
	// UnterminatedDoubleQuotedString reports an opened " never closed.
	UnterminatedDoubleQuotedString
	// UnterminatedSingleQuotedString reports an opened ' never closed.
	UnterminatedSingleQuotedString
	// MissingParen reports an opened ( never closed.
	MissingParen
	// NotAnOperator reports a token that is not a recognized operator name.
	NotAnOperator
	// NotAnAggregateOperator reports a token that is not a recognized
	// aggregate function name.
	NotAnAggregateOperator
	// UnexpectedInput reports text left over after the grammar finished,
	// or a pipe stage that matched no operator rule.
	UnexpectedInput
)

// String returns the screaming-snake name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case StartOfError:
		return "START_OF_ERROR"
	case UnterminatedDoubleQuotedString:
		return "UNTERMINATED_DOUBLE_QUOTED_STRING"
	case UnterminatedSingleQuotedString:
		return "UNTERMINATED_SINGLE_QUOTED_STRING"
	case MissingParen:
		return "MISSING_PAREN"
	case NotAnOperator:
		return "NOT_AN_OPERATOR"
	case NotAnAggregateOperator:
		return "NOT_AN_AGGREGATE_OPERATOR"
	case UnexpectedInput:
		return "UNEXPECTED_INPUT"
	default:
		return "UNKNOWN_ERROR"
	}
}

// SyntaxError is the structured parse error. StartPos and EndPos bracket the
// offending text in the original query so the caller can render a caret
// under it.
type SyntaxError struct {
	Kind        ErrorKind
	Message     string
	StartPos    QueryPosition
	EndPos      QueryPosition
	Token       string
	Expected    []string
	Suggestions []string
	Context     string
	Recoverable bool
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("[%s] %s", e.Kind, e.Message))
	builder.WriteString(fmt.Sprintf(" at position %d", e.StartPos))

	if e.Token != "" {
		builder.WriteString(fmt.Sprintf(" (found '%s')", e.Token))
	}
	if len(e.Expected) > 0 {
		builder.WriteString(fmt.Sprintf(", expected: %s", strings.Join(e.Expected, ", ")))
	}
	if e.Context != "" {
		builder.WriteString(fmt.Sprintf("\nContext: %s", e.Context))
	}
	if len(e.Suggestions) > 0 {
		builder.WriteString(fmt.Sprintf("\nSuggestions: %s", strings.Join(e.Suggestions, "; ")))
	}

	return builder.String()
}

// IsRecoverable reports whether an enclosing alternative may catch this
// error and try another grammar rule.
func (e *SyntaxError) IsRecoverable() bool {
	return e.Recoverable
}

// errNoMatch is the recoverable "this alternative did not match" failure.
func errNoMatch(pos int) *SyntaxError {
	return &SyntaxError{
		Kind:        StartOfError,
		Message:     "no match",
		StartPos:    QueryPosition(pos),
		EndPos:      QueryPosition(pos),
		Recoverable: true,
	}
}

// newUnterminatedStringError creates the fatal error for a quote opened at
// start and never closed before end of input.
func newUnterminatedStringError(kind ErrorKind, start, end int) *SyntaxError {
	quote := "\""
	if kind == UnterminatedSingleQuotedString {
		quote = "'"
	}
	return &SyntaxError{
		Kind:        kind,
		Message:     fmt.Sprintf("unterminated %s-quoted string", quoteName(kind)),
		StartPos:    QueryPosition(start),
		EndPos:      QueryPosition(end),
		Expected:    []string{quote},
		Suggestions: []string{"Ensure strings are properly closed"},
	}
}

func quoteName(kind ErrorKind) string {
	if kind == UnterminatedSingleQuotedString {
		return "single"
	}
	return "double"
}

// newMissingParenError creates the fatal error for an opened ( whose closing
// ) was not found at pos.
func newMissingParenError(pos int) *SyntaxError {
	return &SyntaxError{
		Kind:     MissingParen,
		Message:  "missing closing parenthesis",
		StartPos: QueryPosition(pos),
		EndPos:   QueryPosition(pos),
		Expected: []string{")"},
	}
}

// newUnknownNameError creates the fatal did-you-mean error for a token that
// resolved to no whitelisted operator or aggregate name.
func newUnknownNameError(kind ErrorKind, start, end int, token string, choices []string) *SyntaxError {
	what := "operator"
	if kind == NotAnAggregateOperator {
		what = "aggregate operator"
	}
	return &SyntaxError{
		Kind:        kind,
		Message:     fmt.Sprintf("not a valid %s", what),
		StartPos:    QueryPosition(start),
		EndPos:      QueryPosition(end),
		Token:       token,
		Expected:    choices,
		Suggestions: generateSuggestions(token, choices),
	}
}

// newUnexpectedInputError creates the hard error for text the top-level
// grammar could not consume.
func newUnexpectedInputError(pos int, found, message string) *SyntaxError {
	return &SyntaxError{
		Kind:     UnexpectedInput,
		Message:  message,
		StartPos: QueryPosition(pos),
		EndPos:   QueryPosition(pos + len(found)),
		Token:    found,
	}
}

// generateSuggestions ranks whitelist entries by edit distance to the
// offending token and phrases the near misses as questions.
func generateSuggestions(token string, choices []string) []string {
	if token == "" {
		return nil
	}
	lowered := strings.ToLower(token)
	var suggestions []string
	for _, choice := range choices {
		if editDistance(lowered, choice) <= 2 {
			suggestions = append(suggestions, fmt.Sprintf("Did you mean '%s'?", choice))
		}
	}
	return suggestions
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// FormatErrorContext renders the query text around position with a caret
// under the offending byte.
func FormatErrorContext(input string, position int, contextLength int) string {
	if position < 0 || position > len(input) {
		return ""
	}

	start := position - contextLength
	if start < 0 {
		start = 0
	}
	end := position + contextLength
	if end > len(input) {
		end = len(input)
	}

	context := input[start:end]
	pointer := strings.Repeat(" ", position-start) + "^"

	return fmt.Sprintf("%s\n%s", context, pointer)
}
