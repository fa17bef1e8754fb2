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

// QueryPosition is a byte offset into the original query string.
type QueryPosition int

// Positioned attaches the source span of a parsed value so that later
// diagnostics can point back at the query text. StartPos is the offset of the
// first significant byte of the match and EndPos is the offset just past the
// last consumed byte. StartPos == EndPos only for an empty match.
type Positioned[T any] struct {
	StartPos QueryPosition
	EndPos   QueryPosition
	Value    T
}

// withPos runs rule and wraps its result in a Positioned. Leading whitespace
// is skipped before the start offset is taken, so spans never begin on
// insignificant space. Every grammar rule that produces an AST node goes
// through this wrapper at the call site; the rules themselves do not track
// offsets.
func withPos[T any](p *Parser, pos int, rule func(int) (T, int, *SyntaxError)) (Positioned[T], int, *SyntaxError) {
	start := p.skipSpace(pos)
	value, next, err := rule(start)
	if err != nil {
		var zero Positioned[T]
		return zero, pos, err
	}
	return Positioned[T]{
		StartPos: QueryPosition(start),
		EndPos:   QueryPosition(next),
		Value:    value,
	}, next, nil
}
