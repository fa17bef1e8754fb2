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

// Package types holds the scalar value model shared between the query parser
// and the downstream evaluator. A Value is the leaf of parsed expressions;
// typing is loose on purpose and any semantic checks happen at evaluation.
package types

import (
	"strconv"

	"github.com/spf13/cast"
)

// Kind discriminates the runtime type of a Value.
type Kind int

const (
	// KindInt is a 64-bit signed integer value.
	KindInt Kind = iota
	// KindFloat is a 64-bit floating point value.
	KindFloat
	// KindString is a raw string value.
	KindString
	// KindBool is a boolean value.
	KindBool
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a scalar query value. Exactly one of the payload fields is
// meaningful, selected by Kind. Values are immutable and compared by value.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Str   string
	Bool  bool
}

// IntValue creates an integer Value.
func IntValue(v int64) Value {
	return Value{Kind: KindInt, Int: v}
}

// FloatValue creates a floating point Value.
func FloatValue(v float64) Value {
	return Value{Kind: KindFloat, Float: v}
}

// StringValue creates a string Value.
func StringValue(v string) Value {
	return Value{Kind: KindString, Str: v}
}

// BoolValue creates a boolean Value.
func BoolValue(v bool) Value {
	return Value{Kind: KindBool, Bool: v}
}

// FromString converts raw query text into the most specific Value it can
// represent: integer, then float, then boolean, falling back to string.
func FromString(s string) Value {
	if i, err := cast.ToInt64E(s); err == nil {
		return IntValue(i)
	}
	if f, err := cast.ToFloat64E(s); err == nil {
		return FloatValue(f)
	}
	if b, err := cast.ToBoolE(s); err == nil {
		return BoolValue(b)
	}
	return StringValue(s)
}

// IsNumeric reports whether the value carries an int or float payload.
func (v Value) IsNumeric() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

// AsFloat coerces the value to a float64. String and bool values go through
// the usual loose conversion rules; a non-convertible string is an error.
func (v Value) AsFloat() (float64, error) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), nil
	case KindFloat:
		return v.Float, nil
	case KindBool:
		return cast.ToFloat64E(v.Bool)
	default:
		return cast.ToFloat64E(v.Str)
	}
}

// String renders the value as plain text, without quoting.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}
