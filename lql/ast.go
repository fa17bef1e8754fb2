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

// ast.go defines the abstract syntax tree produced by the parser. Nodes are
// built once during a parse and never mutated afterwards; the tree owns its
// children exclusively.

package lql

import (
	"bytes"

	"github.com/rulego/logsql/types"
)

// ComparisonOp is a binary comparison operator.
type ComparisonOp int

const (
	Eq ComparisonOp = iota
	Neq
	Gt
	Lt
	Gte
	Lte
)

// String returns the surface syntax of the operator.
func (op ComparisonOp) String() string {
	switch op {
	case Eq:
		return "=="
	case Neq:
		return "!="
	case Gt:
		return ">"
	case Lt:
		return "<"
	case Gte:
		return ">="
	case Lte:
		return "<="
	default:
		return "?"
	}
}

// BinaryOp wraps the operator of a binary expression. Comparison is the only
// family today; arithmetic would slot in beside it.
type BinaryOp struct {
	Comparison ComparisonOp
}

// String returns the surface syntax of the operator.
func (op BinaryOp) String() string {
	return op.Comparison.String()
}

// UnaryOp is a unary operator.
type UnaryOp int

const (
	Not UnaryOp = iota
)

// String returns the surface syntax of the operator.
func (op UnaryOp) String() string {
	return "!"
}

// Expr is a parsed expression tree: a column reference, a literal value, or a
// unary/binary combination of sub-expressions.
type Expr interface {
	// Format writes the expression in expr-lang compatible syntax.
	Format(buf *bytes.Buffer)
	exprNode()
}

// ColumnExpr references a record column by name.
type ColumnExpr struct {
	Name string
}

func (e *ColumnExpr) exprNode() {}

// Format implements Expr.
func (e *ColumnExpr) Format(buf *bytes.Buffer) {
	buf.WriteString(e.Name)
}

// ValueExpr is a literal scalar value.
type ValueExpr struct {
	Value types.Value
}

func (e *ValueExpr) exprNode() {}

// Format implements Expr. String values are single-quoted and escaped.
func (e *ValueExpr) Format(buf *bytes.Buffer) {
	if e.Value.Kind != types.KindString {
		buf.WriteString(e.Value.String())
		return
	}
	buf.WriteByte('\'')
	for _, r := range e.Value.Str {
		switch r {
		case '\n':
			buf.WriteString("\\n")
		case '\r':
			buf.WriteString("\\r")
		case '\t':
			buf.WriteString("\\t")
		case '\'':
			buf.WriteString("\\'")
		case '\\':
			buf.WriteString("\\\\")
		default:
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('\'')
}

// UnaryExpr applies a unary operator to an operand.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
}

func (e *UnaryExpr) exprNode() {}

// Format implements Expr.
func (e *UnaryExpr) Format(buf *bytes.Buffer) {
	buf.WriteString(e.Op.String())
	formatOperand(buf, e.Operand)
}

// BinaryExpr combines two operands with a binary operator.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (e *BinaryExpr) exprNode() {}

// Format implements Expr.
func (e *BinaryExpr) Format(buf *bytes.Buffer) {
	formatOperand(buf, e.Left)
	buf.WriteString(" " + e.Op.String() + " ")
	formatOperand(buf, e.Right)
}

// formatOperand parenthesizes compound operands so the rendered text keeps
// the parsed structure.
func formatOperand(buf *bytes.Buffer, e Expr) {
	switch e.(type) {
	case *BinaryExpr, *UnaryExpr:
		buf.WriteByte('(')
		e.Format(buf)
		buf.WriteByte(')')
	default:
		e.Format(buf)
	}
}

// Operator is one stage of the query pipeline.
type Operator interface {
	operatorNode()
}

// InlineOperator transforms or filters the record stream without aggregating
// across records.
type InlineOperator interface {
	inlineNode()
}

// Inline adapts a positioned inline operator into a pipeline stage.
type Inline struct {
	Operator Positioned[InlineOperator]
}

func (o *Inline) operatorNode() {}

// JSONOp parses each record as a JSON document. InputColumn selects the
// column to read from; empty means the whole record.
type JSONOp struct {
	InputColumn string
}

func (o *JSONOp) inlineNode() {}

// ParseOp extracts fields with a wildcard pattern. Each * in Pattern is a
// capture position; Fields names the captures in order. Whether the * count
// matches the field count is checked by the evaluator, not here.
type ParseOp struct {
	Pattern     Keyword
	Fields      []string
	InputColumn Expr
	NoDrop      bool
}

func (o *ParseOp) inlineNode() {}

// FieldMode is the selection polarity of a fields operator.
type FieldMode int

const (
	// FieldModeOnly keeps only the listed fields.
	FieldModeOnly FieldMode = iota
	// FieldModeExcept drops the listed fields.
	FieldModeExcept
)

// FieldsOp restricts the set of columns flowing downstream.
type FieldsOp struct {
	Mode   FieldMode
	Fields []string
}

func (o *FieldsOp) inlineNode() {}

// WhereOp filters records by a condition. A nil Expr is syntactically valid;
// its semantics are left to the evaluator.
type WhereOp struct {
	Expr *Positioned[Expr]
}

func (o *WhereOp) inlineNode() {}

// LimitOp truncates the stream. Count is loosely typed here; the evaluator
// checks the value for sanity or applies a default when it is absent.
type LimitOp struct {
	Count *Positioned[float64]
}

func (o *LimitOp) inlineNode() {}

// TotalOp emits a running total of InputColumn into OutputColumn.
type TotalOp struct {
	InputColumn  Expr
	OutputColumn string
}

func (o *TotalOp) inlineNode() {}

// AggregateFunction reduces a group of records to a summary value.
type AggregateFunction interface {
	// DefaultName is the output column used when no `as` rename is given.
	DefaultName() string
	aggregateNode()
}

// CountAgg counts records.
type CountAgg struct{}

func (a *CountAgg) aggregateNode() {}

// DefaultName implements AggregateFunction.
func (a *CountAgg) DefaultName() string { return "_count" }

// SumAgg sums a column.
type SumAgg struct {
	Column Expr
}

func (a *SumAgg) aggregateNode() {}

// DefaultName implements AggregateFunction.
func (a *SumAgg) DefaultName() string { return "_sum" }

// AverageAgg averages a column.
type AverageAgg struct {
	Column Expr
}

func (a *AverageAgg) aggregateNode() {}

// DefaultName implements AggregateFunction.
func (a *AverageAgg) DefaultName() string { return "_average" }

// PercentileAgg computes a percentile of a column. Percentile is the numeric
// fraction (0.NN) and PercentileStr keeps the two digits as written so the
// default output name reproduces the user's spelling.
type PercentileAgg struct {
	Percentile    float64
	PercentileStr string
	Column        Expr
}

func (a *PercentileAgg) aggregateNode() {}

// DefaultName implements AggregateFunction.
func (a *PercentileAgg) DefaultName() string { return "p" + a.PercentileStr }

// CountDistinctAgg counts distinct values of the argument expressions.
// Columns is nil when no argument list was written.
type CountDistinctAgg struct {
	Columns *Positioned[[]Expr]
}

func (a *CountDistinctAgg) aggregateNode() {}

// DefaultName implements AggregateFunction.
func (a *CountDistinctAgg) DefaultName() string { return "_countDistinct" }

// NamedAggregate pairs an aggregate function with its output column name.
type NamedAggregate struct {
	Name string
	Func Positioned[AggregateFunction]
}

// MultiAggregateOperator evaluates one or more aggregates per group. KeyCols
// and KeyColHeaders run in parallel: the header for a key is the trimmed
// original source text of the expression, preserving the user's formatting
// for display, while the KeyCols entry is its parsed form. Empty key lists
// mean a single implicit group.
type MultiAggregateOperator struct {
	KeyCols       []Expr
	KeyColHeaders []string
	Aggregates    []NamedAggregate
}

func (o *MultiAggregateOperator) operatorNode() {}

// SortMode is a sort direction.
type SortMode int

const (
	Ascending SortMode = iota
	Descending
)

// String returns the canonical direction name.
func (m SortMode) String() string {
	if m == Descending {
		return "desc"
	}
	return "asc"
}

// SortOperator orders the stream by the named columns. An empty column list
// asks the evaluator for its implicit ordering.
type SortOperator struct {
	SortCols  []string
	Direction SortMode
}

func (o *SortOperator) operatorNode() {}

// Query is the parser's sole output artifact: the keyword search phase
// followed by the pipeline stages. It is immutable once built and owned
// entirely by the caller.
type Query struct {
	Search    []Keyword
	Operators []Operator
}
