/*
 *	Copyright 2025 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

package fusion

//go:generate go tool enumer -type=ExprType -trimprefix=ExprType -output=gen_exprtype_enumer.go expr.go

// ExprType identifies the concrete kind of an Expr node.
type ExprType int

const (
	ExprTypeInvalid ExprType = iota
	ExprTypeBinaryOp
	ExprTypeSplit
	ExprTypeMerge
	ExprTypeReorder
)

// Expr is an expression node in a Fusion: an immutable record connecting the
// values it consumed (Inputs) to the values it produced (Outputs). It is
// implemented by *BinaryOp, *Split, *Merge and *Reorder.
//
// Registering an expression makes it the origin of each of its outputs, see
// Fusion.Origin.
type Expr interface {
	// Fusion that owns this expression.
	Fusion() *Fusion

	// Id of this expression within its Fusion, given by creation order.
	Id() ExprId

	// Type identifies the concrete kind of this expression.
	Type() ExprType

	// Inputs are the values consumed by the expression.
	Inputs() []Val

	// Outputs are the values produced by the expression.
	Outputs() []Val

	// String returns a compact human-readable description of the expression.
	String() string
}

// baseExpr holds the part common to every Expr implementation, which embed it.
type baseExpr struct {
	fusion *Fusion
	id     ExprId
	etype  ExprType
}

// newBaseExpr initializes the common part of an expression being created in
// the Fusion. The id is only assigned when the expression is registered.
func newBaseExpr(f *Fusion, etype ExprType) baseExpr {
	f.AssertValid()
	return baseExpr{fusion: f, id: InvalidExprId, etype: etype}
}

// Fusion that owns this expression.
func (e *baseExpr) Fusion() *Fusion { return e.fusion }

// Id of this expression within its Fusion.
func (e *baseExpr) Id() ExprId { return e.id }

// Type identifies the concrete kind of this expression.
func (e *baseExpr) Type() ExprType { return e.etype }
