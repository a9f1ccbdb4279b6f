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

// Package fusion implements the intermediate representation (IR) used to
// describe and schedule fused tensor kernels.
//
// A Fusion owns an append-only graph of value nodes (Val) connected by
// expression nodes (Expr). Values are never modified after creation:
// transformations create new values and record the expression that relates
// the new value to the old one, so the full history of every domain can be
// replayed later (see TransformHistory and RootDomain).
//
// The main concepts:
//
//   - Int: a scalar integer, either a compile-time constant or symbolic.
//   - IterDomain: the iteration over one axis of a tensor: its size (an Int),
//     how it is parallelized (ParallelType) and whether it is a reduction axis.
//   - TensorDomain: the ordered list of IterDomain axes of a tensor.
//   - Tensor: a tensor with a data type (dtypes.DType), its native domain and
//     optional memory contiguity information (TensorContiguity).
//   - TensorView: a scheduling handle on a Tensor: a (possibly transformed)
//     domain plus the compute-at binding. TensorView.Split, TensorView.Merge
//     and TensorView.Reorder return new views and leave the receiver
//     untouched, while TensorView.ComputeAt binds where along another view's
//     loop nest this view is to be computed.
//
// Functions in this package panic with informative messages (see
// github.com/gomlx/exceptions) when given invalid inputs, like out-of-bounds
// axes or transformations that are not legal. Use exceptions.TryCatch to
// convert those panics to errors where needed.
package fusion

import (
	"fmt"
	"github.com/gomlx/exceptions"
	"slices"
	"strings"
)

// ValId is a unique Val id within a Fusion. It is given by the order of
// creation.
type ValId int

// InvalidValId indicates a value not (yet) registered in a Fusion.
const InvalidValId = ValId(-1)

// ExprId is a unique Expr id within a Fusion. It is given by the order of
// creation.
type ExprId int

// InvalidExprId indicates an expression not (yet) registered in a Fusion.
const InvalidExprId = ExprId(-1)

// Fusion is the container that owns every value (Val) and expression (Expr)
// of one kernel fusion. Nodes are only appended, never removed, and keep the
// id order in which they were created.
//
// A Fusion is not safe for concurrent use: build it from one goroutine.
type Fusion struct {
	vals  []Val
	exprs []Expr

	// origin maps each value to the expression that produced it. Values
	// created directly (constants, inputs, native domains) have no origin.
	origin map[Val]Expr
}

// New creates an empty Fusion.
func New() *Fusion {
	return &Fusion{origin: make(map[Val]Expr)}
}

// AssertValid panics if the Fusion is nil.
func (f *Fusion) AssertValid() {
	if f == nil {
		exceptions.Panicf("the Fusion is nil")
	}
}

// registerVal in the fusion, returning a new unique id within the Fusion.
func (f *Fusion) registerVal(v Val) (id ValId) {
	id = ValId(len(f.vals))
	f.vals = append(f.vals, v)
	return
}

// registerExpr in the fusion, returning a new unique id within the Fusion.
// It also records e as the origin of each of its outputs. If an output already
// has a producer it panics leaving the Fusion unchanged.
func (f *Fusion) registerExpr(e Expr) (id ExprId) {
	outputs := e.Outputs()
	for _, output := range outputs {
		if prev, found := f.origin[output]; found {
			exceptions.Panicf("value %s already has origin %q, cannot also register %q as its producer",
				valName(output), prev, e)
		}
	}
	id = ExprId(len(f.exprs))
	f.exprs = append(f.exprs, e)
	for _, output := range outputs {
		f.origin[output] = e
	}
	return
}

// Origin returns the expression that produced v, or nil if v was created
// directly and has no recorded producer.
func (f *Fusion) Origin(v Val) Expr {
	f.AssertValid()
	return f.origin[v]
}

// NumVals returns the number of values registered in the Fusion.
func (f *Fusion) NumVals() int {
	if f == nil {
		return 0
	}
	return len(f.vals)
}

// NumExprs returns the number of expressions registered in the Fusion.
func (f *Fusion) NumExprs() int {
	if f == nil {
		return 0
	}
	return len(f.exprs)
}

// ValById returns the value with the given id. It panics if id is not a valid
// id of this Fusion.
func (f *Fusion) ValById(id ValId) Val {
	f.AssertValid()
	if id < 0 || int(id) >= len(f.vals) {
		exceptions.Panicf("invalid Fusion.ValById(id=%d): there are only %d values", id, len(f.vals))
	}
	return f.vals[id]
}

// ExprById returns the expression with the given id. It panics if id is not a
// valid id of this Fusion.
func (f *Fusion) ExprById(id ExprId) Expr {
	f.AssertValid()
	if id < 0 || int(id) >= len(f.exprs) {
		exceptions.Panicf("invalid Fusion.ExprById(id=%d): there are only %d expressions", id, len(f.exprs))
	}
	return f.exprs[id]
}

// Vals returns a copy of the list of values, in creation order.
func (f *Fusion) Vals() []Val {
	f.AssertValid()
	return slices.Clone(f.vals)
}

// Exprs returns a copy of the list of expressions, in creation order.
func (f *Fusion) Exprs() []Expr {
	f.AssertValid()
	return slices.Clone(f.exprs)
}

// String converts the Fusion to a multi-line listing of its values and
// expressions, in creation order.
func (f *Fusion) String() string {
	if f == nil {
		return "Fusion(nil)"
	}
	parts := []string{fmt.Sprintf("Fusion: %d values, %d expressions", len(f.vals), len(f.exprs))}
	if len(f.vals) > 0 {
		parts = append(parts, "Values:")
		for ii, v := range f.vals {
			parts = append(parts, fmt.Sprintf("#%d\t%s\t%s", ii, v.Type(), v))
		}
	}
	if len(f.exprs) > 0 {
		parts = append(parts, "Expressions:")
		for ii, e := range f.exprs {
			parts = append(parts, fmt.Sprintf("#%d\t%s", ii, e))
		}
	}
	return strings.Join(parts, "\n")
}

// validateFusionFromInputs returns the single Fusion shared by all the given
// values. It panics if any value is nil or if they come from different
// Fusion objects.
func validateFusionFromInputs(inputs ...Val) *Fusion {
	var f *Fusion
	for ii, input := range inputs {
		if input == nil {
			exceptions.Panicf("nil value given as input #%d", ii)
		}
		if f == nil {
			f = input.Fusion()
		} else if input.Fusion() != f {
			exceptions.Panicf("values given as inputs come from different Fusion objects: input #%d doesn't match input #0", ii)
		}
	}
	f.AssertValid()
	return f
}
