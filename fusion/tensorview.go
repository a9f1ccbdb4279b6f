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

import (
	"fmt"

	. "github.com/gomlx/exceptions"
)

// TensorView is the scheduling handle over a Tensor: the domain through which
// the tensor is currently iterated plus the compute-at binding. Views are how
// one shapes the loop nest of the kernel: transformations (Split, Merge,
// Reorder) return new views and never change the receiver.
//
// The compute-at binding set by ComputeAt is the only mutable state of a
// view, and the only mutable state in the whole IR.
type TensorView struct {
	baseVal
	tensor *Tensor
	domain *TensorDomain

	computeAtView *TensorView
	computeAtAxis int
}

// ViewOf creates a TensorView of the tensor through its own native domain.
// It panics if the tensor has no domain.
func ViewOf(t *Tensor) *TensorView {
	if t == nil {
		Panicf("ViewOf requires a tensor, got nil")
	}
	if t.Domain() == nil {
		Panicf("ViewOf: tensor %s has no domain to view", valName(t))
	}
	return NewTensorView(t, t.Domain())
}

// NewTensorView creates a TensorView of the tensor through the given domain.
// Usually one starts from ViewOf and transforms it; use NewTensorView
// directly to view a tensor through an already transformed domain.
func NewTensorView(t *Tensor, domain *TensorDomain) *TensorView {
	if t == nil {
		Panicf("NewTensorView requires a tensor, got nil")
	}
	if domain == nil {
		Panicf("NewTensorView requires a domain, got nil")
	}
	f := validateFusionFromInputs(t, domain)
	tv := &TensorView{baseVal: newBaseVal(f, ValTypeTensorView), tensor: t, domain: domain, computeAtAxis: -1}
	tv.id = f.registerVal(tv)
	return tv
}

// Tensor being viewed.
func (tv *TensorView) Tensor() *Tensor { return tv.tensor }

// Domain through which the view iterates the tensor.
func (tv *TensorView) Domain() *TensorDomain { return tv.domain }

// Rank of the view's domain.
func (tv *TensorView) Rank() int { return tv.domain.Rank() }

// HasComputeAt returns whether ComputeAt was called on this view.
func (tv *TensorView) HasComputeAt() bool { return tv.computeAtView != nil }

// ComputeAtView returns the view within whose loop nest this view is to be
// computed, or nil if ComputeAt was never called.
func (tv *TensorView) ComputeAtView() *TensorView { return tv.computeAtView }

// ComputeAtAxis returns the position in the target view's loop nest at which
// this view is to be computed, or -1 if ComputeAt was never called.
func (tv *TensorView) ComputeAtAxis() int { return tv.computeAtAxis }

// ComputeAt binds this view to be computed within target's loop nest, inside
// its first axis loops. The position counts loops, so it ranges from 0 (fully
// outside) to target.Rank() (inside all of target's loops); negative
// positions are not accepted here.
//
// For the binding to be legal the first axis loops must mean the same thing
// for both views: axes 0 to axis-1 of both domains must match pairwise
// (IterDomain.SameAs). It panics otherwise, leaving the view unchanged.
//
// It returns the view itself, to allow chaining.
func (tv *TensorView) ComputeAt(target *TensorView, axis int) *TensorView {
	if target == nil {
		Panicf("ComputeAt requires a target view, got nil")
	}
	_ = validateFusionFromInputs(tv, target)
	if tv == target {
		Panicf("ComputeAt: cannot compute %s at itself", valName(tv))
	}
	if axis < 0 || axis > target.Rank() {
		Panicf("ComputeAt position %d out-of-bounds for target %s with rank %d, valid positions are 0 to %d",
			axis, valName(target), target.Rank(), target.Rank())
	}
	if axis > tv.Rank() {
		Panicf("ComputeAt position %d exceeds the rank %d of view %s", axis, tv.Rank(), valName(tv))
	}
	for ii := 0; ii < axis; ii++ {
		if !tv.domain.Axis(ii).SameAs(target.domain.Axis(ii)) {
			Panicf("ComputeAt: axis #%d of %s (%s) doesn't match axis #%d of target %s (%s)",
				ii, valName(tv), tv.domain.Axis(ii), ii, valName(target), target.domain.Axis(ii))
		}
	}
	tv.computeAtView = target
	tv.computeAtAxis = axis
	return tv
}

// SameAs returns whether both views iterate the same tensor (Tensor.SameAs)
// through the same domain (TensorDomain.SameAs). The compute-at binding is
// scheduling state and is not compared.
func (tv *TensorView) SameAs(other *TensorView) bool {
	if tv == nil || other == nil {
		return tv == other
	}
	return tv.tensor.SameAs(other.tensor) && tv.domain.SameAs(other.domain)
}

// String returns e.g. "View(t3) -> [i{8}, i{4}]", with the compute-at
// binding appended when set.
func (tv *TensorView) String() string {
	s := fmt.Sprintf("View(%s) -> %s", valName(tv.tensor), tv.domain)
	if tv.HasComputeAt() {
		s += fmt.Sprintf(" computeAt(%s, %d)", valName(tv.computeAtView), tv.computeAtAxis)
	}
	return s
}
