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
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"slices"
)

// TensorContiguity describes which axes of a tensor are contiguous in
// memory with the axis that follows them. It is plain metadata carried by a
// Tensor, not a value node.
type TensorContiguity struct {
	contiguity []bool
}

// NewTensorContiguity creates a TensorContiguity with the given per-axis
// information. The slice is copied.
func NewTensorContiguity(axesContiguity []bool) *TensorContiguity {
	return &TensorContiguity{contiguity: slices.Clone(axesContiguity)}
}

// Rank is the number of axes described.
func (tc *TensorContiguity) Rank() int { return len(tc.contiguity) }

// IsContiguousAxis returns whether the axis at the given position is
// contiguous. Negative positions are taken from the end.
//
// It panics if the position, after handling negatives, is out-of-bounds.
func (tc *TensorContiguity) IsContiguousAxis(axis int) bool {
	adjusted := axis
	if adjusted < 0 {
		adjusted += len(tc.contiguity)
	}
	if adjusted < 0 || adjusted >= len(tc.contiguity) {
		exceptions.Panicf("invalid axis %d for TensorContiguity with rank %d", axis, len(tc.contiguity))
	}
	return tc.contiguity[adjusted]
}

// IsFullyContiguous returns whether every axis is contiguous.
func (tc *TensorContiguity) IsFullyContiguous() bool {
	for _, contiguous := range tc.contiguity {
		if !contiguous {
			return false
		}
	}
	return true
}

// Tensor is a value node representing one tensor of the kernel: its element
// data type, the native domain it was created with and, optionally, memory
// contiguity information.
//
// Scheduling doesn't happen on the Tensor itself: create a TensorView of it
// (see ViewOf) and transform that.
type Tensor struct {
	baseVal
	dtype      dtypes.DType
	domain     *TensorDomain
	contiguity *TensorContiguity
}

// NewTensor creates a Tensor with the given data type and native domain, and
// no contiguity information. The domain may be nil for tensors whose axes are
// not (yet) relevant.
func NewTensor(f *Fusion, dtype dtypes.DType, domain *TensorDomain) *Tensor {
	return NewTensorWithContiguity(f, dtype, domain, nil)
}

// NewTensorWithContiguity is like NewTensor, also attaching memory contiguity
// information. If both domain and contiguity are given, their ranks must
// match.
func NewTensorWithContiguity(f *Fusion, dtype dtypes.DType, domain *TensorDomain, contiguity *TensorContiguity) *Tensor {
	f.AssertValid()
	if dtype == dtypes.InvalidDType {
		exceptions.Panicf("NewTensor requires a valid data type")
	}
	if domain != nil && domain.Fusion() != f {
		exceptions.Panicf("NewTensor: domain comes from a different Fusion")
	}
	if domain != nil && contiguity != nil && domain.Rank() != contiguity.Rank() {
		exceptions.Panicf("NewTensor: domain rank %d and contiguity rank %d don't match", domain.Rank(), contiguity.Rank())
	}
	t := &Tensor{baseVal: newBaseVal(f, ValTypeTensor), dtype: dtype, domain: domain, contiguity: contiguity}
	t.id = f.registerVal(t)
	return t
}

// MakeDummyTensor creates a Float32 tensor of the given rank, each axis with
// a fresh symbolic size, iterated serially and with no reductions. Handy to
// bootstrap tests and examples.
func MakeDummyTensor(f *Fusion, ndims int) *Tensor {
	f.AssertValid()
	if ndims < 0 {
		exceptions.Panicf("MakeDummyTensor requires a non-negative number of dimensions, got %d", ndims)
	}
	axes := make([]*IterDomain, ndims)
	for ii := range axes {
		axes[ii] = NewIterDomain(NewSymbolicInt(f), ParallelTypeSerial, false)
	}
	return NewTensor(f, dtypes.Float32, NewTensorDomain(f, axes...))
}

// DType of the tensor elements.
func (t *Tensor) DType() dtypes.DType { return t.dtype }

// Domain is the native domain the tensor was created with, before any
// transformation. It may be nil.
func (t *Tensor) Domain() *TensorDomain { return t.domain }

// HasContiguityInfo returns whether the tensor carries memory contiguity
// information.
func (t *Tensor) HasContiguityInfo() bool { return t.contiguity != nil }

// ContiguityInfo returns the tensor's memory contiguity information, or nil
// if it carries none.
func (t *Tensor) ContiguityInfo() *TensorContiguity { return t.contiguity }

// SameAs returns whether both tensors have the same data type and the same
// native domain (TensorDomain.SameAs).
func (t *Tensor) SameAs(other *Tensor) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.dtype != other.dtype {
		return false
	}
	if t.domain == nil || other.domain == nil {
		return t.domain == other.domain
	}
	return t.domain.SameAs(other.domain)
}

// String returns e.g. "(Float32)[i{8}, i{4}]", or only "(Float32)" for a
// tensor without a domain.
func (t *Tensor) String() string {
	if t.domain == nil {
		return fmt.Sprintf("(%s)", t.dtype)
	}
	return fmt.Sprintf("(%s)%s", t.dtype, t.domain)
}
