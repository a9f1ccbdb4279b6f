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
	"github.com/gomlx/exceptions"
	"github.com/gomlx/fuser/types/xslices"
	"slices"
	"strings"
)

// TensorDomain is the ordered list of IterDomain axes over which a tensor is
// iterated. Transformations (Split, Merge, Reorder) never change a domain in
// place: they create a new domain and record the expression relating it to
// the old one.
type TensorDomain struct {
	baseVal
	axes []*IterDomain
}

// NewTensorDomain creates a TensorDomain with the given axes, in order. The
// axes are copied.
func NewTensorDomain(f *Fusion, axes ...*IterDomain) *TensorDomain {
	f.AssertValid()
	for ii, axis := range axes {
		if axis == nil {
			exceptions.Panicf("NewTensorDomain: axis #%d is nil", ii)
		}
		if axis.Fusion() != f {
			exceptions.Panicf("NewTensorDomain: axis #%d comes from a different Fusion", ii)
		}
	}
	td := &TensorDomain{baseVal: newBaseVal(f, ValTypeTensorDomain), axes: slices.Clone(axes)}
	td.id = f.registerVal(td)
	return td
}

// Rank is the number of axes of the domain.
func (td *TensorDomain) Rank() int { return len(td.axes) }

// Axes returns a copy of the list of axes, in order.
func (td *TensorDomain) Axes() []*IterDomain { return slices.Clone(td.axes) }

// Axis returns the axis at the given position. Negative positions are taken
// from the end: Axis(-1) is the last axis.
//
// It panics if the position, after handling negatives, is out-of-bounds.
func (td *TensorDomain) Axis(pos int) *IterDomain {
	return td.axes[td.adjustAxisToRank(pos)]
}

// adjustAxisToRank converts a possibly negative axis position to its
// non-negative form, panicking if it falls outside the domain's rank.
func (td *TensorDomain) adjustAxisToRank(axis int) int {
	adjusted := axis
	if adjusted < 0 {
		adjusted += td.Rank()
	}
	if adjusted < 0 || adjusted >= td.Rank() {
		exceptions.Panicf("invalid axis %d for domain %s with rank %d", axis, td, td.Rank())
	}
	return adjusted
}

// SameAs returns whether both domains have the same rank and pairwise-same
// axes (IterDomain.SameAs).
func (td *TensorDomain) SameAs(other *TensorDomain) bool {
	if td == nil || other == nil {
		return td == other
	}
	if td.Rank() != other.Rank() {
		return false
	}
	for ii, axis := range td.axes {
		if !axis.SameAs(other.axes[ii]) {
			return false
		}
	}
	return true
}

// String lists the axes, e.g. "[i{8}, r{4}@TIDx]".
func (td *TensorDomain) String() string {
	if td == nil {
		return "nil"
	}
	parts := xslices.Map(td.axes, func(axis *IterDomain) string { return axis.String() })
	return "[" + strings.Join(parts, ", ") + "]"
}
