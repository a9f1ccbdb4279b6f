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
)

//go:generate go tool enumer -type=ParallelType -trimprefix=ParallelType -output=gen_paralleltype_enumer.go iterdomain.go

// ParallelType annotates how the iteration over an axis is mapped to the
// hardware: serially, over GPU block (BID*) or thread (TID*) indices,
// vectorized or unrolled.
type ParallelType int

const (
	// ParallelTypeSerial is the default: a plain sequential loop.
	ParallelTypeSerial ParallelType = iota
	ParallelTypeBIDz
	ParallelTypeBIDy
	ParallelTypeBIDx
	ParallelTypeTIDz
	ParallelTypeTIDy
	ParallelTypeTIDx
	ParallelTypeVectorize
	ParallelTypeUnroll
)

// IterDomain represents the iteration over one axis of a tensor: its size,
// the ParallelType with which it is iterated and whether the axis is reduced
// over by the computation.
type IterDomain struct {
	baseVal
	size      *Int
	parallel  ParallelType
	reduction bool
}

// NewIterDomain creates an IterDomain of the given size in the size's Fusion.
// Sizes are non-negative: a constant negative size panics. Symbolic sizes are
// accepted as is.
func NewIterDomain(size *Int, parallel ParallelType, reduction bool) *IterDomain {
	if size == nil {
		exceptions.Panicf("NewIterDomain requires a size value, got nil")
	}
	f := size.Fusion()
	if size.IsConst() && size.Value() < 0 {
		exceptions.Panicf("NewIterDomain requires a non-negative size, got %d", size.Value())
	}
	d := &IterDomain{baseVal: newBaseVal(f, ValTypeIterDomain), size: size, parallel: parallel, reduction: reduction}
	d.id = f.registerVal(d)
	return d
}

// Size of the iteration: the number of elements along the axis.
func (d *IterDomain) Size() *Int { return d.size }

// ParallelType returns how the iteration over this axis is mapped to the
// hardware.
func (d *IterDomain) ParallelType() ParallelType { return d.parallel }

// IsReduction returns whether this axis is reduced over by the computation,
// and hence absent from its output.
func (d *IterDomain) IsReduction() bool { return d.reduction }

// SameAs returns whether both axes describe the same iteration: same size
// (Int.SameAs), same parallel type and same reduction flag.
func (d *IterDomain) SameAs(other *IterDomain) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.size.SameAs(other.size) &&
		d.parallel == other.parallel &&
		d.reduction == other.reduction
}

// String returns e.g. "i{8}" for an iteration axis of size 8, "r{i3}" for a
// reduction axis of symbolic size, with the parallel type appended when not
// serial, as in "i{128}@TIDx".
func (d *IterDomain) String() string {
	if d == nil {
		return "nil"
	}
	prefix := "i"
	if d.reduction {
		prefix = "r"
	}
	s := fmt.Sprintf("%s{%s}", prefix, d.size)
	if d.parallel != ParallelTypeSerial {
		s += "@" + d.parallel.String()
	}
	return s
}
