package fusion

import (
	"fmt"
	"slices"

	. "github.com/gomlx/exceptions"

	"github.com/gomlx/fuser/types"
)

// Split is the record of splitting one axis of a domain in two: an outer axis
// of size ceil(size/factor) followed by an inner axis of size factor.
type Split struct {
	baseExpr
	out, in *TensorDomain
	axis    int
	factor  *Int
}

func newSplit(out, in *TensorDomain, axis int, factor *Int) *Split {
	s := &Split{baseExpr: newBaseExpr(out.Fusion(), ExprTypeSplit), out: out, in: in, axis: axis, factor: factor}
	s.id = s.fusion.registerExpr(s)
	return s
}

// Out is the domain produced by the split.
func (s *Split) Out() *TensorDomain { return s.out }

// In is the domain the split was applied to.
func (s *Split) In() *TensorDomain { return s.in }

// Axis that was split, as a non-negative position in In.
func (s *Split) Axis() int { return s.axis }

// Factor is the size of the inner axis created by the split.
func (s *Split) Factor() *Int { return s.factor }

// Inputs are the domain split and the split factor.
func (s *Split) Inputs() []Val { return []Val{s.in, s.factor} }

// Outputs is the domain produced.
func (s *Split) Outputs() []Val { return []Val{s.out} }

// SameAs returns whether both records describe the same split of equivalent
// domains.
func (s *Split) SameAs(other *Split) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.out.SameAs(other.out) &&
		s.in.SameAs(other.in) &&
		s.axis == other.axis &&
		s.factor.SameAs(other.factor)
}

// String returns e.g. "d7 = Split(d3, axis=2, factor=4)".
func (s *Split) String() string {
	return fmt.Sprintf("%s = Split(%s, axis=%d, factor=%s)", valName(s.out), valName(s.in), s.axis, s.factor)
}

// Merge is the record of merging one axis of a domain with the axis that
// follows it into a single axis iterating over both.
type Merge struct {
	baseExpr
	out, in *TensorDomain
	axis    int
}

func newMerge(out, in *TensorDomain, axis int) *Merge {
	m := &Merge{baseExpr: newBaseExpr(out.Fusion(), ExprTypeMerge), out: out, in: in, axis: axis}
	m.id = m.fusion.registerExpr(m)
	return m
}

// Out is the domain produced by the merge.
func (m *Merge) Out() *TensorDomain { return m.out }

// In is the domain the merge was applied to.
func (m *Merge) In() *TensorDomain { return m.in }

// Axis is the first of the two merged axes, as a non-negative position in In.
func (m *Merge) Axis() int { return m.axis }

// Inputs is the domain merged.
func (m *Merge) Inputs() []Val { return []Val{m.in} }

// Outputs is the domain produced.
func (m *Merge) Outputs() []Val { return []Val{m.out} }

// SameAs returns whether both records describe the same merge of equivalent
// domains.
func (m *Merge) SameAs(other *Merge) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.out.SameAs(other.out) &&
		m.in.SameAs(other.in) &&
		m.axis == other.axis
}

// String returns e.g. "d9 = Merge(d7, axis=1)".
func (m *Merge) String() string {
	return fmt.Sprintf("%s = Merge(%s, axis=%d)", valName(m.out), valName(m.in), m.axis)
}

// Reorder is the record of permuting the axes of a domain.
type Reorder struct {
	baseExpr
	out, in  *TensorDomain
	pos2axis []int
}

func newReorder(out, in *TensorDomain, pos2axis []int) *Reorder {
	r := &Reorder{baseExpr: newBaseExpr(out.Fusion(), ExprTypeReorder), out: out, in: in, pos2axis: pos2axis}
	r.id = r.fusion.registerExpr(r)
	return r
}

// Out is the domain produced by the reorder.
func (r *Reorder) Out() *TensorDomain { return r.out }

// In is the domain the reorder was applied to.
func (r *Reorder) In() *TensorDomain { return r.in }

// Pos2Axis returns a copy of the applied permutation: Pos2Axis()[newPos] is
// the position in In of the axis now at newPos.
func (r *Reorder) Pos2Axis() []int { return slices.Clone(r.pos2axis) }

// Inputs is the domain reordered.
func (r *Reorder) Inputs() []Val { return []Val{r.in} }

// Outputs is the domain produced.
func (r *Reorder) Outputs() []Val { return []Val{r.out} }

// SameAs returns whether both records describe the same permutation of
// equivalent domains.
func (r *Reorder) SameAs(other *Reorder) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.out.SameAs(other.out) &&
		r.in.SameAs(other.in) &&
		slices.Equal(r.pos2axis, other.pos2axis)
}

// String returns e.g. "d11 = Reorder(d9, pos2axis=[2 1 0])".
func (r *Reorder) String() string {
	return fmt.Sprintf("%s = Reorder(%s, pos2axis=%v)", valName(r.out), valName(r.in), r.pos2axis)
}

// Split the axis of the view in two: an outer axis of size ceil(size/factor)
// followed by an inner axis of size factor, both inheriting the parallel type
// and reduction flag of the original axis. The remaining axes are unchanged,
// so the resulting view has one more axis than the receiver.
//
// The axis may be negative, counting from the end. It panics if the axis is
// out-of-bounds or if factor is not positive; nothing is recorded in that
// case.
//
// It returns a new view, the receiver is unchanged.
func (tv *TensorView) Split(axis, factor int) *TensorView {
	return NewTensorView(tv.tensor, splitDomain(tv.domain, axis, factor))
}

// Merge the axis of the view with the axis that follows it, resulting in a
// single axis iterating over the product of both sizes. The two axes must
// match in reduction flag and parallel type. The resulting view has one axis
// less than the receiver.
//
// The axis may be negative, counting from the end. It panics if the axis is
// out-of-bounds, if it is the last axis (there is nothing following to merge
// with) or if the axes' annotations don't match; nothing is recorded in that
// case.
//
// It returns a new view, the receiver is unchanged.
func (tv *TensorView) Merge(axis int) *TensorView {
	return NewTensorView(tv.tensor, mergeDomain(tv.domain, axis))
}

// Reorder the axes of the view: pos2axis maps each new position to the axis
// currently there, so pos2axis = {0: 2, 1: 1, 2: 0} reverses a rank-3 view.
// Both positions and axes may be negative, counting from the end.
//
// The mapping must be a full permutation: one entry per axis, every axis
// appearing exactly once. It panics otherwise, and nothing is recorded in
// that case.
//
// It returns a new view, the receiver is unchanged.
func (tv *TensorView) Reorder(pos2axis map[int]int) *TensorView {
	return NewTensorView(tv.tensor, reorderDomain(tv.domain, pos2axis))
}

// Split creates a view of the tensor's native domain and splits it.
// Equivalent to ViewOf(t).Split(axis, factor).
func (t *Tensor) Split(axis, factor int) *TensorView {
	return ViewOf(t).Split(axis, factor)
}

// Merge creates a view of the tensor's native domain and merges the given
// axis with the following one. Equivalent to ViewOf(t).Merge(axis).
func (t *Tensor) Merge(axis int) *TensorView {
	return ViewOf(t).Merge(axis)
}

// Reorder creates a view of the tensor's native domain and permutes its axes.
// Equivalent to ViewOf(t).Reorder(pos2axis).
func (t *Tensor) Reorder(pos2axis map[int]int) *TensorView {
	return ViewOf(t).Reorder(pos2axis)
}

// splitDomain validates and applies the split, recording it in the domain's
// Fusion. All validation happens before anything is created.
func splitDomain(td *TensorDomain, axis, factor int) *TensorDomain {
	f := td.Fusion()
	axis = td.adjustAxisToRank(axis)
	if factor <= 0 {
		Panicf("Split factor must be positive, got %d", factor)
	}
	splitAxis := td.axes[axis]
	factorVal := NewInt(f, factor)
	outer := NewIterDomain(CeilDiv(splitAxis.Size(), factorVal), splitAxis.ParallelType(), splitAxis.IsReduction())
	inner := NewIterDomain(factorVal, splitAxis.ParallelType(), splitAxis.IsReduction())
	newAxes := make([]*IterDomain, 0, td.Rank()+1)
	newAxes = append(newAxes, td.axes[:axis]...)
	newAxes = append(newAxes, outer, inner)
	newAxes = append(newAxes, td.axes[axis+1:]...)
	out := NewTensorDomain(f, newAxes...)
	newSplit(out, td, axis, factorVal)
	return out
}

// mergeDomain validates and applies the merge, recording it in the domain's
// Fusion. All validation happens before anything is created.
func mergeDomain(td *TensorDomain, axis int) *TensorDomain {
	f := td.Fusion()
	axis = td.adjustAxisToRank(axis)
	if axis+1 >= td.Rank() {
		Panicf("Merge of axis %d of domain %s: it is the last axis, there is no following axis to merge with", axis, td)
	}
	first, second := td.axes[axis], td.axes[axis+1]
	if first.IsReduction() != second.IsReduction() {
		Panicf("Merge of axes %d and %d of domain %s: reduction flags don't match (%v and %v)",
			axis, axis+1, td, first.IsReduction(), second.IsReduction())
	}
	if first.ParallelType() != second.ParallelType() {
		Panicf("Merge of axes %d and %d of domain %s: parallel types don't match (%s and %s)",
			axis, axis+1, td, first.ParallelType(), second.ParallelType())
	}
	merged := NewIterDomain(Mul(first.Size(), second.Size()), first.ParallelType(), first.IsReduction())
	newAxes := make([]*IterDomain, 0, td.Rank()-1)
	newAxes = append(newAxes, td.axes[:axis]...)
	newAxes = append(newAxes, merged)
	newAxes = append(newAxes, td.axes[axis+2:]...)
	out := NewTensorDomain(f, newAxes...)
	newMerge(out, td, axis)
	return out
}

// reorderDomain validates and applies the permutation, recording it in the
// domain's Fusion. All validation happens before anything is created.
func reorderDomain(td *TensorDomain, pos2axis map[int]int) *TensorDomain {
	f := td.Fusion()
	rank := td.Rank()
	if len(pos2axis) != rank {
		Panicf("Reorder of domain %s requires one entry per axis, got %d entries for rank %d", td, len(pos2axis), rank)
	}
	perm := make([]int, rank)
	seenPositions := types.MakeSet[int](rank)
	seenAxes := types.MakeSet[int](rank)
	for pos, axis := range pos2axis {
		adjustedPos := pos
		if adjustedPos < 0 {
			adjustedPos += rank
		}
		if adjustedPos < 0 || adjustedPos >= rank {
			Panicf("Reorder of domain %s: new position %d out-of-bounds for rank %d", td, pos, rank)
		}
		adjustedAxis := axis
		if adjustedAxis < 0 {
			adjustedAxis += rank
		}
		if adjustedAxis < 0 || adjustedAxis >= rank {
			Panicf("Reorder of domain %s: axis %d out-of-bounds for rank %d", td, axis, rank)
		}
		if seenPositions.Has(adjustedPos) {
			Panicf("Reorder of domain %s: new position %d given more than once", td, adjustedPos)
		}
		if seenAxes.Has(adjustedAxis) {
			Panicf("Reorder of domain %s: axis %d given more than once", td, adjustedAxis)
		}
		seenPositions.Insert(adjustedPos)
		seenAxes.Insert(adjustedAxis)
		perm[adjustedPos] = adjustedAxis
	}
	newAxes := make([]*IterDomain, rank)
	for pos, axis := range perm {
		newAxes[pos] = td.axes[axis]
	}
	out := NewTensorDomain(f, newAxes...)
	newReorder(out, td, perm)
	return out
}
