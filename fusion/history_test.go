package fusion_test

import (
	"testing"

	. "github.com/gomlx/fuser/fusion"
	"github.com/gomlx/fuser/fusion/fusiontest"
	"github.com/gomlx/fuser/types/xslices"
	"github.com/stretchr/testify/require"
)

func TestTransformHistory(t *testing.T) {
	f := New()
	tv := fusiontest.ConcreteView(f, 8, 4)
	require.Empty(t, TransformHistory(tv.Domain()), "a native domain has no history")
	require.Same(t, tv.Domain(), RootDomain(tv.Domain()), "a native domain is its own root")

	final := tv.Split(0, 2).Merge(1).Reorder(map[int]int{0: 1, 1: 0})
	history := TransformHistory(final.Domain())
	require.Len(t, history, 3)
	split := history[0].(*Split)
	merge := history[1].(*Merge)
	reorder := xslices.Last(history).(*Reorder)

	// Each record's output is the next record's input, from the root domain to
	// the final one.
	require.Same(t, tv.Domain(), split.In())
	require.Same(t, split.Out(), merge.In())
	require.Same(t, merge.Out(), reorder.In())
	require.Same(t, final.Domain(), reorder.Out())
	require.Same(t, tv.Domain(), RootDomain(final.Domain()))

	// Intermediate domains see the prefix of the same history.
	fusiontest.RequireHistoryTypes(t, merge.Out(), ExprTypeSplit, ExprTypeMerge)
	fusiontest.RequireHistoryTypes(t, split.Out(), ExprTypeSplit)

	require.Nil(t, TransformHistory(nil))
	require.Nil(t, RootDomain(nil))
}

func TestTransformHistoryIsPerDomain(t *testing.T) {
	f := New()
	tv := fusiontest.ConcreteView(f, 8, 4)

	// Two independent schedules branching off the same native domain.
	left := tv.Split(0, 2)
	right := tv.Split(1, 2)
	fusiontest.RequireHistoryTypes(t, left.Domain(), ExprTypeSplit)
	fusiontest.RequireHistoryTypes(t, right.Domain(), ExprTypeSplit)
	require.NotSame(t, f.Origin(left.Domain()), f.Origin(right.Domain()))
	require.Same(t, RootDomain(left.Domain()), RootDomain(right.Domain()))
}

func TestSizeOrigins(t *testing.T) {
	f := New()
	tv := fusiontest.SymbolicView(f, 1)
	split := tv.Split(0, 8)

	// The domain chain and the scalar chain are recorded independently: the
	// outer axis size originates from a ceil-division, not from the Split.
	outerSize := split.Domain().Axis(0).Size()
	binOp, ok := f.Origin(outerSize).(*BinaryOp)
	require.True(t, ok)
	require.Equal(t, BinaryOpTypeCeilDiv, binOp.Op())
	require.Same(t, tv.Domain().Axis(0).Size(), binOp.Lhs())
	require.Equal(t, 8, binOp.Rhs().Value())
	fusiontest.RequireHistoryTypes(t, split.Domain(), ExprTypeSplit)
}
