package fusion_test

import (
	"testing"

	. "github.com/gomlx/fuser/fusion"
	"github.com/gomlx/fuser/fusion/fusiontest"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/require"
)

var (
	// Aliases:
	F32 = dtypes.Float32
)

func TestViewOf(t *testing.T) {
	f := New()
	tensor := MakeDummyTensor(f, 2)
	tv := ViewOf(tensor)
	require.Equal(t, ValTypeTensorView, tv.Type())
	require.Same(t, tensor, tv.Tensor())
	require.Same(t, tensor.Domain(), tv.Domain())
	require.Equal(t, 2, tv.Rank())
	require.False(t, tv.HasComputeAt())
	require.Nil(t, tv.ComputeAtView())
	require.Equal(t, -1, tv.ComputeAtAxis())

	require.Panics(t, func() { ViewOf(nil) })
	noDomain := NewTensor(f, F32, nil)
	require.Panics(t, func() { ViewOf(noDomain) }, "a view needs a domain to iterate")
}

func TestNewTensorView(t *testing.T) {
	f := New()
	tensor := MakeDummyTensor(f, 2)
	transformed := ViewOf(tensor).Split(0, 2)
	tv := NewTensorView(tensor, transformed.Domain())
	require.Same(t, tensor, tv.Tensor())
	require.Same(t, transformed.Domain(), tv.Domain())

	require.Panics(t, func() { NewTensorView(nil, tensor.Domain()) })
	require.Panics(t, func() { NewTensorView(tensor, nil) })
	foreign := MakeDummyTensor(New(), 2)
	require.Panics(t, func() { NewTensorView(foreign, tensor.Domain()) }, "tensor and domain from different Fusion objects")
}

func TestTensorViewSameAs(t *testing.T) {
	f := New()
	tv1 := fusiontest.ConcreteView(f, 8, 4)
	tv2 := fusiontest.ConcreteView(f, 8, 4)
	require.True(t, tv1.SameAs(tv2), "same dtype, equivalent domains")
	require.False(t, tv1.SameAs(fusiontest.ConcreteView(f, 8, 5)))
	require.False(t, tv1.Split(0, 2).SameAs(tv1))

	// The compute-at binding is scheduling state, not part of the comparison.
	tv1.ComputeAt(tv2, 1)
	require.True(t, tv1.SameAs(tv2))
}

func TestComputeAt(t *testing.T) {
	f := New()
	producer := fusiontest.ConcreteView(f, 8, 16)
	consumer := fusiontest.ConcreteView(f, 8, 16)

	got := producer.ComputeAt(consumer, 1)
	require.Same(t, producer, got, "ComputeAt returns the receiver, for chaining")
	require.True(t, producer.HasComputeAt())
	require.Same(t, consumer, producer.ComputeAtView())
	require.Equal(t, 1, producer.ComputeAtAxis())

	// Position 0 (fully outside) and target.Rank() (fully inside) are both valid.
	fusiontest.ConcreteView(f, 8, 16).ComputeAt(consumer, 0)
	fusiontest.ConcreteView(f, 8, 16).ComputeAt(consumer, 2)
}

func TestComputeAtAfterSplit(t *testing.T) {
	f := New()
	tv := ViewOf(MakeDummyTensor(f, 2))
	split := tv.Split(1, 4)

	// Axis #0 is shared between the views, so positions 0 and 1 are legal.
	split.ComputeAt(tv, 1)
	require.Same(t, tv, split.ComputeAtView())
	require.Equal(t, 1, split.ComputeAtAxis())

	// Axis #1 differs after the split, position 2 is not.
	require.Panics(t, func() { ViewOf(tv.Tensor()).Split(1, 4).ComputeAt(tv, 2) })
}

func TestComputeAtRejections(t *testing.T) {
	f := New()
	producer := fusiontest.ConcreteView(f, 8, 16)
	consumer := fusiontest.ConcreteView(f, 8, 16)
	mismatched := fusiontest.ConcreteView(f, 4, 16)
	deeper := consumer.Split(1, 4) // Rank 3.
	foreign := fusiontest.ConcreteView(New(), 8, 16)

	require.Panics(t, func() { producer.ComputeAt(nil, 0) })
	require.Panics(t, func() { producer.ComputeAt(producer, 0) }, "cannot compute a view at itself")
	require.Panics(t, func() { producer.ComputeAt(consumer, -1) }, "negative positions are not accepted")
	require.Panics(t, func() { producer.ComputeAt(consumer, 3) }, "position beyond the target's rank")
	require.Panics(t, func() { producer.ComputeAt(deeper, 3) }, "position beyond the producer's own rank")
	require.Panics(t, func() { producer.ComputeAt(mismatched, 1) }, "axis #0 differs")
	require.Panics(t, func() { producer.ComputeAt(foreign, 0) }, "views from different Fusion objects")

	// A failed ComputeAt leaves the view unbound.
	require.False(t, producer.HasComputeAt())
	require.Nil(t, producer.ComputeAtView())
	require.Equal(t, -1, producer.ComputeAtAxis())

	// With an empty prefix there is nothing to match: even mismatched domains accept position 0.
	producer.ComputeAt(mismatched, 0)
	require.True(t, producer.HasComputeAt())
}

func TestComputeAtRebinding(t *testing.T) {
	f := New()
	producer := fusiontest.ConcreteView(f, 8, 16)
	first := fusiontest.ConcreteView(f, 8, 16)
	second := fusiontest.ConcreteView(f, 8, 16)

	producer.ComputeAt(first, 2)
	producer.ComputeAt(second, 1)
	require.Same(t, second, producer.ComputeAtView(), "the last binding wins")
	require.Equal(t, 1, producer.ComputeAtAxis())
}
