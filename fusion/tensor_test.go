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
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/require"
)

func TestNewTensor(t *testing.T) {
	f := New()
	axis := NewIterDomain(NewInt(f, 8), ParallelTypeSerial, false)
	td := NewTensorDomain(f, axis)
	tensor := NewTensor(f, dtypes.Float32, td)
	require.Equal(t, ValTypeTensor, tensor.Type())
	require.Equal(t, dtypes.Float32, tensor.DType())
	require.Same(t, td, tensor.Domain())
	require.False(t, tensor.HasContiguityInfo())
	require.Equal(t, "(Float32)[i{8}]", tensor.String())

	// The domain is optional: a tensor may carry dtype information only.
	opaque := NewTensor(f, dtypes.Int64, nil)
	require.Nil(t, opaque.Domain())
	require.Equal(t, "(Int64)", opaque.String())

	require.Panics(t, func() { NewTensor(f, dtypes.InvalidDType, td) })
	f2 := New()
	require.Panics(t, func() { NewTensor(f2, dtypes.Float32, td) }, "domain from a different Fusion")
}

func TestTensorContiguity(t *testing.T) {
	tc := NewTensorContiguity([]bool{true, false, true})
	require.Equal(t, 3, tc.Rank())
	require.True(t, tc.IsContiguousAxis(0))
	require.False(t, tc.IsContiguousAxis(1))
	require.True(t, tc.IsContiguousAxis(-1))
	require.False(t, tc.IsContiguousAxis(-2))
	require.Panics(t, func() { _ = tc.IsContiguousAxis(3) })
	require.Panics(t, func() { _ = tc.IsContiguousAxis(-4) })
	require.False(t, tc.IsFullyContiguous())
	require.True(t, NewTensorContiguity([]bool{true, true}).IsFullyContiguous())
	require.True(t, NewTensorContiguity(nil).IsFullyContiguous(), "rank-0 is trivially contiguous")

	src := []bool{true}
	tc2 := NewTensorContiguity(src)
	src[0] = false
	require.True(t, tc2.IsContiguousAxis(0), "the constructor must copy the flags it is given")
}

func TestNewTensorWithContiguity(t *testing.T) {
	f := New()
	a0 := NewIterDomain(NewInt(f, 8), ParallelTypeSerial, false)
	a1 := NewIterDomain(NewInt(f, 4), ParallelTypeSerial, false)
	td := NewTensorDomain(f, a0, a1)
	tensor := NewTensorWithContiguity(f, dtypes.Float32, td, NewTensorContiguity([]bool{true, false}))
	require.True(t, tensor.HasContiguityInfo())
	require.False(t, tensor.ContiguityInfo().IsContiguousAxis(1))

	require.Panics(t, func() {
		NewTensorWithContiguity(f, dtypes.Float32, td, NewTensorContiguity([]bool{true, false, true}))
	}, "contiguity rank must match the domain rank")
}

func TestMakeDummyTensor(t *testing.T) {
	f := New()
	tensor := MakeDummyTensor(f, 3)
	require.Equal(t, dtypes.Float32, tensor.DType())
	require.Equal(t, 3, tensor.Domain().Rank())
	for axis := 0; axis < 3; axis++ {
		d := tensor.Domain().Axis(axis)
		require.True(t, d.Size().IsSymbolic())
		require.Equal(t, ParallelTypeSerial, d.ParallelType())
		require.False(t, d.IsReduction())
	}
	require.False(t, tensor.Domain().Axis(0).SameAs(tensor.Domain().Axis(1)), "each axis gets its own symbolic size")

	scalar := MakeDummyTensor(f, 0)
	require.Equal(t, 0, scalar.Domain().Rank())

	require.Panics(t, func() { MakeDummyTensor(f, -1) })
}

func TestTensorSameAs(t *testing.T) {
	f := New()
	makeDomain := func(sizes ...int) *TensorDomain {
		axes := make([]*IterDomain, len(sizes))
		for ii, size := range sizes {
			axes[ii] = NewIterDomain(NewInt(f, size), ParallelTypeSerial, false)
		}
		return NewTensorDomain(f, axes...)
	}
	t1 := NewTensor(f, dtypes.Float32, makeDomain(8, 4))
	t2 := NewTensor(f, dtypes.Float32, makeDomain(8, 4))
	require.True(t, t1.SameAs(t2))
	require.False(t, t1.SameAs(NewTensor(f, dtypes.Float64, makeDomain(8, 4))), "different dtype")
	require.False(t, t1.SameAs(NewTensor(f, dtypes.Float32, makeDomain(8, 5))), "different domain")
	require.False(t, t1.SameAs(NewTensor(f, dtypes.Float32, nil)))
	require.True(t, NewTensor(f, dtypes.Float32, nil).SameAs(NewTensor(f, dtypes.Float32, nil)))
}
