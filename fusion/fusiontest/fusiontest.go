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

// Package fusiontest holds test utilities for packages that depend on the fusion package.
package fusiontest

import (
	"testing"

	"github.com/gomlx/fuser/fusion"
	"github.com/gomlx/fuser/types/xslices"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/require"
)

// ConcreteView creates a view over a new Float32 tensor with the given
// constant dimensions, each axis iterated serially with no reduction.
func ConcreteView(f *fusion.Fusion, dims ...int) *fusion.TensorView {
	axes := xslices.Map(dims, func(dim int) *fusion.IterDomain {
		return fusion.NewIterDomain(fusion.NewInt(f, dim), fusion.ParallelTypeSerial, false)
	})
	t := fusion.NewTensor(f, dtypes.Float32, fusion.NewTensorDomain(f, axes...))
	return fusion.ViewOf(t)
}

// SymbolicView creates a view over a new dummy tensor of the given rank, each
// axis with a fresh symbolic size. See fusion.MakeDummyTensor.
func SymbolicView(f *fusion.Fusion, ndims int) *fusion.TensorView {
	return fusion.ViewOf(fusion.MakeDummyTensor(f, ndims))
}

// RequireSameDomain checks that got and want are equivalent domains, per
// TensorDomain.SameAs.
func RequireSameDomain(t *testing.T, want, got *fusion.TensorDomain) {
	require.Truef(t, got.SameAs(want), "domains differ: got %s, want %s", got, want)
}

// RequireAxisSizes checks that the domain has one axis per given size, each
// with that constant size, in order.
func RequireAxisSizes(t *testing.T, td *fusion.TensorDomain, sizes ...int) {
	require.Equalf(t, len(sizes), td.Rank(), "domain %s: rank doesn't match, want %d axes", td, len(sizes))
	for ii, want := range sizes {
		size := td.Axis(ii).Size()
		require.Truef(t, size.IsConst(), "domain %s: axis #%d size is symbolic, want constant %d", td, ii, want)
		require.Equalf(t, want, size.Value(), "domain %s: axis #%d size doesn't match", td, ii)
	}
}

// RequireHistoryTypes checks that the transformation history of td is exactly
// the given sequence of expression types, from first applied to last.
func RequireHistoryTypes(t *testing.T, td *fusion.TensorDomain, want ...fusion.ExprType) {
	var got []fusion.ExprType
	for _, e := range fusion.TransformHistory(td) {
		got = append(got, e.Type())
	}
	require.Equalf(t, want, got, "transform history of %s doesn't match", td)
}
