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
)

//go:generate go tool enumer -type=ValType -trimprefix=ValType -output=gen_valtype_enumer.go val.go

// ValType identifies the concrete kind of a Val node.
type ValType int

const (
	ValTypeInvalid ValType = iota
	ValTypeScalar
	ValTypeIterDomain
	ValTypeTensorDomain
	ValTypeTensor
	ValTypeTensorView
)

// Val is a value node in a Fusion, implemented by *Int, *IterDomain,
// *TensorDomain, *Tensor and *TensorView.
//
// Values are registered in their Fusion at creation and are immutable after
// that, with the one exception of the compute-at binding of a TensorView.
type Val interface {
	// Fusion that owns this value.
	Fusion() *Fusion

	// Id of this value within its Fusion, given by creation order.
	Id() ValId

	// Type identifies the concrete kind of this value.
	Type() ValType

	// String returns a compact human-readable description of the value.
	String() string
}

// baseVal holds the part common to every Val implementation, which embed it.
type baseVal struct {
	fusion *Fusion
	id     ValId
	vtype  ValType
}

// newBaseVal initializes the common part of a value being created in the
// Fusion. The id is only assigned when the value is registered.
func newBaseVal(f *Fusion, vtype ValType) baseVal {
	f.AssertValid()
	return baseVal{fusion: f, id: InvalidValId, vtype: vtype}
}

// Fusion that owns this value.
func (v *baseVal) Fusion() *Fusion { return v.fusion }

// Id of this value within its Fusion.
func (v *baseVal) Id() ValId { return v.id }

// Type identifies the concrete kind of this value.
func (v *baseVal) Type() ValType { return v.vtype }

// valName returns the short handle used to reference v in dumps and error
// messages: i<id> for scalars, a<id> for iteration domains, d<id> for tensor
// domains, t<id> for tensors and tv<id> for views.
func valName(v Val) string {
	if v == nil {
		return "nil"
	}
	var prefix string
	switch v.Type() {
	case ValTypeScalar:
		prefix = "i"
	case ValTypeIterDomain:
		prefix = "a"
	case ValTypeTensorDomain:
		prefix = "d"
	case ValTypeTensor:
		prefix = "t"
	case ValTypeTensorView:
		prefix = "tv"
	default:
		prefix = "v"
	}
	return fmt.Sprintf("%s%d", prefix, v.Id())
}
