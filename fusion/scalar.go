package fusion

import (
	"fmt"
	"strconv"

	. "github.com/gomlx/exceptions"
)

//go:generate go tool enumer -type=BinaryOpType -trimprefix=BinaryOpType -output=gen_binaryoptype_enumer.go scalar.go

// BinaryOpType identifies the arithmetic operation recorded by a BinaryOp.
type BinaryOpType int

const (
	BinaryOpTypeInvalid BinaryOpType = iota
	BinaryOpTypeMul
	BinaryOpTypeCeilDiv
)

// Int is a scalar integer value node: either a compile-time constant or a
// symbolic value only known when the kernel runs, like the dynamic extent of
// an axis.
type Int struct {
	baseVal
	value   int
	isConst bool
}

// NewInt creates a constant integer scalar in the Fusion.
func NewInt(f *Fusion, value int) *Int {
	i := &Int{baseVal: newBaseVal(f, ValTypeScalar), value: value, isConst: true}
	i.id = f.registerVal(i)
	return i
}

// NewSymbolicInt creates an integer scalar with no compile-time known value.
func NewSymbolicInt(f *Fusion) *Int {
	i := &Int{baseVal: newBaseVal(f, ValTypeScalar)}
	i.id = f.registerVal(i)
	return i
}

// IsConst returns whether the value is a compile-time constant.
func (i *Int) IsConst() bool { return i.isConst }

// IsSymbolic returns whether the value is only known at kernel execution time.
func (i *Int) IsSymbolic() bool { return !i.isConst }

// Value returns the constant value. It panics if the value is symbolic, check
// with IsConst first.
func (i *Int) Value() int {
	if !i.isConst {
		Panicf("Int %s is symbolic, it has no constant value", valName(i))
	}
	return i.value
}

// SameAs returns whether both scalars are known to hold the same value:
// constants compare by value, symbolic scalars only by identity.
func (i *Int) SameAs(other *Int) bool {
	if i == nil || other == nil {
		return i == other
	}
	if i.isConst != other.isConst {
		return false
	}
	if i.isConst {
		return i.value == other.value
	}
	return i == other
}

// String prints the constant value, or the scalar's short handle (e.g. "i3")
// if symbolic.
func (i *Int) String() string {
	if i == nil {
		return "nil"
	}
	if i.isConst {
		return strconv.Itoa(i.value)
	}
	return valName(i)
}

// BinaryOp is the record of a scalar arithmetic operation. It is only created
// when the result cannot be constant-folded: operations on two constants
// return a folded constant with no origin expression.
type BinaryOp struct {
	baseExpr
	opType        BinaryOpType
	out, lhs, rhs *Int
}

func newBinaryOp(opType BinaryOpType, out, lhs, rhs *Int) *BinaryOp {
	b := &BinaryOp{baseExpr: newBaseExpr(out.Fusion(), ExprTypeBinaryOp), opType: opType, out: out, lhs: lhs, rhs: rhs}
	b.id = b.fusion.registerExpr(b)
	return b
}

// Op identifies the arithmetic operation recorded.
func (b *BinaryOp) Op() BinaryOpType { return b.opType }

// Out is the scalar produced by the operation.
func (b *BinaryOp) Out() *Int { return b.out }

// Lhs is the left-hand side operand.
func (b *BinaryOp) Lhs() *Int { return b.lhs }

// Rhs is the right-hand side operand.
func (b *BinaryOp) Rhs() *Int { return b.rhs }

// Inputs are the two operands.
func (b *BinaryOp) Inputs() []Val { return []Val{b.lhs, b.rhs} }

// Outputs is the single resulting scalar.
func (b *BinaryOp) Outputs() []Val { return []Val{b.out} }

// SameAs returns whether both records describe the same operation over the
// same operands, producing the same value.
func (b *BinaryOp) SameAs(other *BinaryOp) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.opType == other.opType &&
		b.out.SameAs(other.out) &&
		b.lhs.SameAs(other.lhs) &&
		b.rhs.SameAs(other.rhs)
}

// String returns e.g. "i5 = CeilDiv(i3, 4)".
func (b *BinaryOp) String() string {
	return fmt.Sprintf("%s = %s(%s, %s)", b.out, b.opType, b.lhs, b.rhs)
}

// Mul returns a scalar holding a*b. If both operands are constants the result
// is a folded constant, otherwise it is a symbolic scalar whose origin is the
// recorded BinaryOp.
func Mul(a, b *Int) *Int {
	f := validateFusionFromInputs(a, b)
	if a.IsConst() && b.IsConst() {
		return NewInt(f, a.Value()*b.Value())
	}
	out := NewSymbolicInt(f)
	newBinaryOp(BinaryOpTypeMul, out, a, b)
	return out
}

// CeilDiv returns a scalar holding ceil(a/b), the rounded-up integer
// division. If both operands are constants the result is a folded constant,
// otherwise it is a symbolic scalar whose origin is the recorded BinaryOp.
//
// It panics if b is a constant that is not positive.
func CeilDiv(a, b *Int) *Int {
	f := validateFusionFromInputs(a, b)
	if b.IsConst() && b.Value() <= 0 {
		Panicf("CeilDiv divisor must be positive, got %d", b.Value())
	}
	if a.IsConst() && b.IsConst() {
		return NewInt(f, ceilIntDiv(a.Value(), b.Value()))
	}
	out := NewSymbolicInt(f)
	newBinaryOp(BinaryOpTypeCeilDiv, out, a, b)
	return out
}

func ceilIntDiv(numerator, denominator int) int {
	return (numerator + denominator - 1) / denominator
}
