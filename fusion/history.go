package fusion

import (
	"slices"
)

// TransformHistory returns the chain of expressions that produced td, ordered
// from the first transformation applied to the root domain to the one that
// produced td itself. A domain created directly has no history and returns
// nil.
//
// Together with RootDomain this allows replaying how a view's domain was
// derived, e.g. to apply the same schedule to another tensor.
func TransformHistory(td *TensorDomain) []Expr {
	if td == nil {
		return nil
	}
	f := td.Fusion()
	var history []Expr
	for current := td; current != nil; {
		expr := f.Origin(current)
		if expr == nil {
			break
		}
		history = append(history, expr)
		current = domainInput(expr)
	}
	slices.Reverse(history)
	return history
}

// RootDomain follows the transformation history of td backwards and returns
// the original domain it derives from. A domain created directly is its own
// root.
func RootDomain(td *TensorDomain) *TensorDomain {
	if td == nil {
		return nil
	}
	f := td.Fusion()
	current := td
	for {
		expr := f.Origin(current)
		if expr == nil {
			return current
		}
		in := domainInput(expr)
		if in == nil {
			return current
		}
		current = in
	}
}

// domainInput returns the TensorDomain consumed by the expression, or nil if
// it consumes none.
func domainInput(e Expr) *TensorDomain {
	for _, input := range e.Inputs() {
		if td, ok := input.(*TensorDomain); ok {
			return td
		}
	}
	return nil
}
