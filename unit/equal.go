package unit

// StructurallyEqual reports whether a and b denote the same unit
// expression syntactically. Product and Sum children are compared
// order-insensitively via one-for-one matching; Identifier compares
// by ID. This is the grouping key used by the simplifier; O(n²) is
// acceptable since unit expressions are small.
func StructurallyEqual(a, b Node) bool {
	switch av := a.(type) {
	case One:
		_, ok := b.(One)
		return ok
	case Scalar:
		bv, ok := b.(Scalar)
		return ok && av.V == bv.V
	case Identifier:
		bv, ok := b.(Identifier)
		return ok && av.ID == bv.ID
	case Product:
		bv, ok := b.(Product)
		return ok && sameChildrenUnordered(av.Children, bv.Children)
	case Sum:
		bv, ok := b.(Sum)
		return ok && sameChildrenUnordered(av.Children, bv.Children)
	case Power:
		bv, ok := b.(Power)
		return ok && StructurallyEqual(av.Base, bv.Base) && StructurallyEqual(av.Exponent, bv.Exponent)
	case Neg:
		bv, ok := b.(Neg)
		return ok && StructurallyEqual(av.Child, bv.Child)
	case Expression:
		bv, ok := b.(Expression)
		return ok && StructurallyEqual(av.Child, bv.Child)
	default:
		return false
	}
}

// sameChildrenUnordered matches xs against ys one-for-one, order
// insensitive, each ys entry consumed at most once.
func sameChildrenUnordered(xs, ys []Node) bool {
	if len(xs) != len(ys) {
		return false
	}
	used := make([]bool, len(ys))
	for _, x := range xs {
		found := false
		for j, y := range ys {
			if used[j] {
				continue
			}
			if StructurallyEqual(x, y) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
