package unit

import (
	"math"

	"github.com/samber/lo"
)

// Simplify rewrites n into normal form: nested products/sums
// flattened, like bases merged by exponent, like terms merged by
// coefficient, powers distributed over products. Simplify is
// idempotent: Simplify(Simplify(n)) is structurally identical to
// Simplify(n).
func Simplify(n Node) Node {
	switch v := n.(type) {
	case Expression:
		return Simplify(v.Child)
	case Neg:
		return simplifyNeg(v)
	case Power:
		return simplifyPower(v)
	case Product:
		return simplifyProductChildren(v.Children)
	case Sum:
		return simplifySumChildren(v.Children)
	default:
		// One, Scalar, Identifier are already in normal form.
		return n
	}
}

func simplifyNeg(n Neg) Node {
	sx := Simplify(n.Child)
	switch v := sx.(type) {
	case One:
		return Scalar{V: -1}
	case Scalar:
		return Scalar{V: -v.V}
	default:
		return Neg{Child: sx}
	}
}

func simplifyPower(n Power) Node {
	se := Simplify(n.Exponent)

	if s, ok := se.(Scalar); ok && s.V == 0 {
		return Scalar{V: 1}
	}
	if isUnitOne(se) {
		return Simplify(n.Base)
	}

	sb := Simplify(n.Base)
	if _, ok := sb.(One); ok {
		return Scalar{V: 1}
	}

	if bs, ok := sb.(Scalar); ok {
		if es, ok := se.(Scalar); ok {
			return Scalar{V: math.Pow(bs.V, es.V)}
		}
	}

	if inner, ok := sb.(Power); ok {
		combinedExp := simplifyProductChildren([]Node{inner.Exponent, se})
		return Simplify(Power{Base: inner.Base, Exponent: combinedExp})
	}

	if prod, ok := sb.(Product); ok {
		distributed := lo.Map(prod.Children, func(f Node, _ int) Node {
			return Node(Power{Base: f, Exponent: se})
		})
		return simplifyProductChildren(distributed)
	}

	return Power{Base: sb, Exponent: se}
}

// isUnitOne reports whether n is the scalar 1 or the dimensionless
// identity, the two values that make Power's exponent a no-op.
func isUnitOne(n Node) bool {
	if _, ok := n.(One); ok {
		return true
	}
	if s, ok := n.(Scalar); ok && s.V == 1 {
		return true
	}
	return false
}

type productGroup struct {
	base      Node
	exponents []Node
}

// simplifyProductChildren flattens, folds scalar factors, and groups
// like bases by summing their exponents. It backs both
// Simplify(Product{...}) and Power's distribute-over-Product case,
// which needs the same exponent-combination rewrite.
func simplifyProductChildren(children []Node) Node {
	var flat []Node
	var flatten func(Node)
	flatten = func(n Node) {
		s := Simplify(n)
		if p, ok := s.(Product); ok {
			for _, c := range p.Children {
				flatten(c)
			}
			return
		}
		if _, ok := s.(One); ok {
			return
		}
		flat = append(flat, s)
	}
	for _, c := range children {
		flatten(c)
	}

	scalarFactor := 1.0
	factors := lo.Filter(flat, func(n Node, _ int) bool {
		if s, ok := n.(Scalar); ok {
			scalarFactor *= s.V
			return false
		}
		return true
	})

	var groups []productGroup
	for _, f := range factors {
		base, exp := decomposePowerFactor(f)
		idx := -1
		for i, g := range groups {
			if StructurallyEqual(g.base, base) {
				idx = i
				break
			}
		}
		if idx == -1 {
			groups = append(groups, productGroup{base: base, exponents: []Node{exp}})
		} else {
			groups[idx].exponents = append(groups[idx].exponents, exp)
		}
	}

	var out []Node
	for _, g := range groups {
		var totalExp Node
		if len(g.exponents) == 1 {
			totalExp = g.exponents[0]
		} else {
			totalExp = simplifySumChildren(g.exponents)
		}
		if s, ok := totalExp.(Scalar); ok {
			if s.V == 0 {
				continue
			}
			if s.V == 1 {
				out = append(out, g.base)
				continue
			}
		}
		out = append(out, Power{Base: g.base, Exponent: totalExp})
	}

	if scalarFactor != 1 {
		out = append([]Node{Scalar{V: scalarFactor}}, out...)
	}

	switch len(out) {
	case 0:
		return Scalar{V: 1}
	case 1:
		return out[0]
	default:
		return Product{Children: out}
	}
}

// decomposePowerFactor splits a product factor into (base, exponent);
// a non-Power factor has implicit exponent 1.
func decomposePowerFactor(n Node) (base, exponent Node) {
	if p, ok := n.(Power); ok {
		return p.Base, p.Exponent
	}
	return n, Scalar{V: 1}
}

type sumGroup struct {
	base  Node
	coeff float64
}

// simplifySumChildren implements rule 5.
//
// One children are dropped here even though Sum's identity is the
// number 0, not 1. One is treated as a generic "absent term"
// placeholder rather than a numeric zero. See DESIGN.md for the
// tradeoff this raises.
func simplifySumChildren(children []Node) Node {
	var flat []Node
	var flatten func(Node)
	flatten = func(n Node) {
		s := Simplify(n)
		if sum, ok := s.(Sum); ok {
			for _, c := range sum.Children {
				flatten(c)
			}
			return
		}
		if _, ok := s.(One); ok {
			return
		}
		flat = append(flat, s)
	}
	for _, c := range children {
		flatten(c)
	}

	accum := 0.0
	addends := lo.Filter(flat, func(n Node, _ int) bool {
		if s, ok := n.(Scalar); ok {
			accum += s.V
			return false
		}
		return true
	})

	var groups []sumGroup
	for _, a := range addends {
		coeff, base := decomposeAddend(a)
		if _, ok := base.(One); ok {
			accum += coeff
			continue
		}
		idx := -1
		for i, g := range groups {
			if StructurallyEqual(g.base, base) {
				idx = i
				break
			}
		}
		if idx == -1 {
			groups = append(groups, sumGroup{base: base, coeff: coeff})
		} else {
			groups[idx].coeff += coeff
		}
	}

	var out []Node
	for _, g := range groups {
		if g.coeff == 0 {
			continue
		}
		if g.coeff == 1 {
			out = append(out, g.base)
			continue
		}
		if p, ok := g.base.(Product); ok {
			out = append(out, Product{Children: append([]Node{Scalar{V: g.coeff}}, p.Children...)})
		} else {
			out = append(out, Product{Children: []Node{Scalar{V: g.coeff}, g.base}})
		}
	}

	if accum != 0 {
		out = append([]Node{Scalar{V: accum}}, out...)
	}

	switch len(out) {
	case 0:
		return Scalar{V: 0}
	case 1:
		return out[0]
	default:
		return Sum{Children: out}
	}
}

// decomposeAddend splits a Sum addend into (coefficient, base). An
// addend that is a Product with one or more Scalar factors has those
// factors folded into coeff; everything else has implicit
// coefficient 1.
func decomposeAddend(n Node) (coeff float64, base Node) {
	p, ok := n.(Product)
	if !ok {
		return 1.0, n
	}
	coeff = 1.0
	hadScalar := false
	var rest []Node
	for _, c := range p.Children {
		if s, ok := c.(Scalar); ok {
			coeff *= s.V
			hadScalar = true
		} else {
			rest = append(rest, c)
		}
	}
	if !hadScalar {
		return 1.0, n
	}
	switch len(rest) {
	case 0:
		return coeff, One{}
	case 1:
		return coeff, rest[0]
	default:
		return coeff, Product{Children: rest}
	}
}
