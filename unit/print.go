package unit

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders n as human-readable fraction notation,
// simplifying first.
func Print(n Node) string {
	return printNode(Simplify(n))
}

// isCompound reports whether n needs parenthesising when nested
// inside a unary or binary printed form.
func isCompound(n Node) bool {
	switch n.(type) {
	case Sum, Product, Neg, Power:
		return true
	}
	return false
}

func isScalarOrIdentifier(n Node) bool {
	switch n.(type) {
	case Scalar, Identifier:
		return true
	}
	return false
}

func formatScalarValue(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprintf("%g", v)
}

func printNode(n Node) string {
	switch v := n.(type) {
	case One:
		return ""
	case Scalar:
		return formatScalarValue(v.V)
	case Identifier:
		return v.Name
	case Sum:
		parts := make([]string, len(v.Children))
		for i, c := range v.Children {
			parts[i] = printNode(c)
		}
		return strings.Join(parts, "+")
	case Neg:
		cs := printNode(v.Child)
		if isCompound(v.Child) {
			cs = "(" + cs + ")"
		}
		return "-" + cs
	case Product:
		return printProduct(v)
	case Power:
		return printPower(v)
	case Expression:
		return "[" + printNode(v.Child) + "]"
	default:
		return ""
	}
}

func printPower(p Power) string {
	if isUnitOne(p.Exponent) {
		return printNode(p.Base)
	}
	baseStr := printNode(p.Base)
	if isCompound(p.Base) {
		baseStr = "(" + baseStr + ")"
	}
	expStr := printNode(p.Exponent)
	if !isScalarOrIdentifier(p.Exponent) {
		expStr = "(" + expStr + ")"
	}
	return baseStr + "^" + expStr
}

// isDenominatorFactor reports whether n belongs in the denominator
// group of a Product print: a Power whose exponent is a negative
// Scalar or a Neg node.
func isDenominatorFactor(n Node) bool {
	pw, ok := n.(Power)
	if !ok {
		return false
	}
	if s, ok := pw.Exponent.(Scalar); ok {
		return s.V < 0
	}
	if _, ok := pw.Exponent.(Neg); ok {
		return true
	}
	return false
}

// printDenominatorFactor prints a single denominator factor (a Power
// guaranteed by isDenominatorFactor) as it reads in the denominator
// group, with the sign of its exponent stripped.
func printDenominatorFactor(n Node) string {
	pw := n.(Power)
	baseStr := printNode(pw.Base)
	if isCompound(pw.Base) {
		baseStr = "(" + baseStr + ")"
	}
	switch e := pw.Exponent.(type) {
	case Scalar:
		negV := -e.V
		if negV == 1 {
			return baseStr
		}
		return baseStr + "^" + formatScalarValue(negV)
	case Neg:
		expStr := printNode(e.Child)
		if !isScalarOrIdentifier(e.Child) {
			expStr = "(" + expStr + ")"
		}
		return baseStr + "^" + expStr
	default:
		return baseStr
	}
}

func printProduct(p Product) string {
	var numerators []string
	var denominators []Node
	for _, c := range p.Children {
		if _, ok := c.(One); ok {
			continue
		}
		if isDenominatorFactor(c) {
			denominators = append(denominators, c)
		} else {
			numerators = append(numerators, printNode(c))
		}
	}

	numStr := "1"
	if len(numerators) > 0 {
		numStr = strings.Join(numerators, "*")
	}
	if len(denominators) == 0 {
		return numStr
	}

	denomParts := make([]string, len(denominators))
	for i, d := range denominators {
		denomParts[i] = printDenominatorFactor(d)
	}
	denomStr := strings.Join(denomParts, "*")
	if len(denominators) >= 2 {
		denomStr = "(" + denomStr + ")"
	}
	return numStr + "/" + denomStr
}
