package abi

import (
	"github.com/rphle/numerobis-runtime/unit"
)

// Built-in unit identifier ids. A real compiler would assign these
// per compilation; this fixed table exists so the CLI (cmd/numerobis-rt)
// and the end-to-end tests have real identifiers to exercise.
const (
	IDMeter uint16 = iota + 1
	IDSecond
	IDKilogram
	IDKelvin
	IDCelsius
	IDFahrenheit
	IDHertz
	IDDecibelMilliwatt
)

// Meter, Second, Kilogram, Kelvin, Celsius, Fahrenheit, Hertz and
// DecibelMilliwatt are the unit.Identifier leaves for BuiltinUnits.
var (
	Meter            = unit.Identifier{Name: "m", ID: IDMeter}
	Second           = unit.Identifier{Name: "s", ID: IDSecond}
	Kilogram         = unit.Identifier{Name: "kg", ID: IDKilogram}
	Kelvin           = unit.Identifier{Name: "K", ID: IDKelvin}
	Celsius          = unit.Identifier{Name: "°C", ID: IDCelsius}
	Fahrenheit       = unit.Identifier{Name: "°F", ID: IDFahrenheit}
	Hertz            = unit.Identifier{Name: "Hz", ID: IDHertz}
	DecibelMilliwatt = unit.Identifier{Name: "dBm", ID: IDDecibelMilliwatt}
)

// BuiltinUnits is a concrete UnitTable covering common SI/US
// identifiers: multiplicative units (m, s, kg, K, Hz) whose three
// modes are all the identity, two affine identifiers (°C, °F) that
// carry a real offset into their Inverted mode, and dBm, whose Base
// mode is the constant 1. °C, °F and dBm are all flagged logarithmic,
// which exercises the IsLogarithmic branch of eval.go and the delta
// operators.
//
// The real unit_id_eval/base_unit/is_logarithmic tables are
// compiler-generated and owned outside this runtime; this table is
// this module's own stand-in, chosen to make the runtime's own
// mechanics (simplify, eval, print, convert, delta) exercisable and
// self-consistent rather than to replicate every worked figure a
// compiler-specific table might produce. Logarithmic-unit
// multiplication in particular depends on compiler-table internals
// this module never sees (see DESIGN.md).
type BuiltinUnits struct{}

func (BuiltinUnits) BaseUnit(id uint16, x float64) float64 {
	switch id {
	case IDCelsius, IDFahrenheit, IDDecibelMilliwatt:
		return 1
	default:
		return x
	}
}

func (BuiltinUnits) UnitIDEval(id uint16, x float64) float64 {
	switch id {
	case IDCelsius:
		return x + 273.15
	case IDFahrenheit:
		return (x-32)*5/9 + 273.15
	default:
		return x
	}
}

func (BuiltinUnits) UnitIDEvalNormal(id uint16, x float64) float64 {
	switch id {
	case IDCelsius:
		return x - 273.15
	case IDFahrenheit:
		return (x-273.15)*9/5 + 32
	default:
		return x
	}
}

func (BuiltinUnits) IsLogarithmic(id uint16) bool {
	switch id {
	case IDCelsius, IDFahrenheit, IDDecibelMilliwatt:
		return true
	default:
		return false
	}
}
