// Package abi is the embedding ABI surface: the thin exported
// functions a compiled Numerobis program calls into, plus the
// process-wide, once-initialized registries (extern functions, source
// modules, and the compiler-supplied unit evaluator table).
package abi

import (
	"sync"

	"github.com/rphle/numerobis-runtime/diag"
	"github.com/rphle/numerobis-runtime/unit"
)

// UnitTable is the compiler-supplied evaluator contract: base_unit,
// unit_id_eval, unit_id_eval_normal, is_logarithmic. It is exactly
// unit.Table; the alias exists so callers of this package never need
// to import unit directly just to name the type.
type UnitTable = unit.Table

var (
	unitTableOnce sync.Once
	unitTable     UnitTable
)

// RegisterUnitTable installs the process-wide unit evaluator table.
// It may be called exactly once, at process start; a second call
// aborts as a precondition violation rather than silently overwriting
// the first.
func RegisterUnitTable(t UnitTable) {
	registered := false
	unitTableOnce.Do(func() {
		unitTable = t
		registered = true
	})
	if !registered {
		diag.Abort("RegisterUnitTable called more than once")
	}
}

// Units returns the process-wide unit evaluator table. It aborts if
// no table has been registered yet: calling into unit evaluation
// before the embedding program has wired its compiler-generated
// tables is a precondition violation, not a recoverable error.
func Units() UnitTable {
	if unitTable == nil {
		diag.Abort("no UnitTable registered; call abi.RegisterUnitTable at startup")
	}
	return unitTable
}
