package abi

import (
	"sync"

	"github.com/rphle/numerobis-runtime/diag"
)

// ExternFn is the Go-side shape of a registered extern function: the
// raw arguments in as untyped interface{} values, a single untyped
// result or error out. The calling
// convention for arguments beyond this signature belongs to the
// compiler, not this package.
type ExternFn func(args []interface{}) (interface{}, error)

var (
	externsMu sync.Mutex
	externs   = map[string]ExternFn{}
)

// Register installs fn under name. Re-registering an existing name
// aborts: the extern table is populated once at process start and
// never mutated thereafter.
func Register(name string, fn ExternFn) {
	externsMu.Lock()
	defer externsMu.Unlock()
	if _, exists := externs[name]; exists {
		diag.Abort("extern function %q already registered", name)
	}
	externs[name] = fn
}

// Lookup returns the extern function registered under name, or false
// if none exists. Lookup itself never aborts: a missing name is a
// normal, recoverable program state (an unresolved import), unlike a
// duplicate Register call.
func Lookup(name string) (ExternFn, bool) {
	externsMu.Lock()
	defer externsMu.Unlock()
	fn, ok := externs[name]
	return fn, ok
}

var (
	modulesMu sync.Mutex
	modules   = map[string]*diag.Source{}
)

// RegisterModule installs src under name in the module registry that
// diagnostic rendering consults for source-window printing.
// Re-registering an existing name aborts, matching Register.
func RegisterModule(name string, src *diag.Source) {
	modulesMu.Lock()
	defer modulesMu.Unlock()
	if _, exists := modules[name]; exists {
		diag.Abort("module %q already registered", name)
	}
	modules[name] = src
}

// LookupModule returns the registered Source for name, or nil if none
// was registered. Throw callers pass the result straight through to
// diag.Throw, which tolerates a nil Source by omitting the source
// window.
func LookupModule(name string) *diag.Source {
	modulesMu.Lock()
	defer modulesMu.Unlock()
	return modules[name]
}
