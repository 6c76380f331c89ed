// Package diag implements the runtime's diagnostic throw interface:
// user-facing runtime errors are printed to stderr with ANSI color,
// source location, a source window and an underline caret, then the
// process exits non-zero. There are no in-language exceptions:
// Throw never returns.
//
// Unlike a build tool that streams an unbounded, sortable list of
// warnings and errors across a whole run, this runtime only ever
// throws one fatal diagnostic and exits.
package diag

import (
	"fmt"
	"os"
	"strings"
)

// Code identifies a runtime error. The set is open; only the codes
// observed in practice are named here.
type Code int

const (
	// CodeListIndexOutOfRange is raised by a list __getitem__ whose
	// normalized index still falls outside [0, len).
	CodeListIndexOutOfRange Code = 901
	// CodeStringIndexOutOfRange is the string analogue of 901.
	CodeStringIndexOutOfRange Code = 902
	// CodeIntParseFailure is raised when a Str->Int conversion fails.
	CodeIntParseFailure Code = 301
	// CodeDivisionByZero is raised by integer `÷` with a zero divisor.
	CodeDivisionByZero Code = 701
)

func (c Code) String() string {
	switch c {
	case CodeListIndexOutOfRange:
		return "list index out of range"
	case CodeStringIndexOutOfRange:
		return "string index out of range"
	case CodeIntParseFailure:
		return "invalid literal for int()"
	case CodeDivisionByZero:
		return "division by zero"
	default:
		return fmt.Sprintf("error %d", int(c))
	}
}

// Loc is a source location: 1-based line, 0-based column, spanning to
// an end line/column for multi-character tokens.
type Loc struct {
	Line, Col       int
	EndLine, EndCol int
}

// Colors is the set of ANSI escape sequences used when rendering a
// diagnostic to a color-capable terminal.
type Colors struct {
	Reset, Bold, Dim, Underline string
	Red, Yellow                string
}

// TerminalColors is the standard palette used for error formatting.
var TerminalColors = Colors{
	Reset:     "\033[0m",
	Bold:      "\033[1m",
	Dim:       "\033[37m",
	Underline: "\033[4m",
	Red:       "\033[31m",
	Yellow:    "\033[33m",
}

// Source is the minimal piece of module-registry state a diagnostic
// needs to render its source window: a name for the "file: " header
// and the full source text to slice a window out of.
type Source struct {
	Module string
	Text   string
}

// isTerminal reports whether f looks like an interactive terminal.
// Implemented via os.ModeCharDevice rather than a syscall/ioctl
// dependency (see SPEC_FULL.md DOMAIN STACK: golang.org/x/sys has no
// other home in this module, so a one-boolean check isn't worth
// pulling it in).
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func colorsFor(f *os.File) Colors {
	if isTerminal(f) {
		return TerminalColors
	}
	return Colors{}
}

// Render produces the full diagnostic text: a bold/red "error[code]:
// message" header, the source location, a source window with the
// offending line(s) and a caret underline beneath the flagged range.
func Render(code Code, loc Loc, src *Source, colors Colors) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%serror%s%s[%d]: %s%s\n",
		colors.Bold, colors.Red, colors.Reset, colors.Bold, int(code), code.String(), colors.Reset)

	if src != nil {
		fmt.Fprintf(&b, "%s --> %s:%d:%d%s\n", colors.Dim, src.Module, loc.Line, loc.Col+1, colors.Reset)
		lines := strings.Split(src.Text, "\n")
		if loc.Line >= 1 && loc.Line <= len(lines) {
			lineText := lines[loc.Line-1]
			fmt.Fprintf(&b, "  %s%s\n", colors.Dim, colors.Reset)
			fmt.Fprintf(&b, "  %d | %s\n", loc.Line, lineText)

			underlineLen := 1
			if loc.EndLine == loc.Line && loc.EndCol > loc.Col {
				underlineLen = loc.EndCol - loc.Col
			}
			gutter := len(fmt.Sprintf("%d", loc.Line))
			fmt.Fprintf(&b, "  %s | %s%s%s%s\n",
				strings.Repeat(" ", gutter),
				strings.Repeat(" ", loc.Col),
				colors.Yellow, strings.Repeat("^", underlineLen), colors.Reset)
		}
	}
	return b.String()
}

// Throw prints the diagnostic to stderr and terminates the process
// with a non-zero exit code. It never returns: user-programming-error
// diagnostics have no in-language recovery.
func Throw(code Code, loc Loc, src *Source) {
	colors := colorsFor(os.Stderr)
	fmt.Fprint(os.Stderr, Render(code, loc, src, colors))
	os.Exit(1)
}

// Abort reports a precondition violation: a bad ABI call from the
// compiler, which should be unreachable. It never returns.
func Abort(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "numerobis runtime: internal error: %s\n", fmt.Sprintf(format, args...))
	os.Exit(2)
}
