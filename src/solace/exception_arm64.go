//go:build tinygo

package solace

import (
	"github.com/T0213-ZH/reverie/src/lib/trust"
	"github.com/T0213-ZH/reverie/src/lib/upbeat"
)

// HandleException is the raw exception handler wired to the board's
// vector table (grounded in the teacher's src/joy/exception.go
// rawExceptionHandler). Kernel invariant violations and unhandled traps
// both funnel here: decode and log, then halt — per spec.md §7, the
// kernel "does panic... only on internal invariant violations."
func HandleException(excType, esr, addr, el, procID uint64) {
	upbeat.PrintoutException(esr, trust.PackageLogger)
	trust.Fatalf(1, "unhandled exception type %d at addr %x (EL=%d, ProcID=%x)", excType, addr, el, procID)
}
