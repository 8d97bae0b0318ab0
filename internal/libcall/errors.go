package libcall

import (
	"errors"
	"fmt"
)

// ErrUnavailable reports that a library function cannot be used in the
// module: the target lacks it, or the symbol is taken by something with a
// different type.
var ErrUnavailable = errors.New("library function unavailable")

// IncompatibleError reports a symbol already present in the module whose
// type differs from the accepted prototype. It matches ErrUnavailable.
type IncompatibleError struct {
	Name string
	Have string
	Want string
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("@%s exists as %s, want %s", e.Name, e.Have, e.Want)
}

func (e *IncompatibleError) Is(target error) bool {
	return target == ErrUnavailable
}

func unavailable(name string) error {
	return fmt.Errorf("%w: %s", ErrUnavailable, name)
}

// ContractViolation is the panic value for caller bugs: malformed
// operands, a half-precision float helper request, or an integer
// parameter missing from the extension table when assertions are on.
type ContractViolation struct {
	Op  string
	Msg string
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("libcall: %s: %s", e.Op, e.Msg)
}

func violate(op, format string, args ...any) {
	panic(&ContractViolation{Op: op, Msg: fmt.Sprintf(format, args...)})
}
