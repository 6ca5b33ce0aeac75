package gf256

import "fmt"

// DomainError reports caller-supplied input that the field cannot accept:
// a reducing polynomial that does not yield a period-255 table, a coefficient
// outside [0,255], or an operation that is undefined on zero.
type DomainError struct {
	Op     string
	Value  int
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("gf256: %s(%d): %s", e.Op, e.Value, e.Reason)
}

// ConsistencyError reports a violated table invariant. It cannot occur for a
// Field returned by NewField.
type ConsistencyError struct {
	Op     string
	Value  int
	Reason string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("gf256: internal inconsistency in %s(%d): %s", e.Op, e.Value, e.Reason)
}

func domainErr(op string, value int, format string, args ...any) error {
	return &DomainError{Op: op, Value: value, Reason: fmt.Sprintf(format, args...)}
}
