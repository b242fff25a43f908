package latex

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrState is matched by every StateError.
	ErrState = errors.New("operation is not allowed in current builder state")

	// ErrStructure is matched by every StructureError.
	ErrStructure = errors.New("document structure is not well-formed")
)

// StateError is returned when an operation is not valid for the state of the builder, for example adding a package
// after \begin{document}.
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: not allowed in %s state", e.Op, e.State)
}

func (e *StateError) Is(target error) bool {
	return target == ErrState
}

// StructureError is returned when environments are not balanced.
type StructureError struct {
	Op     string
	Reason string
	Open   []string // environments which are still open, innermost last
}

func (e *StructureError) Error() string {
	if len(e.Open) == 0 {
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	}

	return fmt.Sprintf("%s: %s: %s", e.Op, e.Reason, strings.Join(e.Open, ", "))
}

func (e *StructureError) Is(target error) bool {
	return target == ErrStructure
}
