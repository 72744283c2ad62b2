package evidence

import "fmt"

// Branch names for error reporting
const (
	BranchRetrieval = "retrieval"
	BranchKnowledge = "knowledge"
)

// BackendError marks a retrieval or knowledge backend failure (unreachable,
// erroring, or timed out). It is distinguishable from an empty result set,
// which is a valid value and never an error.
type BackendError struct {
	Branch string
	Err    error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s backend failed: %v", e.Branch, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
