package youtube

import "fmt"

// TransportError reports a browse call that did not complete or came
// back with a non-success status. It is never retried.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("browse request failed: %v", e.Err)
	}
	return fmt.Sprintf("browse request failed: status %d", e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StructureError reports a required container missing from an
// otherwise successful response: the upstream layout changed, the
// channel has no community tab, or the envelope shape is unexpected.
type StructureError struct {
	Path string
}

func (e *StructureError) Error() string {
	return "unexpected response structure: missing " + e.Path
}
