package persist

import "fmt"

// SaveError reports that the list could not be written to storage.
// The in-memory list is unaffected.
type SaveError struct {
	Slot string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("saving slot %q: %v", e.Slot, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
