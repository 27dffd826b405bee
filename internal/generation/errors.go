package generation

import "fmt"

// UnusableOutputError marks a reply that arrived but cannot be used as
// resume content. Generate converts it to the template fallback.
type UnusableOutputError struct {
	Reason string
}

func (e *UnusableOutputError) Error() string {
	return fmt.Sprintf("unusable generation output: %s", e.Reason)
}
