package engine

import "fmt"

// ValidationError reports a comparison request rejected before any
// scoring runs. Surfaced as a client fault, never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// LookupError reports an internal consistency failure: trade-off
// generation referencing an option name absent from the score list.
// Should not occur when the orchestrator's sequencing is respected.
type LookupError struct {
	OptionName string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no score entry for option %q", e.OptionName)
}
