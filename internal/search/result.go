package search

import "time"

// Outcome is the final answer of a search that ran to completion.
type Outcome int

const (
	// NotFound means every candidate was evaluated and none matched.
	NotFound Outcome = iota
	// Found means a candidate whose digest is the target was found.
	Found
)

func (outcome Outcome) String() string {
	if outcome == Found {
		return "found"
	}

	return "not found"
}

// State is the lifecycle of a search. It leaves StateRunning exactly once.
type State int32

const (
	StateRunning State = iota
	StateFound
	StateExhausted
	StateCanceled
)

func (state State) String() string {
	switch state {
	case StateRunning:
		return "running"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	case StateCanceled:
		return "canceled"
	}

	return "unknown"
}

// Result describes a finished search.
type Result struct {
	// RunID identifies the search in logs and traces.
	RunID string

	// Plaintext is the matching candidate, exactly as it was hashed. Empty unless Outcome is Found.
	Plaintext string

	Outcome Outcome

	// Length is the number of characters of Plaintext.
	Length uint

	// Evaluated is the number of candidates hashed.
	Evaluated int64

	Elapsed time.Duration
}

// Found returns true if a plaintext was found.
func (res *Result) Found() bool {
	return res.Outcome == Found
}
