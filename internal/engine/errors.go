package engine

import "fmt"

// ============================================================================
// Error Kinds
// ============================================================================
//
// Configuration/topology/problem errors are surfaced to the caller and
// leave the Solver usable; earlier settings applied within a batch remain
// in effect. Solver outcomes (no solution, too hard) are reported as
// status codes, never as errors. InternalError is the one kind that
// signals an invariant violation; it should be unreachable in a correct
// implementation, but it is still a returned error, never a panic.
//
// ============================================================================

// ConfigurationError reports a bad configuration value: an unknown
// attribute, a numeric value out of range, brick dimensions that don't
// divide the requested size, an allowed-symbol-set name colliding with
// an alphabet token, a duplicate alphabet token, or a comma inside a
// token.
type ConfigurationError struct {
	Attribute string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	if e.Attribute == "" {
		return fmt.Sprintf("configuration error: %s", e.Reason)
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Attribute, e.Reason)
}

// TopologyError reports that a topology cannot be used with the current
// alphabet: its largest set needs more non-empty symbols than exist.
type TopologyError struct {
	Reason string
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("topology error: %s", e.Reason)
}

// ProblemError reports a malformed problem string: wrong cell count, a
// symbol repeated within a set at load time, or an unknown token while
// a delimiter is required.
type ProblemError struct {
	Reason string
}

func (e *ProblemError) Error() string {
	return fmt.Sprintf("problem error: %s", e.Reason)
}

// UsageError reports that Solution was called before Problem.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage error: %s", e.Reason)
}

// InternalError reports an invariant violation: a try that was already
// proven legal failed anyway. Unreachable in a correct implementation.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Reason)
}
