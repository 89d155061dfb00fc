package mapgen

import "fmt"

// ConfigError rejects a run before any stage executes.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s %s", e.Field, e.Message)
}

// InsufficientSpaceError is the placement-capacity failure: the attempt
// budget ran out before all requested regions fit under the separation
// constraint. The run aborts; no partial grid is returned.
type InsufficientSpaceError struct {
	Requested int
	Placed    int
}

func (e *InsufficientSpaceError) Error() string {
	return fmt.Sprintf("insufficient space: placed %d of %d regions under the separation constraint", e.Placed, e.Requested)
}

// WarningKind tags the non-fatal conditions surfaced in Diagnostics.
type WarningKind string

const (
	WarningPartialCleanup    WarningKind = "partialCleanup"
	WarningUnreachableRegion WarningKind = "unreachableRegion"
)

type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Kind, w.Message)
}

// TerminationReason makes the bounded-loop guarantee of the repair passes
// visible in the interface.
type TerminationReason int

const (
	Converged TerminationReason = iota
	CapReached
)

func (r TerminationReason) String() string {
	if r == Converged {
		return "converged"
	}
	return "capReached"
}

// Diagnostics is the per-run report of recovered failures. Generation
// still returns a usable grid when this is non-empty.
type Diagnostics struct {
	Warnings        []Warning
	UnroutableEdges int
	RepairPasses    []RepairOutcome
}

func (d *Diagnostics) warnf(kind WarningKind, format string, args ...any) {
	d.Warnings = append(d.Warnings, Warning{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// HasWarning reports whether any warning of the given kind was recorded.
func (d *Diagnostics) HasWarning(kind WarningKind) bool {
	for _, w := range d.Warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}
