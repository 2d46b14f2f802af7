package diag

import "fmt"

// Kind identifies the category of a recoverable anomaly.
type Kind string

// Sentinel warning kinds emitted by the packing core. Host applications
// may switch on these without parsing Details.
const (
	KindApertureFiltered     Kind = "aperture-filtered"
	KindApertureOversized    Kind = "aperture-oversized"
	KindHoleDropped          Kind = "hole-dropped"
	KindMultiComponentPicked Kind = "multi-component-collapsed"
	KindDegenerateDropped    Kind = "degenerate-dropped"
	KindCoverageFallback     Kind = "coverage-fallback"
)

// Warning is a single recoverable anomaly observed during a PackWall call.
// Kind is a stable, switchable tag; Details is a free-form human-readable
// elaboration and must not be parsed by callers.
type Warning struct {
	Kind    Kind
	Details string
}

// String renders a Warning for logs/CLI output. Not used for comparisons.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Details)
}

// Collector accumulates Warnings in emission order. The zero value is
// ready to use. Collector is not safe for concurrent use by multiple
// goroutines — a single PackWall call owns exactly one Collector.
type Collector struct {
	warnings []Warning
}

// Add appends a Warning of the given kind with a formatted detail string.
// Complexity: O(1) amortized.
func (c *Collector) Add(kind Kind, format string, args ...interface{}) {
	c.warnings = append(c.warnings, Warning{Kind: kind, Details: fmt.Sprintf(format, args...)})
}

// Warnings returns the accumulated Warnings in emission order. The
// returned slice is owned by the caller; Collector keeps its own backing
// array and will not mutate a previously returned slice.
func (c *Collector) Warnings() []Warning {
	if len(c.warnings) == 0 {
		return nil
	}
	out := make([]Warning, len(c.warnings))
	copy(out, c.warnings)

	return out
}

// Len reports how many Warnings have been collected so far.
func (c *Collector) Len() int {
	return len(c.warnings)
}
