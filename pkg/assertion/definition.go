// Package assertion evaluates declarative assertion definitions
// by resolving each one to a matcher. It ships with equal_to,
// has_item and has_items and supports registering further
// matcher factories.
package assertion

import "digital.vasic.matchers/pkg/matcher"

// Definition describes a single assertion to evaluate against a
// named value.
type Definition struct {
	// Type selects the matcher factory (e.g., "equal_to",
	// "has_item", "has_items").
	Type string `json:"type" yaml:"type"`

	// Target is the name of the value to check.
	Target string `json:"target" yaml:"target"`

	// Value is the expected value for single-value matchers.
	Value any `json:"value,omitempty" yaml:"value,omitempty"`

	// Values holds expected values for multi-value matchers
	// (e.g., "has_items").
	Values []any `json:"values,omitempty" yaml:"values,omitempty"`

	// Message is the reason shown on failure.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Factory builds the matcher for a definition. It returns an
// error when the definition cannot describe a valid matcher.
type Factory func(def Definition) (matcher.Matcher, error)

// Result captures the outcome of evaluating a single assertion.
type Result struct {
	// Type is the assertion type that was evaluated.
	Type string `json:"type"`

	// Target is the name of the value checked.
	Target string `json:"target"`

	// Expected is the matcher's description.
	Expected string `json:"expected,omitempty"`

	// Actual is the value that was observed.
	Actual any `json:"actual"`

	// Passed indicates whether the assertion succeeded.
	Passed bool `json:"passed"`

	// Mismatch explains why the value did not match. Empty
	// when the assertion passed.
	Mismatch string `json:"mismatch,omitempty"`

	// Message is the full human-readable outcome.
	Message string `json:"message"`
}
