package assertion

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ValidationError represents a problem found in a suite.
type ValidationError struct {
	Field   string
	Message string
	Index   int // -1 if not applicable
}

func (e ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("assertions[%d].%s: %s", e.Index, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateSuite checks the structure of a suite and returns every
// problem found as a *multierror.Error of ValidationError values,
// or nil.
func ValidateSuite(suite *Suite) error {
	var errs *multierror.Error

	if suite.Version == "" {
		errs = multierror.Append(errs, ValidationError{
			Field: "version", Message: "version is required", Index: -1,
		})
	}
	if len(suite.Assertions) == 0 {
		errs = multierror.Append(errs, ValidationError{
			Field: "assertions", Message: "at least one assertion is required", Index: -1,
		})
	}

	for i, a := range suite.Assertions {
		if a.Type == "" {
			errs = multierror.Append(errs, ValidationError{
				Field: "type", Message: "assertion type is required", Index: i,
			})
		}
		if a.Target == "" {
			errs = multierror.Append(errs, ValidationError{
				Field: "target", Message: "assertion target is required", Index: i,
			})
		}
	}

	return errs.ErrorOrNil()
}

// Validate runs ValidateSuite and additionally builds every
// assertion, reporting unknown types and definitions the
// factories reject.
func (e *DefaultEngine) Validate(suite *Suite) error {
	var errs *multierror.Error
	if err := ValidateSuite(suite); err != nil {
		errs = multierror.Append(errs, err)
	}

	for i, a := range suite.Assertions {
		if a.Type == "" {
			continue
		}
		if _, err := e.Build(a); err != nil {
			errs = multierror.Append(errs, ValidationError{
				Field: "type", Message: err.Error(), Index: i,
			})
		}
	}

	return errs.ErrorOrNil()
}
