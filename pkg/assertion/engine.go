package assertion

import (
	"errors"
	"fmt"
	"sync"

	"digital.vasic.matchers/pkg/expect"
	"digital.vasic.matchers/pkg/iterable"
	"digital.vasic.matchers/pkg/logging"
	"digital.vasic.matchers/pkg/matcher"
)

// Engine defines the interface for assertion evaluation engines.
type Engine interface {
	// Build resolves a definition to its matcher.
	Build(assertion Definition) (matcher.Matcher, error)

	// Evaluate checks a single assertion against the given
	// value.
	Evaluate(assertion Definition, value any) Result

	// EvaluateAll checks multiple assertions against a map of
	// named values. Each assertion's Target field is used as
	// the key into the values map.
	EvaluateAll(
		assertions []Definition,
		values map[string]any,
	) []Result

	// Register adds a matcher factory for the given assertion
	// type. Returns an error if the type is already registered.
	Register(assertionType string, factory Factory) error
}

// EngineOption configures a DefaultEngine.
type EngineOption func(*DefaultEngine)

// WithLogger sets the logger evaluation outcomes are written
// to. The default discards them.
func WithLogger(logger logging.Logger) EngineOption {
	return func(e *DefaultEngine) {
		e.logger = logger
	}
}

// DefaultEngine is the standard Engine implementation. It is
// safe for concurrent use.
type DefaultEngine struct {
	mu        sync.RWMutex
	factories map[string]Factory
	logger    logging.Logger
}

// NewEngine creates a DefaultEngine with the built-in matcher
// factories pre-registered.
func NewEngine(opts ...EngineOption) *DefaultEngine {
	e := &DefaultEngine{
		factories: make(map[string]Factory),
		logger:    logging.NullLogger{},
	}
	e.registerDefaults()
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *DefaultEngine) registerDefaults() {
	e.factories["equal_to"] = buildEqualTo
	e.factories["has_item"] = buildHasItem
	e.factories["has_items"] = buildHasItems
}

// Register adds a matcher factory for the given assertion type.
// Returns an error if the type is already registered.
func (e *DefaultEngine) Register(
	assertionType string,
	factory Factory,
) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.factories[assertionType]; exists {
		return fmt.Errorf(
			"assertion type already registered: %s",
			assertionType,
		)
	}

	e.factories[assertionType] = factory
	return nil
}

// HasFactory returns true if the given assertion type has a
// registered factory.
func (e *DefaultEngine) HasFactory(assertionType string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, exists := e.factories[assertionType]
	return exists
}

// Build resolves a definition to its matcher. Factories that
// panic on invalid input have the panic reported as an error.
func (e *DefaultEngine) Build(
	assertion Definition,
) (m matcher.Matcher, err error) {
	e.mu.RLock()
	factory, exists := e.factories[assertion.Type]
	e.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf(
			"unknown assertion type: %s", assertion.Type,
		)
	}

	defer func() {
		if r := recover(); r != nil {
			m = nil
			err = fmt.Errorf(
				"build %s assertion: %v", assertion.Type, r,
			)
		}
	}()

	m, err = factory(assertion)
	if err != nil {
		return nil, fmt.Errorf(
			"build %s assertion: %w", assertion.Type, err,
		)
	}
	if m == nil {
		return nil, fmt.Errorf(
			"build %s assertion: factory returned no matcher",
			assertion.Type,
		)
	}
	return m, nil
}

// Evaluate runs a single assertion against the provided value.
func (e *DefaultEngine) Evaluate(
	assertion Definition,
	value any,
) Result {
	log := e.logger.WithFields(
		logging.StringField("type", assertion.Type),
		logging.StringField("target", assertion.Target),
	)

	m, err := e.Build(assertion)
	if err != nil {
		log.Error("assertion could not be built", logging.ErrorField(err))
		return Result{
			Type:    assertion.Type,
			Target:  assertion.Target,
			Actual:  value,
			Passed:  false,
			Message: err.Error(),
		}
	}

	result := Result{
		Type:     assertion.Type,
		Target:   assertion.Target,
		Expected: matcher.Describe(m),
		Actual:   value,
		Passed:   true,
		Message:  "matched " + matcher.Describe(m),
	}

	var failure *expect.Failure
	if err := expect.Check(assertion.Message, value, m); errors.As(err, &failure) {
		result.Passed = false
		result.Mismatch = failure.Mismatch
		result.Message = failure.Error()
	}

	if _, quiet := e.logger.(logging.NullLogger); quiet {
		return result
	}

	if !result.Passed {
		log.Warn("assertion failed",
			logging.StringField("expected", failure.Expected),
			logging.StringField("mismatch", failure.Mismatch),
		)
		log.Debug("assertion failed on value",
			logging.DumpField("actual", value),
		)
		return result
	}

	log.Debug("assertion passed", actualField(value))
	return result
}

// actualField renders value for the log. Single-pass values were
// consumed by the match and are logged by type only.
func actualField(value any) logging.Field {
	if iterable.SinglePass(value) {
		return logging.StringField("actual", fmt.Sprintf("<%T>", value))
	}
	return logging.ValueField("actual", value)
}

// EvaluateAll runs multiple assertions against a map of named
// values. Each assertion's Target field is used as the key into
// the values map. If a target is missing, the assertion fails.
func (e *DefaultEngine) EvaluateAll(
	assertions []Definition,
	values map[string]any,
) []Result {
	results := make([]Result, 0, len(assertions))

	for _, a := range assertions {
		value, exists := values[a.Target]
		if !exists {
			e.logger.Warn("assertion target missing",
				logging.StringField("target", a.Target),
			)
			results = append(results, Result{
				Type:   a.Type,
				Target: a.Target,
				Passed: false,
				Message: fmt.Sprintf(
					"target not found: %s", a.Target,
				),
			})
			continue
		}

		results = append(results, e.Evaluate(a, value))
	}

	return results
}
