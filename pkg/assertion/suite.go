package assertion

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Suite is a named, versioned set of assertion definitions as
// stored in a YAML file:
//
//	version: "1"
//	name: inventory
//	assertions:
//	  - type: has_items
//	    target: fruits
//	    values: [apple, pear]
//	    message: basket must hold both fruits
type Suite struct {
	Version    string       `yaml:"version"`
	Name       string       `yaml:"name,omitempty"`
	Assertions []Definition `yaml:"assertions"`

	// Source is the file the suite was loaded from, if any.
	Source string `yaml:"-"`
}

// Parse decodes a YAML suite. It does not validate it; see
// ValidateSuite and DefaultEngine.Validate.
func Parse(data []byte) (*Suite, error) {
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parse suite: %w", err)
	}
	return &suite, nil
}

// LoadFile reads and decodes the YAML suite at path.
func LoadFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file %s: %w", path, err)
	}

	suite, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	suite.Source = path
	return suite, nil
}

// LoadDir loads every .yaml and .yml file in dir, in file name
// order.
func LoadDir(dir string) ([]*Suite, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read suite directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	suites := make([]*Suite, 0, len(names))
	for _, name := range names {
		suite, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		suites = append(suites, suite)
	}
	return suites, nil
}

// EvaluateSuite runs every assertion of suite against values.
func EvaluateSuite(
	engine Engine,
	suite *Suite,
	values map[string]any,
) []Result {
	return engine.EvaluateAll(suite.Assertions, values)
}
