package assertion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefinition_JSONOmitEmpty(t *testing.T) {
	def := Definition{Type: "has_item", Target: "tags"}

	data, err := json.Marshal(def)
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":"has_item","target":"tags"}`, string(data))
}

func TestDefinition_YAMLTypes(t *testing.T) {
	var def Definition
	err := yaml.Unmarshal([]byte(`
type: has_items
target: numbers
values: [3, 4.5, "x", null]
message: must contain them
`), &def)
	require.NoError(t, err)

	assert.Equal(t, "has_items", def.Type)
	assert.Equal(t, "numbers", def.Target)
	assert.Equal(t, []any{3, 4.5, "x", nil}, def.Values)
	assert.Equal(t, "must contain them", def.Message)
}

func TestResult_JSON(t *testing.T) {
	r := Result{
		Type:     "has_item",
		Target:   "tags",
		Expected: `a collection containing "go"`,
		Actual:   []string{"rust"},
		Passed:   false,
		Mismatch: `mismatches were: [was "rust"]`,
		Message:  "failed",
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, false, decoded["passed"])
	assert.Equal(t, `mismatches were: [was "rust"]`, decoded["mismatch"])
}
