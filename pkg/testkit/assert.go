package testkit

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode checks the response code with testify.
func AssertStatusCode(t *testing.T, scenario *Scenario, got int) {
	t.Helper()
	assert.Equal(t, scenario.ExpectedCode, got,
		"[%s] HTTP status code mismatch", scenario.Name)
}

// AssertHeaders checks every expected header. An empty expected value asserts
// the header is absent.
func AssertHeaders(t *testing.T, scenario *Scenario, got http.Header) {
	t.Helper()
	for k, want := range scenario.ExpectedHeaders {
		assert.Equal(t, want, got.Get(k), "[%s] header %s mismatch", scenario.Name, k)
	}
}

// AssertJSONBody deep-compares actual response bytes against the expected
// JSON after normalising both through unmarshal, so key order and whitespace
// never matter. Keys listed in scenario.IgnoreFields are dropped from both
// sides first.
func AssertJSONBody(t *testing.T, scenario *Scenario, expected, actual []byte) {
	t.Helper()
	if len(expected) == 0 {
		return
	}

	var expVal, actVal interface{}

	require.NoError(t,
		json.Unmarshal(expected, &expVal),
		"[%s] expected response is not valid JSON", scenario.Name,
	)

	if !assert.NoError(t,
		json.Unmarshal(actual, &actVal),
		"[%s] actual response is not valid JSON\nbody: %s", scenario.Name, string(actual),
	) {
		return
	}

	ignore := make(map[string]bool, len(scenario.IgnoreFields))
	for _, f := range scenario.IgnoreFields {
		ignore[f] = true
	}

	assert.Equal(t, strip(expVal, ignore), strip(actVal, ignore),
		"[%s] response body mismatch", scenario.Name)
}

func strip(v interface{}, ignore map[string]bool) interface{} {
	if len(ignore) == 0 {
		return v
	}
	switch x := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, val := range x {
			if !ignore[k] {
				out[k] = strip(val, ignore)
			}
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, val := range x {
			out[i] = strip(val, ignore)
		}
		return out
	}
	return v
}
