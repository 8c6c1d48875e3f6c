// Package testkit drives HTTP API tests from JSON scenario files.
//
// Each scenario describes the request to fire and what the response must look
// like. A file holds one scenario object or an array of them; arrays run in
// order, so a file can script a stateful flow (create, then read back):
//
//	testdata/
//	  010_tasks_crud.json     ← scenarios
//	  create_task_req.json    ← request body referenced by requestFileName
//	  create_task_res.json    ← expected body referenced by responseFileName
//
// Example _test.go:
//
//	func TestAPI(t *testing.T) {
//	    testkit.RunDir(t, application.Handler(), "testdata")
//	}
package testkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Scenario describes a single HTTP API test case.
type Scenario struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// Request
	RequestMethod   string            `json:"requestMethod"`   // GET, POST, PUT, DELETE; defaults to GET
	RequestURL      string            `json:"requestUrl"`      // e.g. /api/tasks/1
	RequestFileName string            `json:"requestFileName"` // JSON body file, relative to the scenario file
	RequestBody     json.RawMessage   `json:"requestBody"`     // inline JSON body
	RawBody         *string           `json:"rawBody"`         // body sent verbatim (malformed payloads)
	ContentType     string            `json:"contentType"`     // defaults to application/json when a body is sent
	Headers         map[string]string `json:"headers"`

	// Response assertions
	ExpectedCode       int               `json:"expectedCode"`
	ExpectedStatusCode int               `json:"expectedStatusCode"` // alias for expectedCode
	ExpectedHeaders    map[string]string `json:"expectedHeaders"`
	ResponseFileName   string            `json:"responseFileName"` // expected JSON body file
	ResponseBody       json.RawMessage   `json:"responseBody"`     // inline expected JSON body
	ResponseContains   string            `json:"responseContains"` // substring of a non-JSON body
	IgnoreFields       []string          `json:"ignoreFields"`     // object keys dropped before comparing, at any depth

	dir string // directory of the scenario file, resolved at load time
}

// LoadFile reads every scenario in path. The file may contain one object or
// an array of objects.
func LoadFile(path string) ([]*Scenario, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("testkit: resolve path %q: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("testkit: read %q: %w", abs, err)
	}

	var scenarios []*Scenario
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &scenarios)
	} else {
		var s Scenario
		err = json.Unmarshal(trimmed, &s)
		scenarios = []*Scenario{&s}
	}
	if err != nil {
		return nil, fmt.Errorf("testkit: parse %q: %w", abs, err)
	}

	for i, s := range scenarios {
		s.dir = filepath.Dir(abs)
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("testkit: invalid scenario %d in %q: %w", i, abs, err)
		}
	}
	return scenarios, nil
}

// validate performs basic sanity checks and fills defaults.
func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.RequestURL == "" {
		return fmt.Errorf("requestUrl is required")
	}
	if s.ExpectedCode == 0 {
		s.ExpectedCode = s.ExpectedStatusCode
	}
	if s.ExpectedCode == 0 {
		return fmt.Errorf("expectedCode is required")
	}
	if s.RequestMethod == "" {
		s.RequestMethod = "GET"
	}
	if s.ResponseFileName != "" && len(s.ResponseBody) > 0 {
		return fmt.Errorf("responseFileName and responseBody are mutually exclusive")
	}
	return nil
}

// body returns the request payload and whether one was configured.
func (s *Scenario) body() ([]byte, bool, error) {
	switch {
	case s.RawBody != nil:
		return []byte(*s.RawBody), true, nil
	case len(s.RequestBody) > 0:
		return s.RequestBody, true, nil
	case s.RequestFileName != "":
		data, err := os.ReadFile(s.resolve(s.RequestFileName))
		return data, err == nil, err
	}
	return nil, false, nil
}

// expected returns the expected JSON body, or nil when none is asserted.
func (s *Scenario) expected() ([]byte, error) {
	if len(s.ResponseBody) > 0 {
		return s.ResponseBody, nil
	}
	if s.ResponseFileName != "" {
		return os.ReadFile(s.resolve(s.ResponseFileName))
	}
	return nil, nil
}

func (s *Scenario) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}
