package testkit

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

// Run executes every scenario in the file at path against handler, each as
// a subtest.
func Run(t *testing.T, handler http.Handler, path string) {
	t.Helper()

	scenarios, err := LoadFile(path)
	if err != nil {
		t.Fatalf("%v", err)
	}
	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			runScenario(t, handler, s)
		})
	}
}

// RunDir runs every *.json scenario file in dir in lexical order. Files whose
// name ends in _req.json or _res.json are body fixtures and are skipped.
func RunDir(t *testing.T, handler http.Handler, dir string) {
	t.Helper()

	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(entries) == 0 {
		t.Fatalf("testkit: no scenario files found in %q", dir)
	}

	for _, path := range entries {
		base := filepath.Base(path)
		if strings.HasSuffix(base, "_req.json") || strings.HasSuffix(base, "_res.json") {
			continue
		}
		Run(t, handler, path)
	}
}

// Do fires the scenario's request against handler and returns the recorder
// without asserting anything.
func Do(t *testing.T, handler http.Handler, s *Scenario) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody io.Reader
	data, ok, err := s.body()
	if err != nil {
		t.Fatalf("[%s] read request body: %v", s.Name, err)
	}
	if ok {
		reqBody = bytes.NewReader(data)
	}

	req := httptest.NewRequest(strings.ToUpper(s.RequestMethod), s.RequestURL, reqBody)
	if ok {
		ct := s.ContentType
		if ct == "" {
			ct = "application/json"
		}
		req.Header.Set("Content-Type", ct)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range s.Headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func runScenario(t *testing.T, handler http.Handler, s *Scenario) {
	t.Helper()

	rec := Do(t, handler, s)

	AssertStatusCode(t, s, rec.Code)
	AssertHeaders(t, s, rec.Header())

	expected, err := s.expected()
	if err != nil {
		t.Errorf("[%s] read response file: %v", s.Name, err)
	} else if expected != nil {
		AssertJSONBody(t, s, expected, rec.Body.Bytes())
	}

	if s.ResponseContains != "" && !strings.Contains(rec.Body.String(), s.ResponseContains) {
		t.Errorf("[%s] response body does not contain %q\nbody: %s", s.Name, s.ResponseContains, rec.Body.String())
	}
}
