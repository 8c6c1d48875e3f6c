package testkit_test

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tasker/pkg/testkit"
)

// echoHandler powers the testkit self-tests.
var echoHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/echo" {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "not found")
		return
	}
	body, _ := io.ReadAll(r.Body)
	w.Header().Set("Content-Type", r.Header.Get("Content-Type"))
	_, _ = w.Write(body)
})

func TestRunDir(t *testing.T) {
	testkit.RunDir(t, echoHandler, "testdata")
}

func TestLoadFileSingleObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"one","requestUrl":"/echo","expectedStatusCode":201}`), 0o644))

	scenarios, err := testkit.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 1)
	assert.Equal(t, "GET", scenarios[0].RequestMethod)
	assert.Equal(t, 201, scenarios[0].ExpectedCode)
}

func TestLoadFileRejectsIncomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"no url","expectedCode":200}]`), 0o644))

	_, err := testkit.LoadFile(path)
	assert.ErrorContains(t, err, "requestUrl is required")
}

func TestDoSendsRawBody(t *testing.T) {
	raw := `{"title":`
	rec := testkit.Do(t, echoHandler, &testkit.Scenario{
		Name:          "raw",
		RequestMethod: "POST",
		RequestURL:    "/echo",
		RawBody:       &raw,
		ContentType:   "text/plain",
	})
	assert.Equal(t, raw, rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestAssertJSONBodyIgnoresFields(t *testing.T) {
	s := &testkit.Scenario{Name: "ignore", IgnoreFields: []string{"createAt", "id"}}
	testkit.AssertJSONBody(t, s,
		[]byte(`[{"title":"a","done":false}]`),
		[]byte(`[{"id":3,"title":"a","done":false,"createAt":"2026-10-19T10:00:00Z"}]`),
	)
}
