// Package spa serves a built single-page client. Paths that name a file under
// the static directory get that file; every other path outside the API prefix
// gets the index document so the client-side router can resolve it.
package spa

import (
	"net/http"
	"path"
	"strings"

	"github.com/shashiranjanraj/tasker/pkg/logger"
	"github.com/shashiranjanraj/tasker/pkg/response"
)

// APIPrefix is the path prefix reserved for the JSON API.
const APIPrefix = "/api"

// IsAPIPath reports whether p starts with the API prefix. This is a plain
// string prefix, so /apiary and /api-docs count as API paths too.
func IsAPIPath(p string) bool {
	return strings.HasPrefix(p, APIPrefix)
}

// Handler serves files from dir and falls back to dir/index for GET and HEAD.
// Existing files win over the API guard; an API path with no file never falls
// back. Those paths and other methods get a JSON 404.
func Handler(dir, index string) http.Handler {
	root := http.Dir(dir)
	index = "/" + strings.TrimPrefix(index, "/")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			response.NotFound(w)
			return
		}

		if serveFile(w, r, root, path.Clean("/"+r.URL.Path)) {
			return
		}
		if IsAPIPath(r.URL.Path) {
			response.NotFound(w)
			return
		}
		if serveFile(w, r, root, index) {
			return
		}

		logger.WithCtx(r.Context()).Warn("spa index missing", "dir", dir, "index", index)
		response.NotFound(w)
	})
}

// serveFile writes name from root and reports whether it was a regular file.
func serveFile(w http.ResponseWriter, r *http.Request, root http.FileSystem, name string) bool {
	f, err := root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}
