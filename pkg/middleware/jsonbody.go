package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/tasker/pkg/bind"
	"github.com/shashiranjanraj/tasker/pkg/logger"
	"github.com/shashiranjanraj/tasker/pkg/response"
)

// JSONBody parses JSON request bodies before handlers run. The parsed value is
// available through bind.Payload and the body is re-buffered so handlers may
// still read it. Malformed JSON is rejected with 400 and bodies larger than
// maxBytes with 413. Requests without a JSON content type pass through.
func JSONBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody || !isJSON(r.Header.Get("Content-Type")) {
				next.ServeHTTP(w, r)
				return
			}

			raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
			if err != nil {
				var maxErr *http.MaxBytesError
				if errors.As(err, &maxErr) {
					response.Error(w, http.StatusRequestEntityTooLarge, "Request body too large")
					return
				}
				logger.WithCtx(r.Context()).Warn("read request body", "error", err)
				response.BadRequest(w, "Could not read request body")
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(raw))

			if len(bytes.TrimSpace(raw)) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			var parsed interface{}
			if err := json.Unmarshal(raw, &parsed); err != nil {
				response.BadRequest(w, "Malformed JSON body")
				return
			}

			next.ServeHTTP(w, r.WithContext(bind.WithPayload(r.Context(), raw, parsed)))
		})
	}
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
