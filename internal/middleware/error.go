package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

// ErrorResponse is the JSON body for every error status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// errorRecorder captures non-JSON error bodies so they can be
// rewrapped as JSON. Handlers that already answer errors as JSON pass
// through untouched.
type errorRecorder struct {
	http.ResponseWriter
	statusCode  int
	body        string
	intercepted bool
}

func (r *errorRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *errorRecorder) Write(b []byte) (int, error) {
	if r.statusCode >= 400 && !strings.HasPrefix(r.Header().Get("Content-Type"), "application/json") {
		// Hold the original body; the deferred handler writes the
		// JSON form instead.
		r.body = strings.TrimSpace(string(b))
		r.intercepted = true
		return len(b), nil
	}
	return r.ResponseWriter.Write(b)
}

// ErrorHandler wraps a handler so that plain-text error bodies and
// panics both come back to the client as JSON error responses. Error
// responses that are already JSON are left alone.
func ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &errorRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Panic serving %s %s: %v", r.Method, r.URL.Path, err)
				rec.Header().Set("Content-Type", "application/json")
				rec.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(rec.ResponseWriter).Encode(ErrorResponse{Error: "Internal Server Error"})
			} else if rec.intercepted {
				rec.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(ErrorResponse{Error: rec.body})
			}
		}()

		next.ServeHTTP(rec, r)
	})
}
