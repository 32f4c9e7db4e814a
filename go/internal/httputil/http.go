// Package httputil holds the JSON response helpers and middleware shared by
// the league admin endpoints.
package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
)

// JSON sends a JSON response.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// JSONError sends {"error": message}.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// MethodNotAllowed sends the 405 body used by every endpoint.
func MethodNotAllowed(w http.ResponseWriter) {
	JSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// ParseJSON decodes the request body into v. An empty body leaves v untouched.
func ParseJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// QueryInt64 parses an integer query parameter. ok is false when the
// parameter is absent.
func QueryInt64(r *http.Request, key string) (v int64, ok bool, err error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false, nil
	}
	v, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true, err
	}
	return v, true, nil
}
