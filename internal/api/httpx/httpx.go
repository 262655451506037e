// Package httpx writes the uniform response envelope every handler
// uses: {success, error, statusCode, message, <resource key>...}.
package httpx

import (
	"encoding/json"
	"net/http"
)

func write(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// OK writes a success envelope. extra holds the resource-specific
// keys ("user", "blog", "blogs", "token").
func OK(w http.ResponseWriter, status int, msg string, extra map[string]any) {
	body := map[string]any{
		"success":    true,
		"error":      false,
		"statusCode": status,
		"message":    msg,
	}
	for k, v := range extra {
		body[k] = v
	}
	write(w, status, body)
}

// Fail writes a failure envelope.
func Fail(w http.ResponseWriter, status int, msg string) {
	write(w, status, map[string]any{
		"success":    false,
		"error":      true,
		"statusCode": status,
		"message":    msg,
	})
}

// FailWith is Fail plus extra keys (e.g. an empty result set).
func FailWith(w http.ResponseWriter, status int, msg string, extra map[string]any) {
	body := map[string]any{
		"success":    false,
		"error":      true,
		"statusCode": status,
		"message":    msg,
	}
	for k, v := range extra {
		body[k] = v
	}
	write(w, status, body)
}
