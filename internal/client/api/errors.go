package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// APIError is a non-2xx response. Body is the raw response body, kept so
// views can show the server's own validation messages.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// FieldErrorText renders a server error body for display.
//
// The service answers validation failures either with a plain string, or
// with a field -> message(s) object in which a "detail" key, when present,
// already carries the whole story. Field messages come as arrays.
func FieldErrorText(body []byte) string {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return strings.TrimSpace(string(body))
	}

	switch value := v.(type) {
	case string:
		return value
	case map[string]any:
		if detail, ok := value["detail"]; ok {
			return messageText(detail)
		}
		keys := make([]string, 0, len(value))
		for k := range value {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		lines := make([]string, 0, len(keys))
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s: %s", k, messageText(value[k])))
		}
		return strings.Join(lines, " | ")
	default:
		return strings.TrimSpace(string(body))
	}
}

// messageText flattens a single field's messages: arrays joined by spaces,
// everything else stringified.
func messageText(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case []any:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			parts = append(parts, messageText(item))
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprintf("%v", value)
	}
}

// ErrorText is the user-facing text for a failed call: the normalized
// server body when there is one, otherwise the view's fixed fallback
// (transport failures have no body to show).
func ErrorText(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if text := FieldErrorText(apiErr.Body); text != "" {
			return text
		}
	}
	return fallback
}
