package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrSessionExpired is returned when a 401 could not be recovered by the
// refresh flow; both tokens have been cleared by the time it is returned.
var ErrSessionExpired = errors.New("session expired, please log in again")

type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

type fieldError struct {
	Loc []string `json:"loc"`
	Msg string   `json:"msg"`
}

// newAPIError extracts a human-readable message from an error response body.
// Validation failures arrive as {"detail": [{loc, msg}]} and are flattened to
// "field: message; ..."; plain {"detail": "..."} and {"error": "..."} bodies
// pass through.
func newAPIError(status int, body []byte) *APIError {

	var validation struct {
		Detail []fieldError `json:"detail"`
	}
	if err := json.Unmarshal(body, &validation); err == nil && len(validation.Detail) > 0 {
		msg := ""
		for i, fe := range validation.Detail {
			if i > 0 {
				msg += "; "
			}
			field := ""
			if len(fe.Loc) > 0 {
				field = fe.Loc[len(fe.Loc)-1]
			}
			if field != "" {
				msg += field + ": " + fe.Msg
			} else {
				msg += fe.Msg
			}
		}
		return &APIError{Status: status, Message: msg}
	}

	var plain struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &plain); err == nil {
		if plain.Detail != "" {
			return &APIError{Status: status, Message: plain.Detail}
		}
		if plain.Error != "" {
			return &APIError{Status: status, Message: plain.Error}
		}
	}

	return &APIError{Status: status, Message: http.StatusText(status)}
}

// AsAPIError unwraps err into an *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
