package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-success response from the service.
type APIError struct {
	// StatusCode is the HTTP status of the response
	StatusCode int

	// Message is the server's user-facing message
	Message string

	// NeedsActivation is set when a login hit an inactive account
	NeedsActivation bool

	// Email is the address a fresh activation link was sent to
	Email string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("auth: status %d", e.StatusCode)
	}
	return fmt.Sprintf("auth: status %d: %s", e.StatusCode, e.Message)
}

// parseErrorResponse builds an *APIError from a non-success response body.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var payload struct {
		Message         string `json:"message"`
		NeedsActivation bool   `json:"needsActivation"`
		Data            struct {
			Email string `json:"email"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		apiErr.Message = http.StatusText(resp.StatusCode)
		return apiErr
	}

	apiErr.Message = payload.Message
	apiErr.NeedsActivation = payload.NeedsActivation
	apiErr.Email = payload.Data.Email
	return apiErr
}
