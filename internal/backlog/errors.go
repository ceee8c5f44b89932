package backlog

import "fmt"

// APIError represents an error response from the Backlog API.
type APIError struct {
	StatusCode int    // HTTP status code (e.g. 401, 404)
	Message    string // human-readable message from the API, or the status text
	Code       int    // Backlog error code (e.g. 11 for authentication failure)
	MoreInfo   string // extra detail, usually empty
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("backlog api status %d: %s (code %d)", e.StatusCode, e.Message, e.Code)
	}
	return fmt.Sprintf("backlog api status %d: %s", e.StatusCode, e.Message)
}

// errorResponse is the error body shape the Backlog API returns,
// e.g. {"errors":[{"message":"Authentication failure","code":11,"moreInfo":""}]}.
type errorResponse struct {
	Errors []struct {
		Message  string `json:"message"`
		Code     int    `json:"code"`
		MoreInfo string `json:"moreInfo"`
	} `json:"errors"`
}
