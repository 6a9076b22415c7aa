package catalogsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes returned by the service. Credential failures share a single
// undifferentiated code; the OTP flow reports distinct codes so clients can
// prompt for re-entry versus re-issue.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeDuplicateIdentity  = "duplicate_identity"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeNoPendingOTP       = "no_pending_otp"
	ErrorCodeOTPMismatch        = "otp_mismatch"
	ErrorCodeOTPExpired         = "otp_expired"
	ErrorCodeServerError        = "server_error"
)

// APIError represents an error response from the service. It implements the
// error interface and is returned by every SDK call that fails server-side.
type APIError struct {
	// StatusCode is the HTTP status code of the failed response
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// parseErrorResponse turns a non-2xx response body into an *APIError.
// Bodies that aren't the standard error shape still produce a usable error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil || er.Error == "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        ErrorCodeServerError,
			Description: fmt.Sprintf("unexpected response (status %d)", resp.StatusCode),
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        er.Error,
		Description: er.ErrorDescription,
	}
}
