package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to the dashboard client
const (
	// Authentication errors (1000-1999)
	ErrInvalidCredentials    = "AUTH_001" // invalid username or password
	ErrUserNotFound          = "AUTH_002" // user not present in the credential list
	ErrInvalidToken          = "AUTH_003" // invalid token
	ErrExpiredToken          = "AUTH_004" // expired token
	ErrInsufficientPrivilege = "AUTH_005" // insufficient privileges

	// Validation errors (2000-2999)
	ErrInvalidRequest      = "VAL_001" // malformed request
	ErrMissingRequiredData = "VAL_002" // required data missing
	ErrInvalidFormat       = "VAL_003" // invalid data format
	ErrInvalidPeriod       = "VAL_004" // unknown period mode

	// Server errors (5000-5999)
	ErrInternalServer  = "SRV_001" // internal server error
	ErrExternalService = "SRV_002" // upstream inventory API failure
	ErrCommunication   = "SRV_003" // communication failure
)

// httpStatusMap maps error codes to HTTP statuses
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserNotFound:          http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidPeriod:         http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError is the standard error payload
type APIError struct {
	Code    string `json:"code"`              // machine-readable error code
	Message string `json:"message,omitempty"` // human-readable description
	Details any    `json:"details,omitempty"` // optional extra context
}

// WriteError writes the standard error payload to the HTTP response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error into an API error with the given code
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
