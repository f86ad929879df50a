package dto

import (
	"net/http"
	"strings"
)

// ErrorResponse is the wire shape of every failure. Code is present only
// when the client needs a stable value to branch on without string matching.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// NewErrorResponse creates an error response without a machine-readable code
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// Domain error codes recognized at the HTTP boundary
const (
	CodeNotFound           = "NOT_FOUND"
	CodeAlreadyExists      = "ALREADY_EXISTS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeQuotaExceeded      = "QUOTA_EXCEEDED"
	CodeInvalidInput       = "INVALID_INPUT"
)

// domainCodeHTTPStatus maps domain error codes to HTTP status codes
var domainCodeHTTPStatus = map[string]int{
	CodeNotFound:           http.StatusNotFound,
	CodeAlreadyExists:      http.StatusConflict,
	CodeUnauthorized:       http.StatusUnauthorized,
	CodeForbidden:          http.StatusForbidden,
	CodeInvalidCredentials: http.StatusUnauthorized,
	CodeQuotaExceeded:      http.StatusForbidden,
	CodeInvalidInput:       http.StatusBadRequest,
}

// wireCodes maps domain error codes to the codes surfaced on the wire.
// Only quota denial carries a code; clients branch on it to show the
// upgrade prompt.
var wireCodes = map[string]string{
	CodeQuotaExceeded: "SUBSCRIPTION_LIMIT_REACHED",
}

// HTTPStatusForDomainCode returns the HTTP status for a domain error code.
// Validation codes follow the INVALID_ prefix convention; anything
// unrecognized is treated as an internal failure.
func HTTPStatusForDomainCode(code string) int {
	if status, ok := domainCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// WireCodeForDomainCode returns the machine-readable code to expose for a
// domain error code, or empty when the error carries none.
func WireCodeForDomainCode(code string) string {
	return wireCodes[code]
}
