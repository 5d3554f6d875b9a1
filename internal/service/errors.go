package service

import "fmt"

// ErrorKind classifies service failures for the HTTP layer.
type ErrorKind int

const (
	KindValidation ErrorKind = iota // rejected before any write
	KindState                       // illegal status transition
	KindNotFound                    // unknown id
)

// Error is a machine-readable service error: a stable code plus a message,
// surfaced verbatim in HTTP error responses. None of these are retried.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func NewStateError(code, message string) *Error {
	return &Error{Kind: KindState, Code: code, Message: message}
}

func NewNotFoundError(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

var (
	// Request workflow
	ErrUserExists        = NewValidationError("REQ_001", "User email already exists.")
	ErrRequestExists     = NewValidationError("REQ_002", "There is already a pending request with the same admin email address or phone.")
	ErrRequestNotPending = NewStateError("REQ_003", "Could not update a request with other status than pending.")
	ErrRequestNotFound   = NewNotFoundError("REQ_004", "Request not found.")

	// Organization
	ErrOrganizationNotFound   = NewNotFoundError("ORG_001", "Organization not found.")
	ErrOrganizationIncomplete = NewValidationError("ORG_002", "Organization payload is missing a required profile section.")

	// User
	ErrUserNotFound = NewNotFoundError("USR_001", "User not found.")

	// Auth
	ErrInvalidCredentials = NewValidationError("AUTH_001", "Invalid email or password.")

	// Application
	ErrApplicationLoginLink = NewValidationError("APP_001", "Login link is required for applications that are not independent.")
	ErrApplicationNotFound  = NewNotFoundError("APP_002", "Application not found.")
)
