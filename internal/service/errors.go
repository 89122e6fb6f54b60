package service

import "fmt"

// Error is a domain error returned by service methods.
// Handlers map these to HTTP responses through httputil.RespondError.
type Error struct {
	Kind        ErrorKind
	Code        string // machine-readable error code (e.g., "MISSING_ID", "UNKNOWN_CITY")
	Description string // human-readable message
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// ErrorKind classifies domain errors for HTTP status mapping.
// The set is closed; every switch over it must list all kinds.
type ErrorKind int

const (
	KindBadRequest    ErrorKind = iota // 400
	KindForbidden                      // 403
	KindNotFound                       // 404
	KindConfiguration                  // 500, operator's fault
	KindInternal                       // 500
)

// Error codes shared between handlers and services.
const (
	CodeGeneralError       = "GENERAL_ERROR"
	CodeMissingEnv         = "MISSING_ENV"
	CodeMissingID          = "MISSING_ID"
	CodeInvalidID          = "INVALID_ID"
	CodeInvalidName        = "INVALID_NAME"
	CodeMissingPermission  = "MISSING_PERMISSION"
	CodeUnknownCity        = "UNKNOWN_CITY"
	CodePermissionRequired = "PERMISSION_REQUIRED"
	CodeRouteNotFound      = "ROUTE_NOT_FOUND"
)

func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConfiguration:
		return "configuration_error"
	case KindInternal:
		return "internal_server_error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func NewBadRequest(code, description string) *Error {
	return &Error{Kind: KindBadRequest, Code: code, Description: description}
}

func NewForbidden(code, description string) *Error {
	return &Error{Kind: KindForbidden, Code: code, Description: description}
}

func NewNotFound(code, description string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Description: description}
}

func NewConfigurationError(code, description string) *Error {
	return &Error{Kind: KindConfiguration, Code: code, Description: description}
}

func NewInternal(code, description string) *Error {
	return &Error{Kind: KindInternal, Code: code, Description: description}
}
