package vlrgg

import (
	"errors"
	"fmt"
)

// Application error codes. Parsers tag what went wrong so callers can
// branch on the failure kind while keeping the full context for
// diagnostics.
const (
	EHTTP      = "http"              // transport failure
	ESTATUS    = "unexpected_status" // non-2xx response
	EBODY      = "response_body"     // response body could not be read
	ESELECTOR  = "selector"         // malformed CSS selector
	EINTPARSE  = "int_parse"        // integer text could not be parsed
	EDATEPARSE = "date_parse"       // date text matched no supported layout
	ENOTFOUND  = "not_found"        // required element or record missing
	EINVALID   = "invalid"          // invalid caller input
	EINTERNAL  = "internal"         // unclassified failure
)

// Error represents an application error. Code classifies the failure;
// URL and Field locate it on the page being extracted, when known.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string

	// URL of the page that was being processed.
	URL string

	// Field describes the value that was being extracted,
	// e.g. "team name in match header".
	Field string

	// Underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	s := fmt.Sprintf("vlrgg error: code=%s message=%s", e.Code, e.Message)
	if e.Field != "" {
		s += fmt.Sprintf(" field=%q", e.Field)
	}
	if e.URL != "" {
		s += " url=" + e.URL
	}
	return s
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// ErrorCode returns the code of the given error, if available,
// EINTERNAL for any non-application error, and the empty string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the given error, if available.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// ErrorURL returns the page URL recorded on the given error, if any.
func ErrorURL(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.URL
	}
	return ""
}

// ErrorField returns the field description recorded on the given error,
// if any.
func ErrorField(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// Errorf returns a new Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError attaches page context to err without changing its code.
// URL and field fill only the corresponding slots that are still empty,
// so the innermost (most specific) context wins. Non-application errors
// are converted to EINTERNAL. Returns nil if err is nil.
func WrapError(err error, url, field string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		out := *e
		if out.URL == "" {
			out.URL = url
		}
		if out.Field == "" {
			out.Field = field
		}
		return &out
	}
	return &Error{
		Code:    EINTERNAL,
		Message: err.Error(),
		URL:     url,
		Field:   field,
		Err:     err,
	}
}
