// Package errors is corky's error taxonomy.
//
// Every failure the engine reports carries a Code. Callers branch on the
// code (IsErrorCode), the CLI maps it onto an exit status (ExitCode) and
// tests read the structured details (DetailsOf, StepOf) rather than
// matching message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a failure.
type ErrorCode string

const (
	// Caller mistakes, detected before anything external runs.
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// git or gh ran and exited non-zero.
	ErrExternalCommand ErrorCode = "EXTERNAL_COMMAND"
	// The project root, a required tool or the owner identity is missing.
	ErrEnvironment ErrorCode = "ENVIRONMENT"

	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrFileAccess  ErrorCode = "FILE_ACCESS"
	ErrFileWrite   ErrorCode = "FILE_WRITE"

	ErrInternal ErrorCode = "INTERNAL"
	// ErrUnknown is reported for errors that did not come from this package.
	ErrUnknown ErrorCode = "UNKNOWN"
)

// Process exit statuses.
const (
	ExitOK          = 0
	ExitDomain      = 1
	ExitEnvironment = 2
)

// Detail keys shared by the constructors.
const (
	DetailID       = "id"
	DetailPath     = "path"
	DetailStep     = "step"
	DetailArgv     = "argv"
	DetailExitCode = "exit_code"
	DetailStderr   = "stderr"
)

// CorkyError is a coded error. The message is what users see; the code and
// details are for callers.
type CorkyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *CorkyError) Error() string {
	if e.Wrapped == nil {
		return e.Message
	}
	return e.Message + ": " + e.Wrapped.Error()
}

func (e *CorkyError) Unwrap() error {
	return e.Wrapped
}

// Is matches any CorkyError with the same code, so
// errors.Is(err, errors.New(ErrNotFound, "")) works as a code test.
func (e *CorkyError) Is(target error) bool {
	t, ok := target.(*CorkyError)
	return ok && t.Code == e.Code
}

// WithDetail records key on the error and returns it for chaining.
func (e *CorkyError) WithDetail(key string, value interface{}) *CorkyError {
	if e.Details == nil {
		e.Details = map[string]interface{}{}
	}
	e.Details[key] = value
	return e
}

func build(code ErrorCode, cause error, message string) *CorkyError {
	return &CorkyError{Code: code, Message: message, Details: map[string]interface{}{}, Wrapped: cause}
}

func New(code ErrorCode, message string) *CorkyError {
	return build(code, nil, message)
}

func Newf(code ErrorCode, format string, args ...interface{}) *CorkyError {
	return build(code, nil, fmt.Sprintf(format, args...))
}

// Wrap attaches a code and message to err. A nil err stays nil.
func Wrap(err error, code ErrorCode, message string) *CorkyError {
	if err == nil {
		return nil
	}
	return build(code, err, message)
}

func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CorkyError {
	if err == nil {
		return nil
	}
	return build(code, err, fmt.Sprintf(format, args...))
}

func find(err error) *CorkyError {
	var ce *CorkyError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}

// IsErrorCode reports whether the outermost CorkyError in err's chain has code.
func IsErrorCode(err error, code ErrorCode) bool {
	ce := find(err)
	return ce != nil && ce.Code == code
}

// CodeOf returns err's code, ErrUnknown for foreign errors and "" for nil.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	if ce := find(err); ce != nil {
		return ce.Code
	}
	return ErrUnknown
}

// DetailsOf returns the details of the outermost CorkyError in err's chain.
func DetailsOf(err error) map[string]interface{} {
	if ce := find(err); ce != nil {
		return ce.Details
	}
	return nil
}

// ExitCode maps err onto the exit status contract: environment failures
// exit 2, every other failure 1.
func ExitCode(err error) int {
	switch CodeOf(err) {
	case "":
		return ExitOK
	case ErrEnvironment:
		return ExitEnvironment
	default:
		return ExitDomain
	}
}
