package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType classifies failures at the provider-client boundary.
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota

	// ErrorTypeNetwork covers transport failures and timeouts.
	ErrorTypeNetwork

	// ErrorTypeDecode covers responses whose shape violates the expected schema.
	ErrorTypeDecode

	// ErrorTypeNotFound covers empty result sets from geocoding.
	ErrorTypeNotFound

	// ErrorTypePartialData covers provider series arrays of mismatched length.
	ErrorTypePartialData
)

// String returns the string representation of the error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeNetwork:
		return "NETWORK_ERROR"
	case ErrorTypeDecode:
		return "DECODE_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypePartialData:
		return "PARTIAL_DATA_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

func NewNetworkError(message string, cause error) *AppError {
	return Wrap(ErrorTypeNetwork, message, cause)
}

func NewDecodeError(message string, cause error) *AppError {
	return Wrap(ErrorTypeDecode, message, cause)
}

func NewNotFoundError(message string) *AppError {
	return New(ErrorTypeNotFound, message)
}

func NewPartialDataError(message string) *AppError {
	return New(ErrorTypePartialData, message)
}

// Helper functions for error type checking

func typeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

func IsNetworkError(err error) bool {
	return typeOf(err) == ErrorTypeNetwork
}

func IsDecodeError(err error) bool {
	return typeOf(err) == ErrorTypeDecode
}

func IsNotFoundError(err error) bool {
	return typeOf(err) == ErrorTypeNotFound
}

func IsPartialDataError(err error) bool {
	return typeOf(err) == ErrorTypePartialData
}
