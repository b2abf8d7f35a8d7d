package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStorage indicates that the storage layer could not complete an operation.
// The caller must not assume anything about what was durably written.
var ErrStorage = errors.New("storage failure")

// ErrCrypto indicates a cryptographic fault such as malformed ciphertext or a key mismatch.
var ErrCrypto = errors.New("cryptographic failure")

// ErrInternal indicates an unexpected internal error.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-facing status code and message alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Kind    error
	Err     error
}

// NewAppError creates an AppError classified as ErrInternal.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Kind: ErrInternal, Err: err}
}

// NewStorageError creates an AppError classified as ErrStorage.
func NewStorageError(message string, err error) *AppError {
	return &AppError{Code: http.StatusServiceUnavailable, Message: message, Kind: ErrStorage, Err: err}
}

// NewCryptoError creates an AppError classified as ErrCrypto.
func NewCryptoError(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Kind: ErrCrypto, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes both the classification sentinel and the cause to errors.Is / errors.As.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// IsFatal reports whether err is a storage or crypto fault, i.e. one that must not be
// reported to a caller as a business outcome.
func IsFatal(err error) bool {
	return errors.Is(err, ErrStorage) || errors.Is(err, ErrCrypto)
}
