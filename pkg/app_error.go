package pkg

import "fmt"

// AppError is the error shape returned by HTTP handlers.
//
// Code is a stable machine-readable identifier; Message is safe to show to end users.
// Err keeps the underlying cause for logs and is never serialized.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
