package pkg

import "fmt"

// AppError is the error representation returned by HTTP handlers.
//
// Code is a stable machine readable identifier, Message is safe to show to the
// end user and Cause (optional) keeps the underlying error for logging only.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Cause      error
	Fields     map[string]string
}

// HTTPError is the JSON body written for failed requests.
type HTTPError struct {
	Success bool              `json:"success"`
	Code    string            `json:"code"`
	Detail  string            `json:"detail"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func NewDomainError(code, message string, cause error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Cause: cause}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithFields attaches per-field validation codes.
func (e *AppError) WithFields(fields map[string]string) *AppError {
	e.Fields = fields
	return e
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Cause }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Success: false,
		Code:    e.Code,
		Detail:  e.Message,
		Fields:  e.Fields,
	}
}
