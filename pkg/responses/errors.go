package responses

import "fmt"

// Business error codes
const (
	CodeSuccess         = 2000000
	CodeBadRequest      = 4000000
	CodeUnauthorized    = 4010000
	CodeForbidden       = 4030000
	CodeNotFound        = 4040000
	CodeInternalError   = 5000000
	CodeSheetError      = 5001000 // remote table fetch or parse failed
	CodeSchemaError     = 5001100 // expected column missing
	CodeWriteError      = 5001200 // write endpoint rejected or unreachable
	CodeAuthError       = 5002000
	CodeValidationError = 5003000
	CodeEvalError       = 5004000 // formula evaluation failed
)

// AppError carries a business code alongside the underlying cause.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates an AppError around an underlying error.
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Predefined errors
var (
	ErrBadRequest    = New(CodeBadRequest, "invalid request")
	ErrUnauthorized  = New(CodeUnauthorized, "unauthorized")
	ErrForbidden     = New(CodeForbidden, "forbidden")
	ErrNotFound      = New(CodeNotFound, "not found")
	ErrInternalError = New(CodeInternalError, "internal server error")

	ErrInvalidCredentials = New(CodeAuthError, "username or password is incorrect")
	ErrAccountPending     = New(CodeAuthError, "account is waiting for administrator approval")
	ErrInvalidToken       = New(CodeUnauthorized, "invalid token")
	ErrTokenExpired       = New(CodeUnauthorized, "token expired")

	ErrSiteNotFound    = New(CodeNotFound, "site not found")
	ErrFormulaNotFound = New(CodeNotFound, "formula not found")
	ErrQuizNotFound    = New(CodeNotFound, "quiz question not found")
)
