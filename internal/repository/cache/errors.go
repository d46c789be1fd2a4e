package cache

// ErrorHandler carries the HTTP status a cache miss or corrupt entry maps to.
type ErrorHandler struct {
	error
	StatusCode int
}

func NewErrorHandler(err error, status int) ErrorHandler {
	return ErrorHandler{error: err, StatusCode: status}
}

func (e ErrorHandler) Unwrap() error { return e.error }
