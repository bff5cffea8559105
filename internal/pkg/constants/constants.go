package constants

import "net/http"

// CodedError is an error that carries the HTTP status code it should be
// rendered with. The api error handler unwraps the error chain looking for
// one of these.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound            = NewCodedError(http.StatusNotFound, "not found")
	ErrUnknownLocation       = NewCodedError(http.StatusNotFound, "unknown location")
	ErrProviderFailure       = NewCodedError(http.StatusBadGateway, "search provider failure")
	ErrProviderNotConfigured = NewCodedError(http.StatusInternalServerError, "search provider credentials are not configured")
	ErrBadRequest            = NewCodedError(http.StatusBadRequest, "bad request")
	ErrUnauthorized          = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrMissingAuthCookie     = NewCodedError(http.StatusUnauthorized, "missing auth cookie")
)

const (
	CookieKeyAuthToken = "auth_token"

	CtxKeyUserID    = "user_id"
	CtxKeyRequestID = "request_id"

	ViperAuthSecret = "auth.secret"
)
