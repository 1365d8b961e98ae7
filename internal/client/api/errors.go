package api

import (
	"errors"
	"net/http"
)

// GenericErrorMessage is shown when the server gives no readable error body.
const GenericErrorMessage = "Error de conexión"

// Code классифицирует ошибку запроса независимо от текста сообщения
type Code string

const (
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeInvalid      Code = "invalid"
	CodeServer       Code = "server"
	CodeTransport    Code = "transport"
)

// Error is returned by every Client method when the backend answers non-2xx
// or cannot be reached. Error() yields only the human-readable message.
type Error struct {
	Err      error // причина для CodeTransport
	Message  string
	Code     Code
	Status   int  // 0 для CodeTransport
	FromBody bool // Message прочитано из тела ответа, а не подставлено клиентом
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// codeForStatus maps HTTP status to Code
func codeForStatus(status int) Code {
	switch status {
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return CodeInvalid
	default:
		return CodeServer
	}
}

// CodeOf returns the Code carried by err, or empty string for foreign errors.
func CodeOf(err error) Code {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}

// IsUnauthorized reports whether err is a rejected or missing credential.
func IsUnauthorized(err error) bool {
	return CodeOf(err) == CodeUnauthorized
}

// Retryable reports whether repeating the same request may succeed.
// Credential and validation failures never are.
func Retryable(err error) bool {
	switch CodeOf(err) {
	case CodeServer, CodeTransport:
		return true
	default:
		return false
	}
}
