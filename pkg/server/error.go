package server

import (
	"errors"
	"fmt"
)

// Error error dengan code yang di-map ke http status oleh handler.
type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

var (
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound intersection atau lokasi tidak ada di road network
	ErrNotFound = errors.New("requested item is not found")
	// ErrBadParamInput algorithm, heuristic, atau parameter lain tidak valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrUnprocessable input valid tapi tidak bisa diproses, misal jumlah station melebihi candidate
	ErrUnprocessable = errors.New("request can not be processed")
)
