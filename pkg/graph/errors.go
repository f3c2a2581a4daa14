package graph

import "errors"

// ErrDataError malformed or inconsistent route data. returned (wrapped) at construction time only.
var ErrDataError = errors.New("route data error")
