package core

import "errors"

var (
	ErrArchUnsupported     = errors.New("architecture unsupported")
	ErrReadFailed          = errors.New("register read failed")
	ErrRegisterUnavailable = errors.New("register unavailable")
)
