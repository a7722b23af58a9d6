package api

import (
	"errors"
)

var (
	ErrBadKind      = errors.New("bad socket kind")
	ErrEmptyMessage = errors.New("multipart message has no parts")
)
