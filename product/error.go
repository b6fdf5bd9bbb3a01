package product

import "errors"

var (
	// ErrUnknownKind kind is not one of electronics, food or clothing
	ErrUnknownKind = errors.New("unknown product kind")
)
