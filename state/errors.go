package state

import "errors"

// configuration errors, returned by setup calls

var (
	ErrReservedASN     = errors.New("AS number 0 is reserved")
	ErrDuplicateAS     = errors.New("AS already exists")
	ErrUnknownAS       = errors.New("AS has not been registered")
	ErrDuplicateLink   = errors.New("link already exists")
	ErrSelfLink        = errors.New("link endpoints must differ")
	ErrUnknownPolicy   = errors.New("unknown policy")
	ErrDuplicatePolicy = errors.New("duplicate policy")
	ErrEmptyPolicy     = errors.New("policy chain must not be empty")
	ErrEmptyPath       = errors.New("update path must not be empty")
)
