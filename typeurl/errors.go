package typeurl

import "errors"

var (
	ErrUnknownType  = errors.New("typeurl: unknown type url")
	ErrTypeMismatch = errors.New("typeurl: value does not match codec type")
)

func IsUnknownType(err error) bool { return errors.Is(err, ErrUnknownType) }
