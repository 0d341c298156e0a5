package application

import "errors"

// ErrNotFound is returned by repositories when the addressed document does not exist.
var ErrNotFound = errors.New("document not found")

// NotFoundError carries the client-facing message for a missing resource.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

// Is lets errors.Is(err, ErrNotFound) match service level errors too.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(msg string) error {
	return &NotFoundError{Msg: msg}
}
