package repository

import "errors"

// ErrNotFound is returned when no activity is stored under the requested name.
var ErrNotFound = errors.New("activity not found in registry")

// IsNotFound checks if the error reports a missing activity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
