package preferences

import "errors"

var (
	// ErrPreferenceNotFound is returned when no preference is stored for a session and key
	ErrPreferenceNotFound = errors.New("preference not found")

	// ErrInvalidSession is returned when a session ID is empty
	ErrInvalidSession = errors.New("invalid session ID")
)
