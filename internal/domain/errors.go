package domain

import "errors"

var (
	// ErrNotFound — a well-formed id matched no document.
	ErrNotFound = errors.New("not found")
	// ErrInvalidPayload — a required order field is missing or empty.
	ErrInvalidPayload = errors.New("invalid order payload")
	// ErrBadLessonID — an id does not parse as an ObjectID hex string.
	ErrBadLessonID = errors.New("invalid lesson id")
	// ErrNoFields — an update request carried no fields at all.
	ErrNoFields = errors.New("no fields to update")
	// ErrNotNumeric — price/space update value cannot be coerced to a number.
	ErrNotNumeric = errors.New("value is not numeric")
)
