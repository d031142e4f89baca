package domain

import "errors"

var (
	// ErrNotFound reports an input file that is missing or unreadable.
	ErrNotFound = errors.New("not found")

	// ErrFormat reports a value that could not be parsed: a non-numeric
	// temperature, a short CSV record, or a date that is not ISO-8601.
	ErrFormat = errors.New("invalid format")

	// ErrInvalidArgument reports input a function cannot be evaluated on,
	// such as the mean of an empty sequence.
	ErrInvalidArgument = errors.New("invalid argument")
)
