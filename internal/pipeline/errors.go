package pipeline

import "errors"

var (
	// ErrMissingColumn means a required column is absent from the table
	ErrMissingColumn = errors.New("missing required column")
	// ErrSourceUnavailable means the source could not be opened or fetched
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrSourceUnparseable means the source was read but is not a valid table
	ErrSourceUnparseable = errors.New("source unparseable")
	// ErrUnknownSource means the source type is not supported
	ErrUnknownSource = errors.New("unknown source type")
	// ErrUnknownGroup means a requested key does not exist in the table
	ErrUnknownGroup = errors.New("unknown group")
	// ErrInvalidRequest covers malformed request parameters
	ErrInvalidRequest = errors.New("invalid request")
)
