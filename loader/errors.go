package loader

import "errors"

var (
	// ErrNoHeader is returned when the input has no header row.
	ErrNoHeader = errors.New("loader: missing header row")

	// ErrMissingColumns is returned when the header lacks a required column.
	ErrMissingColumns = errors.New("loader: missing required columns")

	// ErrNilGraph is returned when Load is given a nil graph.
	ErrNilGraph = errors.New("loader: graph is nil")
)
