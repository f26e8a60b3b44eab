package navigator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusnav/campus"
)

var (
	// ErrUnknownLocation is returned when a picked name is not in the catalog.
	ErrUnknownLocation = errors.New("navigator: unknown location")

	// ErrIncompleteSelection is returned when routing before both ends are picked.
	ErrIncompleteSelection = errors.New("navigator: start and end must both be selected")
)

// Selection tracks start and end picks.
//
// Pick cycle: empty → start set → start and end set → (next pick) start
// replaced, end cleared. A Selection is not safe for concurrent use.
type Selection struct {
	catalog    *campus.Catalog
	start, end string
}

// NewSelection returns an empty Selection validating picks against cat.
func NewSelection(cat *campus.Catalog) *Selection {
	return &Selection{catalog: cat}
}

// Pick records name as the next selection.
func (s *Selection) Pick(name string) error {
	if s.catalog != nil && !s.catalog.Has(name) {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, name)
	}

	switch {
	case s.start == "":
		s.start = name
	case s.end == "":
		s.end = name
	default:
		s.start, s.end = name, ""
	}

	return nil
}

// Reset clears both picks.
func (s *Selection) Reset() { s.start, s.end = "", "" }

// Start returns the selected start, or "".
func (s *Selection) Start() string { return s.start }

// End returns the selected destination, or "".
func (s *Selection) End() string { return s.end }

// Ready reports whether both start and end are set.
func (s *Selection) Ready() bool { return s.start != "" && s.end != "" }
