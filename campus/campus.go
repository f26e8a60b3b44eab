// Package campus holds the catalog of named locations shown on the campus
// map, with the pixel coordinates used to draw routes.
package campus

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrDuplicateLocation is returned when a name appears twice.
	ErrDuplicateLocation = errors.New("campus: duplicate location")

	// ErrEmptyName is returned for a location without a name.
	ErrEmptyName = errors.New("campus: empty location name")
)

// Location is a named point on the map. X and Y are in map pixels, origin
// top-left.
type Location struct {
	Name string  `json:"name" yaml:"name"`
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
}

// Catalog is an ordered, read-only set of locations keyed by exact name.
type Catalog struct {
	list   []Location
	byName map[string]int
}

// NewCatalog builds a Catalog preserving the order of locs.
func NewCatalog(locs ...Location) (*Catalog, error) {
	c := &Catalog{
		list:   make([]Location, 0, len(locs)),
		byName: make(map[string]int, len(locs)),
	}
	for i, l := range locs {
		if l.Name == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrEmptyName, i)
		}
		if _, dup := c.byName[l.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLocation, l.Name)
		}
		c.byName[l.Name] = len(c.list)
		c.list = append(c.list, l)
	}

	return c, nil
}

// Lookup returns the location called name.
func (c *Catalog) Lookup(name string) (Location, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Location{}, false
	}
	return c.list[i], true
}

// Has reports whether name is in the catalog.
func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Len returns the number of locations.
func (c *Catalog) Len() int { return len(c.list) }

// Locations returns a copy of the catalog in insertion order.
func (c *Catalog) Locations() []Location {
	return append([]Location(nil), c.list...)
}

// Names returns location names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.list))
	for i, l := range c.list {
		out[i] = l.Name
	}
	return out
}

// Load decodes a YAML sequence of {name, x, y} mappings.
func Load(r io.Reader) (*Catalog, error) {
	var locs []Location
	if err := yaml.NewDecoder(r).Decode(&locs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("campus: decode: %w", err)
	}

	return NewCatalog(locs...)
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("campus: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}
