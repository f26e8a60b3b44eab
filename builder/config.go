// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// config.go - internal configuration, deterministic defaults and options.
//
// Deterministic defaults:
//   • idFn   = strconv.Itoa      ("0","1","2",...)
//   • rng    = nil               (RandomSparse requires WithSeed)
//   • attrFn = unit attributes   (Distance=1, Time=1, Accessible=true)

package builder

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/campusnav/core"
)

// IDFn generates a vertex identifier from its zero-based index.
type IDFn func(idx int) string

// AttrFn generates the payload of a new edge. rng may be nil when no seed
// was configured.
type AttrFn func(rng *rand.Rand) core.EdgeAttr

// BuilderOption customizes the builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn   IDFn
	rng    *rand.Rand
	attrFn AttrFn
}

const (
	defaultDistance = 1.0
	defaultTime     = 1.0
)

// newBuilderConfig applies opts over the defaults; later options win.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   strconv.Itoa,
		attrFn: UnitAttr,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed installs a math/rand source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithIDFn overrides the vertex naming scheme. A nil fn is ignored.
func WithIDFn(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithAttrFn overrides the edge payload generator. A nil fn is ignored.
func WithAttrFn(fn AttrFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.attrFn = fn
		}
	}
}

// UnitAttr returns an accessible edge of distance 1 and time 1.
func UnitAttr(*rand.Rand) core.EdgeAttr {
	return core.EdgeAttr{Distance: defaultDistance, Time: defaultTime, Accessible: true}
}

// RandomAttr returns an AttrFn drawing Distance and Time uniformly from
// [1, maxW] as whole numbers and Accessible with probability pAccessible.
// Falls back to UnitAttr when rng is nil.
func RandomAttr(maxW int, pAccessible float64) AttrFn {
	if maxW < 1 {
		maxW = 1
	}
	return func(rng *rand.Rand) core.EdgeAttr {
		if rng == nil {
			return UnitAttr(nil)
		}
		return core.EdgeAttr{
			Distance:   float64(1 + rng.Intn(maxW)),
			Time:       float64(1 + rng.Intn(maxW)),
			Accessible: rng.Float64() < pAccessible,
		}
	}
}
