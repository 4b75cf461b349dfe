// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for grid builders.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// Direction selects the walking order of Spiral.
type Direction int

const (
	// Clockwise walks top row, right column, bottom row, left column.
	Clockwise Direction = iota

	// CounterClockwise walks left column, bottom row, right column, top row.
	// The result is the transpose of the Clockwise spiral.
	CounterClockwise
)

// String implements fmt.Stringer for readable test failures.
func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		return "Direction(?)"
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStart is the first value written by Spiral.
	DefaultStart = 1

	// DefaultDirection is the walking order used by Spiral.
	DefaultDirection = Clockwise
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDirectionInvalid = "matrix: WithDirection: unknown direction"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	start     int       // DefaultStart
	direction Direction // DefaultDirection
}

// WithStart sets the first value written by Spiral. Subsequent cells receive
// start+1, start+2, ... in walking order.
//
// Complexity: O(1).
func WithStart(v int) Option {
	return func(o *Options) { o.start = v }
}

// WithDirection selects the spiral walking order.
// Panics on values other than Clockwise and CounterClockwise.
//
// Complexity: O(1).
func WithDirection(d Direction) Option {
	if d != Clockwise && d != CounterClockwise {
		panic(panicDirectionInvalid)
	}

	return func(o *Options) { o.direction = d }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		start:     DefaultStart,
		direction: DefaultDirection,
	}
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
