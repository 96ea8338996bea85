package game

import "errors"

// The game package holds the world model and the turn resolution rules. It
// knows nothing about transports or scheduling - the engine package drives it.

const (
	// NumBlocs is fixed by the design: three competing major powers.
	NumBlocs = 3

	// MaxCohesion bounds internal stability; MaxDrag bounds regulatory drag.
	MaxCohesion = 10
	MaxDrag     = 10

	// MaxInfluence is the control level ceiling of a region (die face style).
	MaxInfluence = 6
)

var (
	// ErrInvalidOrder marks a malformed or over-budget submission. The order
	// is rejected and the submitting bloc is left untouched.
	ErrInvalidOrder = errors.New("invalid order")

	// ErrUnknownCatalogReference marks a card or event id that is not in the
	// catalog. Surfaced by startup validation, never expected at runtime.
	ErrUnknownCatalogReference = errors.New("unknown catalog reference")

	// ErrPhaseViolation marks an operation attempted outside its valid phase.
	ErrPhaseViolation = errors.New("phase violation")
)

type StateHash uint64
