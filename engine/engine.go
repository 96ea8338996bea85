package engine

import (
	"context"

	"conviction/game"
)

// Result is emitted once when the state machine reaches TERMINAL.
type Result struct {
	Winner        string
	Turns         int
	VictoryPoints map[string]int
}

// Engine is the surface the transport layer sees: drive the turn loop, feed
// in orders, read consistent snapshots.
type Engine interface {
	// Run drives phases until a bloc crosses the victory threshold or the
	// turn limit is reached. A context cancellation aborts the game between
	// phases, never mid-resolution.
	Run(ctx context.Context) (Result, error)

	// SubmitOrder is callable only during POLICY_DRAFT. Resubmission before
	// the turn closes replaces the prior order.
	SubmitOrder(o game.Order) error

	// Snapshot returns a deep copy reflecting only fully-applied phases.
	Snapshot() *game.WorldState
}
