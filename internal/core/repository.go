package core

import "context"

// RosterRepository loads roster records for the domain-stack HTTP API and
// CLI commands. It is out of scope for the core algorithm itself: every
// function above operates on an in-memory []Player regardless of where that
// slice came from.
type RosterRepository interface {
	// GetRoster returns the named roster's players. Implementations should
	// return a *NotFoundError (see IsNotFound) when the roster does not
	// exist.
	GetRoster(ctx context.Context, id string) ([]Player, error)

	// SaveRoster upserts a roster and replaces its player list in one
	// transaction, so the CLI's seed command and the API's roster-upload
	// endpoint share one write path.
	SaveRoster(ctx context.Context, id, name string, players []Player) error
}
