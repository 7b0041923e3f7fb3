package banbridge

import (
	"context"

	"github.com/google/uuid"
)

// NameResolver resolves player names through the analytics host.
type NameResolver interface {
	// FetchNameOf returns the last known name of the player, false if unknown.
	FetchNameOf(ctx context.Context, playerID uuid.UUID) (string, bool)
}

// NameResolverFunc adapts a function to the [NameResolver] interface.
type NameResolverFunc func(ctx context.Context, playerID uuid.UUID) (string, bool)

// FetchNameOf calls f(ctx, playerID).
func (f NameResolverFunc) FetchNameOf(ctx context.Context, playerID uuid.UUID) (string, bool) {
	return f(ctx, playerID)
}

// Caller notifies the analytics host that a player's reported data is stale.
type Caller interface {
	// UpdatePlayerData asks the host to recompute the player's report at its convenience.
	UpdatePlayerData(playerID uuid.UUID) error
}

// CallerFunc adapts a function to the [Caller] interface.
type CallerFunc func(playerID uuid.UUID) error

// UpdatePlayerData calls f(playerID).
func (f CallerFunc) UpdatePlayerData(playerID uuid.UUID) error {
	return f(playerID)
}
