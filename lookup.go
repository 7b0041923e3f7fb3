package banbridge

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/n0h4rt/banbridge/models"
	"github.com/rs/zerolog/log"
)

// Lookup is a synchronous facade over the punishment service's asynchronous selector.
//
// FindPunishment blocks the calling goroutine, so it must only be used from goroutines the host
// provisions for data collection and never from one the punishment service depends on.
type Lookup struct {
	selector Selector
}

// FindPunishment returns the most relevant active punishment of the given type for a player.
//
// Both punishments targeting the player directly and punishments targeting the player
// together with any address are considered; the one ending last wins.
//
// Args:
//   - ctx: The context bounding the wait, nil to wait indefinitely.
//   - playerID: The UUID of the player.
//   - kind: The type of punishment to look for.
//
// Returns:
//   - *models.Punishment: The punishment, nil if the player has none.
//   - error: An error if the selection failed.
func (l *Lookup) FindPunishment(ctx context.Context, playerID uuid.UUID, kind models.PunishmentType) (*models.Punishment, error) {
	selection := Selection{
		Victims: []models.Victim{
			models.PlayerVictim{UUID: playerID},
			models.CompositeVictim{UUID: playerID, Address: models.WildcardAddress},
		},
		Type:  kind,
		Order: LatestEndDateFirst,
	}

	punishment, err := l.selector.SelectFirst(selection).Await(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select %s of %s: %w", kind, playerID, err)
	}

	log.Debug().
		Str("Player", playerID.String()).
		Str("Type", kind.String()).
		Bool("Found", punishment != nil).
		Msg("Punishment lookup")

	return punishment, nil
}

// NewLookup creates a new [Lookup] over the given selector.
func NewLookup(selector Selector) *Lookup {
	return &Lookup{selector: selector}
}
