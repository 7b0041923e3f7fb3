package banbridge

import (
	"github.com/n0h4rt/banbridge/models"
	"github.com/rs/zerolog/log"
)

// Listener asks the analytics host to refresh a player's data whenever one of their punishments
// is applied or revoked.
type Listener struct {
	bus     EventBus
	caller  Caller
	victims Filter
}

// Register subscribes the listener to the punishment service's events at normal priority.
// The subscription lasts for the lifetime of the process.
func (l *Listener) Register() {
	l.bus.RegisterListener(OnPostPunish, PriorityNormal, l.OnPostPunish)
	l.bus.RegisterListener(OnPostPardon, PriorityNormal, l.OnPostPardon)

	log.Debug().Msg("Listener registered")
}

// OnPostPunish handles a punishment that has been applied.
func (l *Listener) OnPostPunish(event *Event) error {
	return l.actOnPunishment(event)
}

// OnPostPardon handles a punishment that has been revoked.
func (l *Listener) OnPostPardon(event *Event) error {
	return l.actOnPunishment(event)
}

// actOnPunishment notifies the host once for punishments of a player or of a player and address.
// Punishments of any other target are ignored. The host's error is returned as is.
func (l *Listener) actOnPunishment(event *Event) error {
	if !l.victims.Check(event) {
		return nil
	}

	playerID, ok := models.PlayerUUID(event.Punishment.Victim)
	if !ok {
		return nil
	}

	log.Debug().
		Str("Event", event.Type.String()).
		Str("Player", playerID.String()).
		Msg("Refreshing player data")

	return l.caller.UpdatePlayerData(playerID)
}

// NewListener creates a new [Listener].
//
// Args:
//   - bus: The punishment service's event bus.
//   - caller: The host's refresh notification.
func NewListener(bus EventBus, caller Caller) *Listener {
	return &Listener{
		bus:     bus,
		caller:  caller,
		victims: NewVictimFilter(models.PlayerVictimType, models.CompositeVictimType),
	}
}
