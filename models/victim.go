package models

import (
	"net/netip"

	"github.com/google/uuid"
)

// VictimType represents the kind of a punishment target.
type VictimType int

// Victim types.
const (
	PlayerVictimType VictimType = iota + 1
	AddressVictimType
	CompositeVictimType
)

// String returns a string of said VictimType.
func (t VictimType) String() string {
	switch t {
	case PlayerVictimType:
		return "PLAYER"
	case AddressVictimType:
		return "ADDRESS"
	case CompositeVictimType:
		return "COMPOSITE"
	default:
		return "UNKNOWN"
	}
}

// WildcardAddress is the address of a composite victim that matches any address.
var WildcardAddress = netip.IPv4Unspecified()

// Victim is the target of a punishment.
//
// The set of implementations is closed: [PlayerVictim], [AddressVictim] and [CompositeVictim].
type Victim interface {
	Type() VictimType
	victim()
}

// PlayerVictim is a punishment target identified by a player.
type PlayerVictim struct {
	UUID uuid.UUID // UUID of the player.
}

// Type returns [PlayerVictimType].
func (PlayerVictim) Type() VictimType { return PlayerVictimType }
func (PlayerVictim) victim() {}

// AddressVictim is a punishment target identified by a network address.
type AddressVictim struct {
	Address netip.Addr // Address of the target.
}

// Type returns [AddressVictimType].
func (AddressVictim) Type() VictimType { return AddressVictimType }
func (AddressVictim) victim() {}

// CompositeVictim is a punishment target identified by both a player and an address.
type CompositeVictim struct {
	UUID    uuid.UUID  // UUID of the player.
	Address netip.Addr // Address of the player, [WildcardAddress] to match any.
}

// Type returns [CompositeVictimType].
func (CompositeVictim) Type() VictimType { return CompositeVictimType }
func (CompositeVictim) victim() {}

// IsWildcard reports whether the composite victim matches any address.
func (v CompositeVictim) IsWildcard() bool {
	return v.Address == WildcardAddress
}

// PlayerUUID returns the player a victim refers to.
//
// Args:
//   - victim: The victim to inspect.
//
// Returns:
//   - uuid.UUID: The player UUID.
//   - bool: False if the victim does not refer to a player.
func PlayerUUID(victim Victim) (uuid.UUID, bool) {
	switch v := victim.(type) {
	case PlayerVictim:
		return v.UUID, true
	case CompositeVictim:
		return v.UUID, true
	default:
		return uuid.Nil, false
	}
}
