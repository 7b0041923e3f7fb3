package banbridge

import (
	"github.com/google/uuid"
	"github.com/n0h4rt/banbridge/models"
	"github.com/n0h4rt/banbridge/utils"
)

// This approach aims to simplify the syntax of combining filters.
// For example:
//   filter := Filter.And(Filter.And(Filter)).Or(Filter.Not())
// Instead of:
//   filter := Or(And(Filter, And(Filter, Filter)), Not(Filter)) (excluding the package name)
//
// Since Go does not support type inheritance nor method declaration with multiple receivers,
// everything needs to be explicitly declared.

// Filter is an interface that defines the methods for filtering events.
type Filter interface {
	Check(*Event) bool // Check evaluates if the given event passes the filter conditions.
	And(Filter) Filter // And returns a new filter that combines the current filter with another using logical AND.
	Or(Filter) Filter  // Or returns a new filter that combines the current filter with another using logical OR.
	Xor(Filter) Filter // Xor returns a new filter that combines the current filter with another using logical XOR.
	Not() Filter       // Not returns a new filter that negates the current filter using logical NOT.
}

const (
	// CombineFilterAnd combines filter using logical AND.
	CombineFilterAnd int = iota
	// CombineFilterOr combines filter using logical OR.
	CombineFilterOr
	// CombineFilterXor combines filter using logical XOR.
	CombineFilterXor
)

// CombineFilter is a struct that represents the logical combination of two filters.
type CombineFilter struct {
	Left  Filter // Left represents the first filter to be combined.
	Right Filter // Right represents the second filter to be combined.
	Mode  int    // Mode specifies the combination mode: 0 for AND, 1 for OR, and 2 for XOR.
}

// Check returns the combination of the left and right filters according to the mode.
func (f *CombineFilter) Check(event *Event) bool {
	switch f.Mode {
	case CombineFilterAnd:
		return f.Left.Check(event) && f.Right.Check(event)
	case CombineFilterOr:
		return f.Left.Check(event) || f.Right.Check(event)
	case CombineFilterXor:
		return f.Left.Check(event) != f.Right.Check(event)
	default:
		return false
	}
}

// And returns a new CombineFilter that combines the current filter with the provided filter using logical AND.
func (f *CombineFilter) And(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterAnd}
}

// Or returns a new CombineFilter that combines the current filter with the provided filter using logical OR.
func (f *CombineFilter) Or(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterOr}
}

// Xor returns a new CombineFilter that combines the current filter with the provided filter using logical XOR.
func (f *CombineFilter) Xor(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterXor}
}

// Not returns a new NotFilter negating the current filter.
func (f *CombineFilter) Not() Filter {
	return &NotFilter{f}
}

// NotFilter is a struct that represents the logical NOT of a filter.
type NotFilter struct {
	Base Filter // Base represents the filter to be negated using logical NOT.
}

// Check returns the logical negation of the filter's result.
func (f *NotFilter) Check(event *Event) bool {
	return !f.Base.Check(event)
}

// And returns a new CombineFilter that combines the current filter with the provided filter using logical AND.
func (f *NotFilter) And(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterAnd}
}

// Or returns a new CombineFilter that combines the current filter with the provided filter using logical OR.
func (f *NotFilter) Or(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterOr}
}

// Xor returns a new CombineFilter that combines the current filter with the provided filter using logical XOR.
func (f *NotFilter) Xor(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterXor}
}

// Not returns a new NotFilter negating the current filter.
func (f *NotFilter) Not() Filter {
	return &NotFilter{f}
}

// TypeFilter represents a filter for punishment types.
type TypeFilter struct {
	Types []models.PunishmentType // Types is a list of punishment types to let through.
}

// Check checks if the event's punishment is of one of the filter's types.
func (f *TypeFilter) Check(event *Event) bool {
	if event.Punishment == nil {
		return false
	}
	return utils.Contains(f.Types, event.Punishment.Type)
}

// And returns a new CombineFilter that combines the current filter with the provided filter using logical AND.
func (f *TypeFilter) And(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterAnd}
}

// Or returns a new CombineFilter that combines the current filter with the provided filter using logical OR.
func (f *TypeFilter) Or(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterOr}
}

// Xor returns a new CombineFilter that combines the current filter with the provided filter using logical XOR.
func (f *TypeFilter) Xor(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterXor}
}

// Not returns a new NotFilter negating the current filter.
func (f *TypeFilter) Not() Filter {
	return &NotFilter{f}
}

// NewTypeFilter returns a new `TypeFilter`.
func NewTypeFilter(types ...models.PunishmentType) Filter {
	return &TypeFilter{Types: types}
}

// VictimFilter represents a filter for victim kinds.
type VictimFilter struct {
	Types []models.VictimType // Types is a list of victim kinds to let through.
}

// Check checks if the event's punishment targets one of the filter's victim kinds.
func (f *VictimFilter) Check(event *Event) bool {
	if event.Punishment == nil || event.Punishment.Victim == nil {
		return false
	}
	return utils.Contains(f.Types, event.Punishment.Victim.Type())
}

// And returns a new CombineFilter that combines the current filter with the provided filter using logical AND.
func (f *VictimFilter) And(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterAnd}
}

// Or returns a new CombineFilter that combines the current filter with the provided filter using logical OR.
func (f *VictimFilter) Or(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterOr}
}

// Xor returns a new CombineFilter that combines the current filter with the provided filter using logical XOR.
func (f *VictimFilter) Xor(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterXor}
}

// Not returns a new NotFilter negating the current filter.
func (f *VictimFilter) Not() Filter {
	return &NotFilter{f}
}

// NewVictimFilter returns a new `VictimFilter`.
func NewVictimFilter(types ...models.VictimType) Filter {
	return &VictimFilter{Types: types}
}

// PlayerFilter represents a filter for the players punishments are about.
type PlayerFilter struct {
	Players []uuid.UUID // Players is a list of player UUIDs to filter events based on the victim.
}

// Check checks if the event's victim refers to a player in the filter's list.
func (f *PlayerFilter) Check(event *Event) bool {
	if event.Punishment == nil {
		return false
	}
	playerID, ok := models.PlayerUUID(event.Punishment.Victim)
	return ok && utils.Contains(f.Players, playerID)
}

// And returns a new CombineFilter that combines the current filter with the provided filter using logical AND.
func (f *PlayerFilter) And(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterAnd}
}

// Or returns a new CombineFilter that combines the current filter with the provided filter using logical OR.
func (f *PlayerFilter) Or(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterOr}
}

// Xor returns a new CombineFilter that combines the current filter with the provided filter using logical XOR.
func (f *PlayerFilter) Xor(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterXor}
}

// Not returns a new NotFilter negating the current filter.
func (f *PlayerFilter) Not() Filter {
	return &NotFilter{f}
}

// Add adds a player to the filter's list of players.
func (f *PlayerFilter) Add(playerID uuid.UUID) {
	f.Players = append(f.Players, playerID)
}

// Remove removes a player from the filter's list of players.
func (f *PlayerFilter) Remove(playerID uuid.UUID) {
	f.Players = utils.Remove(f.Players, playerID)
}

// NewPlayerFilter returns a new `PlayerFilter`.
func NewPlayerFilter(playerIDs ...uuid.UUID) Filter {
	return &PlayerFilter{Players: playerIDs}
}
