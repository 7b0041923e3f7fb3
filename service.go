package banbridge

import (
	"sort"
	"time"

	"github.com/n0h4rt/banbridge/models"
)

// SortOrder is the ordering rule the punishment service applies to a selection.
type SortOrder int

// Sort orders.
const (
	LatestEndDateFirst SortOrder = iota + 1
	NewestFirst
	OldestFirst
)

// Selection describes a query against the punishment service.
type Selection struct {
	Victims []models.Victim       // Victims the punishment may target, any of them matches.
	Type    models.PunishmentType // Type of the punishment.
	Order   SortOrder             // Order deciding which punishment comes first.
}

// Matches reports whether the punishment satisfies the selection.
//
// A composite victim with the wildcard address matches a composite punishment of the same player
// regardless of its address.
func (s *Selection) Matches(punishment *models.Punishment) bool {
	if punishment == nil || punishment.Type != s.Type {
		return false
	}

	for _, victim := range s.Victims {
		if victimMatches(victim, punishment.Victim) {
			return true
		}
	}

	return false
}

// First returns the most relevant punishment in effect now. See [Selection.FirstAt].
func (s *Selection) First(punishments []*models.Punishment) *models.Punishment {
	return s.FirstAt(punishments, time.Now())
}

// FirstAt returns the first of the given punishments that matches the selection and is in effect
// at the given time, according to the selection's order. Expired and pending punishments are skipped.
//
// Returns:
//   - *models.Punishment: The most relevant punishment, nil when none matches.
func (s *Selection) FirstAt(punishments []*models.Punishment, now time.Time) *models.Punishment {
	var matched []*models.Punishment
	for _, punishment := range punishments {
		if s.Matches(punishment) && punishment.IsActive(now) {
			matched = append(matched, punishment)
		}
	}
	if len(matched) == 0 {
		return nil
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		switch s.Order {
		case NewestFirst:
			return a.StartDate.After(b.StartDate)
		case OldestFirst:
			return a.StartDate.Before(b.StartDate)
		default:
			// Permanent punishments end last.
			if a.IsPermanent() || b.IsPermanent() {
				return a.IsPermanent() && !b.IsPermanent()
			}
			return a.EndDate.After(b.EndDate)
		}
	})

	return matched[0]
}

func victimMatches(want, got models.Victim) bool {
	switch w := want.(type) {
	case models.CompositeVictim:
		g, ok := got.(models.CompositeVictim)
		return ok && g.UUID == w.UUID && (w.IsWildcard() || g.Address == w.Address)
	default:
		return want == got
	}
}

// Selector runs selections against the punishment service.
type Selector interface {
	// SelectFirst asynchronously finds the most relevant active punishment matching the selection.
	// The future resolves to nil when there is none.
	SelectFirst(selection Selection) *Future[*models.Punishment]
}

// PunishmentService is the root handle of the punishment service.
type PunishmentService interface {
	Selector() Selector
	EventBus() EventBus
}
