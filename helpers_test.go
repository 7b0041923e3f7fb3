package banbridge

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/n0h4rt/banbridge/models"
)

// fakeSelector answers selections from a fixed set of punishments.
type fakeSelector struct {
	mu          sync.Mutex
	punishments []*models.Punishment
	selections  []Selection
	err         error
	pending     bool
}

func (s *fakeSelector) SelectFirst(selection Selection) *Future[*models.Punishment] {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selections = append(s.selections, selection)
	if s.err != nil {
		return CompletedFuture[*models.Punishment](nil, s.err)
	}
	if s.pending {
		return NewFuture[*models.Punishment]()
	}

	return CompletedFuture(selection.FirstAt(s.punishments, selectedAt), nil)
}

func (s *fakeSelector) set(punishments ...*models.Punishment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.punishments = punishments
}

type fakeService struct {
	selector *fakeSelector
	bus      *Dispatcher
}

func (s *fakeService) Selector() Selector { return s.selector }
func (s *fakeService) EventBus() EventBus { return s.bus }

func newFakeService(punishments ...*models.Punishment) *fakeService {
	return &fakeService{
		selector: &fakeSelector{punishments: punishments},
		bus:      NewDispatcher(),
	}
}

// recordingCaller records every refresh notification.
type recordingCaller struct {
	mu    sync.Mutex
	calls []uuid.UUID
	err   error
}

func (c *recordingCaller) UpdatePlayerData(playerID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, playerID)
	return c.err
}

func (c *recordingCaller) Calls() []uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]uuid.UUID(nil), c.calls...)
}

func staticNames(names map[uuid.UUID]string) NameResolver {
	return NameResolverFunc(func(_ context.Context, playerID uuid.UUID) (string, bool) {
		name, ok := names[playerID]
		return name, ok
	})
}

var (
	issuedAt   = time.UnixMilli(1688488704000)
	expiresAt  = time.UnixMilli(1690000000000)
	selectedAt = issuedAt.Add(time.Hour)
)

func newPunishment(id int64, kind models.PunishmentType, victim models.Victim, operator models.Operator) *models.Punishment {
	return &models.Punishment{
		ID:        id,
		Type:      kind,
		Victim:    victim,
		Operator:  operator,
		Reason:    "Griefing",
		StartDate: issuedAt,
		EndDate:   expiresAt,
	}
}

// recoverError runs f and returns the error it panicked with, nil if it did not panic.
func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()

	f()

	return nil
}
