package banbridge

import (
	"net/netip"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/n0h4rt/banbridge/models"
	"github.com/stretchr/testify/assert"
)

func TestSelection_Matches(t *testing.T) {
	playerID := uuid.New()
	address := netip.MustParseAddr("198.51.100.4")
	selection := Selection{
		Victims: []models.Victim{
			models.PlayerVictim{UUID: playerID},
			models.CompositeVictim{UUID: playerID, Address: models.WildcardAddress},
		},
		Type:  models.Ban,
		Order: LatestEndDateFirst,
	}

	cases := []struct {
		name       string
		punishment *models.Punishment
		expected   bool
	}{
		{"Player", &models.Punishment{Type: models.Ban, Victim: models.PlayerVictim{UUID: playerID}}, true},
		{"CompositeAnyAddress", &models.Punishment{Type: models.Ban, Victim: models.CompositeVictim{UUID: playerID, Address: address}}, true},
		{"OtherPlayer", &models.Punishment{Type: models.Ban, Victim: models.PlayerVictim{UUID: uuid.New()}}, false},
		{"OtherType", &models.Punishment{Type: models.Mute, Victim: models.PlayerVictim{UUID: playerID}}, false},
		{"Address", &models.Punishment{Type: models.Ban, Victim: models.AddressVictim{Address: address}}, false},
		{"Nil", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, selection.Matches(tc.punishment))
		})
	}
}

func TestSelection_MatchesExactAddress(t *testing.T) {
	playerID := uuid.New()
	selection := Selection{
		Victims: []models.Victim{models.CompositeVictim{UUID: playerID, Address: netip.MustParseAddr("198.51.100.4")}},
		Type:    models.Mute,
	}

	assert.True(t, selection.Matches(&models.Punishment{Type: models.Mute, Victim: models.CompositeVictim{UUID: playerID, Address: netip.MustParseAddr("198.51.100.4")}}))
	assert.False(t, selection.Matches(&models.Punishment{Type: models.Mute, Victim: models.CompositeVictim{UUID: playerID, Address: netip.MustParseAddr("198.51.100.5")}}))
}

func TestSelection_First(t *testing.T) {
	playerID := uuid.New()
	victim := models.PlayerVictim{UUID: playerID}
	base := time.UnixMilli(1688488704000)

	short := &models.Punishment{ID: 1, Type: models.Ban, Victim: victim, StartDate: base.Add(time.Hour), EndDate: base.Add(2 * time.Hour)}
	long := &models.Punishment{ID: 2, Type: models.Ban, Victim: victim, StartDate: base, EndDate: base.Add(48 * time.Hour)}
	permanent := &models.Punishment{ID: 3, Type: models.Ban, Victim: victim, StartDate: base.Add(-time.Hour)}
	mute := &models.Punishment{ID: 4, Type: models.Mute, Victim: victim, StartDate: base.Add(5 * time.Hour)}

	selection := Selection{Victims: []models.Victim{victim}, Type: models.Ban, Order: LatestEndDateFirst}
	now := base.Add(90 * time.Minute)

	assert.Equal(t, long, selection.FirstAt([]*models.Punishment{short, long, mute}, now))
	assert.Equal(t, permanent, selection.FirstAt([]*models.Punishment{short, permanent, long}, now), "a permanent ban ends last")

	selection.Order = NewestFirst
	assert.Equal(t, short, selection.FirstAt([]*models.Punishment{long, permanent, short}, now))

	selection.Order = OldestFirst
	assert.Equal(t, permanent, selection.FirstAt([]*models.Punishment{long, short, permanent}, now))

	assert.Nil(t, selection.FirstAt([]*models.Punishment{mute}, now))
	assert.Nil(t, selection.FirstAt(nil, now))
}

func TestSelection_FirstAt_Inactive(t *testing.T) {
	playerID := uuid.New()
	victim := models.PlayerVictim{UUID: playerID}
	now := time.UnixMilli(1688488704000)

	expired := &models.Punishment{ID: 1, Type: models.Ban, Victim: victim, StartDate: now.Add(-48 * time.Hour), EndDate: now.Add(-time.Hour)}
	pending := &models.Punishment{ID: 2, Type: models.Ban, Victim: victim, StartDate: now.Add(time.Hour)}
	active := &models.Punishment{ID: 3, Type: models.Ban, Victim: victim, StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Minute)}

	selection := Selection{Victims: []models.Victim{victim}, Type: models.Ban, Order: LatestEndDateFirst}

	assert.Nil(t, selection.FirstAt([]*models.Punishment{expired, pending}, now), "punishments not in effect should be skipped")
	assert.Equal(t, active, selection.FirstAt([]*models.Punishment{expired, pending, active}, now))
	assert.Nil(t, selection.FirstAt([]*models.Punishment{active}, now.Add(time.Hour)), "an expired punishment should no longer be selected")

	recent := &models.Punishment{ID: 4, Type: models.Ban, Victim: victim, StartDate: time.Now().Add(-time.Minute)}
	assert.Equal(t, recent, selection.First([]*models.Punishment{expired, recent}))
}
