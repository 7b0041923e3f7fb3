package banbridge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/n0h4rt/banbridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLegacy(selector *fakeSelector, names map[uuid.UUID]string) *LegacyExtension {
	return NewLegacyExtension(NewLookup(selector), NewFormatter(staticNames(names), ""))
}

func TestLegacyExtension_Accessors(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()
	operatorID := uuid.New()
	ban := newPunishment(1, models.Ban, models.PlayerVictim{UUID: playerID}, models.PlayerOperator{UUID: operatorID})
	legacy := newTestLegacy(&fakeSelector{punishments: []*models.Punishment{ban}}, map[uuid.UUID]string{operatorID: "perorist"})

	banned, err := legacy.IsBanned(ctx, playerID)
	require.NoError(t, err)
	assert.True(t, banned)

	muted, err := legacy.IsMuted(ctx, playerID)
	require.NoError(t, err)
	assert.False(t, muted)

	issuer, err := legacy.BanIssuer(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, "perorist", issuer)

	issued, err := legacy.BanIssueDate(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1688488704000), issued)

	expires, err := legacy.BanExpireDate(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1690000000000), expires)

	reason, err := legacy.BanReason(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, "Griefing", reason)
}

func TestLegacyExtension_MuteAccessors(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()
	mute := newPunishment(2, models.Mute, models.CompositeVictim{UUID: playerID, Address: models.WildcardAddress}, models.ConsoleOperator{})
	mute.Reason = "Spam"
	legacy := newTestLegacy(&fakeSelector{punishments: []*models.Punishment{mute}}, nil)

	muted, err := legacy.IsMuted(ctx, playerID)
	require.NoError(t, err)
	assert.True(t, muted)

	issuer, err := legacy.MuteIssuer(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, "CONSOLE", issuer)

	issued, err := legacy.MuteIssueDate(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1688488704000), issued)

	expires, err := legacy.MuteExpireDate(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1690000000000), expires)

	reason, err := legacy.MuteReason(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, "Spam", reason)
}

func TestLegacyExtension_PermanentExpireDate(t *testing.T) {
	playerID := uuid.New()
	ban := newPunishment(1, models.Ban, models.PlayerVictim{UUID: playerID}, models.ConsoleOperator{})
	ban.EndDate = time.Time{}
	legacy := newTestLegacy(&fakeSelector{punishments: []*models.Punishment{ban}}, nil)

	_, err := legacy.BanExpireDate(context.Background(), playerID)
	assert.ErrorIs(t, err, ErrTimestampOutOfRange)
}

func TestLegacyExtension_MissingPunishment(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()
	legacy := newTestLegacy(&fakeSelector{}, nil)

	calls := map[string]func(){
		"BanIssuer":      func() { _, _ = legacy.BanIssuer(ctx, playerID) },
		"BanIssueDate":   func() { _, _ = legacy.BanIssueDate(ctx, playerID) },
		"BanExpireDate":  func() { _, _ = legacy.BanExpireDate(ctx, playerID) },
		"BanReason":      func() { _, _ = legacy.BanReason(ctx, playerID) },
		"MuteIssuer":     func() { _, _ = legacy.MuteIssuer(ctx, playerID) },
		"MuteIssueDate":  func() { _, _ = legacy.MuteIssueDate(ctx, playerID) },
		"MuteExpireDate": func() { _, _ = legacy.MuteExpireDate(ctx, playerID) },
		"MuteReason":     func() { _, _ = legacy.MuteReason(ctx, playerID) },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := recoverError(call)
			assert.ErrorIs(t, err, ErrMissingPunishment)
		})
	}
}

func TestLegacyExtension_LookupError(t *testing.T) {
	errLookup := errors.New("database unavailable")
	legacy := newTestLegacy(&fakeSelector{err: errLookup}, nil)

	_, err := legacy.BanReason(context.Background(), uuid.New())
	assert.ErrorIs(t, err, errLookup, "a failed lookup should be returned, not panic")

	report, err := legacy.Collect(context.Background(), uuid.New())
	assert.ErrorIs(t, err, errLookup)
	assert.Nil(t, report)
}

func TestLegacyExtension_Collect(t *testing.T) {
	playerID := uuid.New()
	operatorID := uuid.New()
	ban := newPunishment(1, models.Ban, models.PlayerVictim{UUID: playerID}, models.PlayerOperator{UUID: operatorID})
	mute := newPunishment(2, models.Mute, models.PlayerVictim{UUID: playerID}, models.OtherOperator{Kind: "DISCORD"})
	mute.EndDate = time.Time{}

	cases := map[string][]*models.Punishment{
		"Clean":          nil,
		"Banned":         {ban},
		"Muted":          {mute},
		"BannedAndMuted": {ban, mute},
	}

	for name, punishments := range cases {
		t.Run(name, func(t *testing.T) {
			selector := &fakeSelector{punishments: punishments}
			names := map[uuid.UUID]string{operatorID: "perorist"}

			collected, err := newTestLegacy(selector, names).Collect(context.Background(), playerID)
			require.NoError(t, err)
			built, err := newTestExtension(selector, names).PunishmentData(context.Background(), playerID)
			require.NoError(t, err)

			assert.Equal(t, built.Fields(), collected.Fields(), "both variants should report the same fields")
		})
	}
}

func TestLegacyExtension_Providers(t *testing.T) {
	legacy := newTestLegacy(&fakeSelector{}, nil)
	providers := legacy.Providers()

	require.Len(t, providers, 10)

	assert.Equal(t, FIELD_BANNED, providers[0].Name)
	assert.Equal(t, KindBoolean, providers[0].Kind)
	assert.Equal(t, CONDITION_BANNED, providers[0].Condition)
	assert.Equal(t, FIELD_MUTED, providers[1].Name)
	assert.Equal(t, CONDITION_MUTED, providers[1].Condition)

	for _, p := range providers[2:6] {
		assert.Equal(t, CONDITION_BANNED, p.Requires, p.Name)
	}
	for _, p := range providers[6:] {
		assert.Equal(t, CONDITION_MUTED, p.Requires, p.Name)
	}

	assert.Equal(t, FIELD_BAN_OPERATOR, providers[2].Name)
	assert.Equal(t, KindString, providers[2].Kind)
	assert.True(t, providers[2].PlayerName)
	assert.Equal(t, FIELD_BAN_DATE, providers[3].Name)
	assert.Equal(t, KindNumber, providers[3].Kind)
	assert.Equal(t, FormatDateYear, providers[3].Format)
	assert.Equal(t, FIELD_MUTE_REASON, providers[9].Name)
}
