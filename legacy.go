package banbridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/n0h4rt/banbridge/models"
	"github.com/n0h4rt/banbridge/utils"
	"github.com/rs/zerolog/log"
)

// Provider describes a single value exposed by the [LegacyExtension].
type Provider struct {
	FieldInfo
	Kind      ValueKind // Kind of the provided value.
	Condition string    // Condition a boolean provider satisfies when true.
	Requires  string    // Condition that must hold for a conditional provider to be called.
}

type legacyProvider struct {
	Provider
	punishment models.PunishmentType
	boolean    func(*models.Punishment) bool
	text       func(context.Context, *models.Punishment) string
	number     func(*models.Punishment) (int64, error)
}

// LegacyExtension exposes the same data as [Extension] through one accessor per field.
//
// The conditional accessors (issuer, dates, reason) may only be called while the matching
// IsBanned or IsMuted accessor is true. Calling one for an absent punishment is a contract
// violation and panics with an error wrapping [ErrMissingPunishment].
type LegacyExtension struct {
	lookup     *Lookup
	formatter  *Formatter
	callEvents []CallEvent
	providers  []legacyProvider
}

// Info returns the description of the extension.
func (e *LegacyExtension) Info() PluginInfo {
	return pluginInfo
}

// CallExtensionMethodsOn returns the host events on which the providers should be called.
func (e *LegacyExtension) CallExtensionMethodsOn() []CallEvent {
	return append([]CallEvent(nil), e.callEvents...)
}

// Providers returns the metadata of every provider, boolean providers first.
func (e *LegacyExtension) Providers() []Provider {
	providers := make([]Provider, 0, len(e.providers))
	for _, p := range e.providers {
		providers = append(providers, p.Provider)
	}

	return providers
}

// IsBanned reports whether the player has an active ban.
func (e *LegacyExtension) IsBanned(ctx context.Context, playerID uuid.UUID) (bool, error) {
	return e.isPunished(ctx, playerID, models.Ban)
}

// BanIssuer returns who banned the player.
func (e *LegacyExtension) BanIssuer(ctx context.Context, playerID uuid.UUID) (string, error) {
	return e.issuer(ctx, playerID, models.Ban)
}

// BanIssueDate returns when the ban was issued, in epoch milliseconds.
func (e *LegacyExtension) BanIssueDate(ctx context.Context, playerID uuid.UUID) (int64, error) {
	return e.issueDate(ctx, playerID, models.Ban)
}

// BanExpireDate returns when the ban expires, in epoch milliseconds.
// It fails with [ErrTimestampOutOfRange] for permanent bans.
func (e *LegacyExtension) BanExpireDate(ctx context.Context, playerID uuid.UUID) (int64, error) {
	return e.expireDate(ctx, playerID, models.Ban)
}

// BanReason returns why the ban was issued.
func (e *LegacyExtension) BanReason(ctx context.Context, playerID uuid.UUID) (string, error) {
	return e.reason(ctx, playerID, models.Ban)
}

// IsMuted reports whether the player has an active mute.
func (e *LegacyExtension) IsMuted(ctx context.Context, playerID uuid.UUID) (bool, error) {
	return e.isPunished(ctx, playerID, models.Mute)
}

// MuteIssuer returns who muted the player.
func (e *LegacyExtension) MuteIssuer(ctx context.Context, playerID uuid.UUID) (string, error) {
	return e.issuer(ctx, playerID, models.Mute)
}

// MuteIssueDate returns when the mute was issued, in epoch milliseconds.
func (e *LegacyExtension) MuteIssueDate(ctx context.Context, playerID uuid.UUID) (int64, error) {
	return e.issueDate(ctx, playerID, models.Mute)
}

// MuteExpireDate returns when the mute expires, in epoch milliseconds.
// It fails with [ErrTimestampOutOfRange] for permanent mutes.
func (e *LegacyExtension) MuteExpireDate(ctx context.Context, playerID uuid.UUID) (int64, error) {
	return e.expireDate(ctx, playerID, models.Mute)
}

// MuteReason returns why the mute was issued.
func (e *LegacyExtension) MuteReason(ctx context.Context, playerID uuid.UUID) (string, error) {
	return e.reason(ctx, playerID, models.Mute)
}

func (e *LegacyExtension) isPunished(ctx context.Context, playerID uuid.UUID, kind models.PunishmentType) (bool, error) {
	punishment, err := e.lookup.FindPunishment(ctx, playerID, kind)
	return punishment != nil, err
}

func (e *LegacyExtension) issuer(ctx context.Context, playerID uuid.UUID, kind models.PunishmentType) (string, error) {
	punishment, err := e.require(ctx, playerID, kind)
	if err != nil {
		return "", err
	}
	return e.formatter.FormatOperator(ctx, punishment.Operator), nil
}

func (e *LegacyExtension) issueDate(ctx context.Context, playerID uuid.UUID, kind models.PunishmentType) (int64, error) {
	punishment, err := e.require(ctx, playerID, kind)
	if err != nil {
		return 0, err
	}
	return utils.EpochMilli(punishment.StartDate)
}

func (e *LegacyExtension) expireDate(ctx context.Context, playerID uuid.UUID, kind models.PunishmentType) (int64, error) {
	punishment, err := e.require(ctx, playerID, kind)
	if err != nil {
		return 0, err
	}
	return utils.EpochMilli(punishment.EndDate)
}

func (e *LegacyExtension) reason(ctx context.Context, playerID uuid.UUID, kind models.PunishmentType) (string, error) {
	punishment, err := e.require(ctx, playerID, kind)
	if err != nil {
		return "", err
	}
	return punishment.Reason, nil
}

// require looks up a punishment that the caller has established to be present.
func (e *LegacyExtension) require(ctx context.Context, playerID uuid.UUID, kind models.PunishmentType) (*models.Punishment, error) {
	punishment, err := e.lookup.FindPunishment(ctx, playerID, kind)
	if err != nil {
		return nil, err
	}
	if punishment == nil {
		panic(fmt.Errorf("%w: no active %s for %s", ErrMissingPunishment, kind, playerID))
	}

	return punishment, nil
}

// Collect builds the report of a player by calling the providers.
//
// Every punishment is looked up once. Boolean providers are evaluated first; a conditional
// provider is only evaluated when the condition it requires holds, and a date that cannot be
// represented leaves its field out.
//
// Args:
//   - ctx: The context bounding the lookups.
//   - playerID: The UUID of the player.
//
// Returns:
//   - *Report: The report of the player, in the same shape as [Extension.PunishmentData].
//   - error: An error if a lookup failed.
func (e *LegacyExtension) Collect(ctx context.Context, playerID uuid.UUID) (*Report, error) {
	resolved := map[models.PunishmentType]*models.Punishment{}
	for _, kind := range []models.PunishmentType{models.Ban, models.Mute} {
		punishment, err := e.lookup.FindPunishment(ctx, playerID, kind)
		if err != nil {
			return nil, err
		}
		resolved[kind] = punishment
	}

	report := NewReport()
	conditions := map[string]bool{}

	for _, p := range e.providers {
		if p.Kind != KindBoolean {
			continue
		}
		value := p.boolean(resolved[p.punishment])
		report.AddBoolean(p.FieldInfo, value)
		if value && p.Condition != "" {
			conditions[p.Condition] = true
		}
	}

	for _, p := range e.providers {
		if p.Kind == KindBoolean || !conditions[p.Requires] {
			continue
		}

		punishment := resolved[p.punishment]
		switch p.Kind {
		case KindString:
			report.AddString(p.FieldInfo, p.text(ctx, punishment))
		case KindNumber:
			value, err := p.number(punishment)
			if errors.Is(err, ErrTimestampOutOfRange) {
				log.Debug().Int64("ID", punishment.ID).Str("Field", p.Name).Err(err).Msg("Field omitted")
				continue
			}
			if err != nil {
				return nil, err
			}
			report.AddNumber(p.FieldInfo, value)
		}
	}

	return report, nil
}

// NewLegacyExtension creates a new [LegacyExtension].
//
// Args:
//   - lookup: The punishment lookup.
//   - formatter: The operator formatter.
//   - callEvents: The host events to be called on, player join and leave if empty.
func NewLegacyExtension(lookup *Lookup, formatter *Formatter, callEvents ...CallEvent) *LegacyExtension {
	if len(callEvents) == 0 {
		callEvents = []CallEvent{CallPlayerJoin, CallPlayerLeave}
	}

	e := &LegacyExtension{
		lookup:     lookup,
		formatter:  formatter,
		callEvents: callEvents,
	}

	present := func(p *models.Punishment) bool { return p != nil }
	issuer := func(ctx context.Context, p *models.Punishment) string { return e.formatter.FormatOperator(ctx, p.Operator) }
	reason := func(_ context.Context, p *models.Punishment) string { return p.Reason }
	issued := func(p *models.Punishment) (int64, error) { return utils.EpochMilli(p.StartDate) }
	expires := func(p *models.Punishment) (int64, error) { return utils.EpochMilli(p.EndDate) }

	e.providers = []legacyProvider{
		{Provider: Provider{FieldInfo: BannedField, Kind: KindBoolean, Condition: CONDITION_BANNED}, punishment: models.Ban, boolean: present},
		{Provider: Provider{FieldInfo: MutedField, Kind: KindBoolean, Condition: CONDITION_MUTED}, punishment: models.Mute, boolean: present},
	}
	for _, kind := range []models.PunishmentType{models.Ban, models.Mute} {
		fields := fieldsFor(kind)
		condition := CONDITION_BANNED
		if kind == models.Mute {
			condition = CONDITION_MUTED
		}

		e.providers = append(e.providers,
			legacyProvider{Provider: Provider{FieldInfo: fields.Operator, Kind: KindString, Requires: condition}, punishment: kind, text: issuer},
			legacyProvider{Provider: Provider{FieldInfo: fields.Date, Kind: KindNumber, Requires: condition}, punishment: kind, number: issued},
			legacyProvider{Provider: Provider{FieldInfo: fields.Expires, Kind: KindNumber, Requires: condition}, punishment: kind, number: expires},
			legacyProvider{Provider: Provider{FieldInfo: fields.Reason, Kind: KindString, Requires: condition}, punishment: kind, text: reason},
		)
	}

	return e
}
