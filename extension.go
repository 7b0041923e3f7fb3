package banbridge

import (
	"context"

	"github.com/google/uuid"
	"github.com/n0h4rt/banbridge/models"
	"github.com/n0h4rt/banbridge/utils"
	"github.com/rs/zerolog/log"
)

// Extension reports a player's ban and mute state to the analytics host.
type Extension struct {
	lookup     *Lookup
	formatter  *Formatter
	callEvents []CallEvent
}

// Info returns the description of the extension.
func (e *Extension) Info() PluginInfo {
	return pluginInfo
}

// CallExtensionMethodsOn returns the host events on which [Extension.PunishmentData] should be called.
func (e *Extension) CallExtensionMethodsOn() []CallEvent {
	return append([]CallEvent(nil), e.callEvents...)
}

// PunishmentData builds the report of a player.
//
// The "banned" and "muted" flags are always present. The issuer, issue date, expiry date and reason
// of a punishment are present if and only if its flag is true; the expiry date is left out of
// permanent punishments.
//
// Args:
//   - ctx: The context bounding the lookups.
//   - playerID: The UUID of the player.
//
// Returns:
//   - *Report: The report of the player.
//   - error: An error if a lookup failed.
func (e *Extension) PunishmentData(ctx context.Context, playerID uuid.UUID) (*Report, error) {
	ban, err := e.lookup.FindPunishment(ctx, playerID, models.Ban)
	if err != nil {
		return nil, err
	}
	mute, err := e.lookup.FindPunishment(ctx, playerID, models.Mute)
	if err != nil {
		return nil, err
	}

	report := NewReport().
		AddBoolean(BannedField, ban != nil).
		AddBoolean(MutedField, mute != nil)

	if ban != nil {
		e.addPunishment(ctx, report, ban, banFields)
	}
	if mute != nil {
		e.addPunishment(ctx, report, mute, muteFields)
	}

	return report, nil
}

// addPunishment adds the conditional fields of a present punishment.
func (e *Extension) addPunishment(ctx context.Context, report *Report, punishment *models.Punishment, fields punishmentFields) {
	report.AddString(fields.Operator, e.formatter.FormatOperator(ctx, punishment.Operator))

	if millis, err := utils.EpochMilli(punishment.StartDate); err == nil {
		report.AddNumber(fields.Date, millis)
	} else {
		log.Debug().Int64("ID", punishment.ID).Str("Field", fields.Date.Name).Err(err).Msg("Field omitted")
	}

	if millis, err := utils.EpochMilli(punishment.EndDate); err == nil {
		report.AddNumber(fields.Expires, millis)
	} else {
		log.Debug().Int64("ID", punishment.ID).Str("Field", fields.Expires.Name).Err(err).Msg("Field omitted")
	}

	report.AddString(fields.Reason, punishment.Reason)
}

// NewExtension creates a new [Extension].
//
// Args:
//   - lookup: The punishment lookup.
//   - formatter: The operator formatter.
//   - callEvents: The host events to be called on, player join and leave if empty.
func NewExtension(lookup *Lookup, formatter *Formatter, callEvents ...CallEvent) *Extension {
	if len(callEvents) == 0 {
		callEvents = []CallEvent{CallPlayerJoin, CallPlayerLeave}
	}

	return &Extension{
		lookup:     lookup,
		formatter:  formatter,
		callEvents: callEvents,
	}
}

var pluginInfo = PluginInfo{
	Name: PLUGIN_NAME,
	Icon: Icon{Name: "gavel", Family: FamilySolid, Color: ColorRed},
}
