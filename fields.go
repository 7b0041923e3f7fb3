package banbridge

import "github.com/n0h4rt/banbridge/models"

// Presentation metadata of every field the bridge reports.
var (
	BannedField = FieldInfo{
		Name:        FIELD_BANNED,
		Text:        "Banned",
		Description: "Is the player banned on LibertyBans",
		Priority:    PRIORITY_BANNED,
		Icon:        Icon{Name: "gavel", Family: FamilySolid, Color: ColorRed},
	}
	MutedField = FieldInfo{
		Name:        FIELD_MUTED,
		Text:        "Muted",
		Description: "Is the player muted on LibertyBans",
		Priority:    PRIORITY_MUTED,
		Icon:        Icon{Name: "bell-slash", Family: FamilySolid, Color: ColorDeepOrange},
	}

	banFields = punishmentFields{
		Operator: FieldInfo{
			Name:        FIELD_BAN_OPERATOR,
			Text:        "Banned by",
			Description: "Who banned the player",
			Priority:    PRIORITY_BAN_OPERATOR,
			Icon:        Icon{Name: "user", Family: FamilySolid, Color: ColorRed},
			PlayerName:  true,
		},
		Date: FieldInfo{
			Name:        FIELD_BAN_DATE,
			Text:        "Date",
			Description: "When the ban was issued",
			Priority:    PRIORITY_BAN_DATE,
			Icon:        Icon{Name: "calendar", Family: FamilyRegular, Color: ColorRed},
			Format:      FormatDateYear,
		},
		Expires: FieldInfo{
			Name:        FIELD_BAN_EXPIRES,
			Text:        "Ends",
			Description: "When the ban expires",
			Priority:    PRIORITY_BAN_EXPIRES,
			Icon:        Icon{Name: "calendar-check", Family: FamilyRegular, Color: ColorRed},
			Format:      FormatDateYear,
		},
		Reason: FieldInfo{
			Name:        FIELD_BAN_REASON,
			Text:        "Reason",
			Description: "Why the ban was issued",
			Priority:    PRIORITY_BAN_REASON,
			Icon:        Icon{Name: "comment", Family: FamilyRegular, Color: ColorRed},
		},
	}

	muteFields = punishmentFields{
		Operator: FieldInfo{
			Name:        FIELD_MUTE_OPERATOR,
			Text:        "Muted by",
			Description: "Who muted the player",
			Priority:    PRIORITY_MUTE_OPERATOR,
			Icon:        Icon{Name: "user", Family: FamilySolid, Color: ColorDeepOrange},
			PlayerName:  true,
		},
		Date: FieldInfo{
			Name:        FIELD_MUTE_DATE,
			Text:        "Date",
			Description: "When the mute was issued",
			Priority:    PRIORITY_MUTE_DATE,
			Icon:        Icon{Name: "calendar", Family: FamilyRegular, Color: ColorDeepOrange},
			Format:      FormatDateYear,
		},
		Expires: FieldInfo{
			Name:        FIELD_MUTE_EXPIRES,
			Text:        "Ends",
			Description: "When the mute expires",
			Priority:    PRIORITY_MUTE_EXPIRES,
			Icon:        Icon{Name: "calendar-check", Family: FamilyRegular, Color: ColorDeepOrange},
			Format:      FormatDateYear,
		},
		Reason: FieldInfo{
			Name:        FIELD_MUTE_REASON,
			Text:        "Reason",
			Description: "Why the mute was issued",
			Priority:    PRIORITY_MUTE_REASON,
			Icon:        Icon{Name: "comment", Family: FamilyRegular, Color: ColorDeepOrange},
		},
	}
)

// punishmentFields groups the fields reported only while a punishment is present.
type punishmentFields struct {
	Operator FieldInfo
	Date     FieldInfo
	Expires  FieldInfo
	Reason   FieldInfo
}

// fieldsFor returns the conditional fields of a punishment type.
func fieldsFor(kind models.PunishmentType) punishmentFields {
	if kind == models.Mute {
		return muteFields
	}
	return banFields
}
