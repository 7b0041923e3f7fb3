package banbridge

import (
	"errors"

	"github.com/n0h4rt/banbridge/utils"
)

const (
	PLUGIN_NAME          = "LibertyBans"
	DEFAULT_PROVIDER     = "libertybans"
	DEFAULT_UNKNOWN_NAME = "Unknown"
	CONSOLE_NAME         = "CONSOLE"
	ENV_PREFIX           = "BANBRIDGE_"
)

const (
	PRIORITY_BANNED        = 100
	PRIORITY_BAN_OPERATOR  = 99
	PRIORITY_BAN_DATE      = 98
	PRIORITY_BAN_EXPIRES   = 96
	PRIORITY_BAN_REASON    = 95
	PRIORITY_MUTED         = 50
	PRIORITY_MUTE_OPERATOR = 49
	PRIORITY_MUTE_DATE     = 48
	PRIORITY_MUTE_EXPIRES  = 46
	PRIORITY_MUTE_REASON   = 45
)

const (
	FIELD_BANNED        = "banned"
	FIELD_BAN_OPERATOR  = "ban_operator"
	FIELD_BAN_DATE      = "ban_date"
	FIELD_BAN_EXPIRES   = "ban_expires"
	FIELD_BAN_REASON    = "ban_reason"
	FIELD_MUTED         = "muted"
	FIELD_MUTE_OPERATOR = "mute_operator"
	FIELD_MUTE_DATE     = "mute_date"
	FIELD_MUTE_EXPIRES  = "mute_expires"
	FIELD_MUTE_REASON   = "mute_reason"
)

const (
	CONDITION_BANNED = "banned"
	CONDITION_MUTED  = "muted"
)

var (
	ErrNotReady          = errors.New("punishment service not ready")
	ErrDisabled          = errors.New("bridge disabled")
	ErrMissingPunishment = errors.New("missing punishment")
	ErrUnknownCallEvent  = errors.New("unknown call event")

	ErrTimestampOutOfRange = utils.ErrOutOfRange
)
