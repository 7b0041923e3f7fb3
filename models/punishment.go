package models

import "time"

// PunishmentType represents the kind of a punishment.
type PunishmentType int

// Punishment types.
const (
	Ban PunishmentType = iota + 1
	Mute
	Warn
	Kick
)

// String returns a string of said PunishmentType.
func (t PunishmentType) String() string {
	switch t {
	case Ban:
		return "BAN"
	case Mute:
		return "MUTE"
	case Warn:
		return "WARN"
	case Kick:
		return "KICK"
	default:
		return "UNKNOWN"
	}
}

// Punishment represents a punishment record owned by the punishment service.
type Punishment struct {
	ID        int64          // ID of the punishment.
	Type      PunishmentType // Kind of the punishment.
	Victim    Victim         // Target of the punishment.
	Operator  Operator       // Issuer of the punishment.
	Reason    string         // Free-text reason.
	Scope     string         // Scope the punishment applies to, empty for global.
	StartDate time.Time      // Time the punishment was issued.
	EndDate   time.Time      // Time the punishment ends, zero for permanent punishments.
}

// IsPermanent reports whether the punishment has no end.
func (p *Punishment) IsPermanent() bool {
	return p.EndDate.IsZero()
}

// IsActive reports whether the punishment is in effect at the given time.
func (p *Punishment) IsActive(now time.Time) bool {
	if now.Before(p.StartDate) {
		return false
	}

	return p.IsPermanent() || now.Before(p.EndDate)
}
