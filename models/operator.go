package models

import "github.com/google/uuid"

// OperatorType is the type name of a punishment issuer.
type OperatorType string

// Operator types known to the bridge.
const (
	ConsoleOperatorType OperatorType = "CONSOLE"
	PlayerOperatorType  OperatorType = "PLAYER"
)

// String returns a string of said OperatorType.
func (t OperatorType) String() string {
	return string(t)
}

// Operator is the issuer of a punishment.
//
// The set of implementations is closed: [ConsoleOperator], [PlayerOperator] and [OtherOperator].
type Operator interface {
	Type() OperatorType
	operator()
}

// ConsoleOperator is the server console.
type ConsoleOperator struct{}

// Type returns [ConsoleOperatorType].
func (ConsoleOperator) Type() OperatorType { return ConsoleOperatorType }
func (ConsoleOperator) operator() {}

// PlayerOperator is a player who issued a punishment.
type PlayerOperator struct {
	UUID uuid.UUID // UUID of the player.
}

// Type returns [PlayerOperatorType].
func (PlayerOperator) Type() OperatorType { return PlayerOperatorType }
func (PlayerOperator) operator() {}

// OtherOperator is any issuer the bridge has no dedicated rendering for.
type OtherOperator struct {
	Kind OperatorType // Type name reported by the punishment service.
}

// Type returns the operator's own kind.
func (o OtherOperator) Type() OperatorType { return o.Kind }
func (OtherOperator) operator() {}
