package banbridge

import (
	"context"

	"github.com/n0h4rt/banbridge/models"
)

// Formatter renders punishment issuers for display.
type Formatter struct {
	names       NameResolver
	unknownName string
}

// FormatOperator returns the display string of an operator.
//
// The console renders as "CONSOLE", a player as their last known name (or the unknown-name
// fallback), and any other operator as its type name.
func (f *Formatter) FormatOperator(ctx context.Context, operator models.Operator) string {
	switch op := operator.(type) {
	case models.ConsoleOperator:
		return CONSOLE_NAME
	case models.PlayerOperator:
		if name, ok := f.names.FetchNameOf(ctx, op.UUID); ok {
			return name
		}
		return f.unknownName
	case models.OtherOperator:
		return op.Type().String()
	case nil:
		return f.unknownName
	default:
		return op.Type().String()
	}
}

// NewFormatter creates a new [Formatter].
//
// Args:
//   - names: The host's name resolution service.
//   - unknownName: The fallback for players without a known name, "Unknown" if empty.
func NewFormatter(names NameResolver, unknownName string) *Formatter {
	if unknownName == "" {
		unknownName = DEFAULT_UNKNOWN_NAME
	}

	return &Formatter{names: names, unknownName: unknownName}
}
