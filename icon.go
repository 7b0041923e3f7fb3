package banbridge

// Color represents the color of an icon.
type Color int

// Colors supported by the analytics host.
const (
	ColorNone Color = iota
	ColorRed
	ColorPink
	ColorPurple
	ColorDeepPurple
	ColorIndigo
	ColorBlue
	ColorLightBlue
	ColorCyan
	ColorTeal
	ColorGreen
	ColorLightGreen
	ColorLime
	ColorYellow
	ColorAmber
	ColorOrange
	ColorDeepOrange
	ColorBrown
	ColorGrey
	ColorBlueGrey
	ColorBlack
)

var colorNames = [...]string{
	"NONE", "RED", "PINK", "PURPLE", "DEEP_PURPLE", "INDIGO", "BLUE", "LIGHT_BLUE", "CYAN", "TEAL",
	"GREEN", "LIGHT_GREEN", "LIME", "YELLOW", "AMBER", "ORANGE", "DEEP_ORANGE", "BROWN", "GREY",
	"BLUE_GREY", "BLACK",
}

// String returns a string of said Color.
func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "NONE"
	}
	return colorNames[c]
}

// Family represents the icon family.
type Family int

// Icon families.
const (
	FamilySolid Family = iota
	FamilyRegular
	FamilyBrand
)

// String returns a string of said Family.
func (f Family) String() string {
	switch f {
	case FamilyRegular:
		return "REGULAR"
	case FamilyBrand:
		return "BRAND"
	default:
		return "SOLID"
	}
}

// Icon describes the icon the analytics host renders next to a value.
type Icon struct {
	Name   string // Name of the icon.
	Family Family // Family of the icon.
	Color  Color  // Color of the icon.
}
