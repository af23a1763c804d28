package core

// Color is a palette index for a screen cell. Hosts map it to terminal or
// window colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
)

// Stage roles.
const (
	ColorPipe       = ColorGreen
	ColorPipeCap    = ColorBrightGreen
	ColorGround     = ColorOrange
	ColorGroundStud = ColorYellow
	ColorActor      = ColorYellow
	ColorFaded      = ColorGray // elements mid-fade
)
