package core

// Color is a foreground color for a screen cell as a "#rrggbb" hex string.
// The empty string means the terminal's default foreground.
type Color string

// HUD palette.
const (
	ColorDefault Color = ""
	ColorWhite   Color = "#f2f2f2"
	ColorGray    Color = "#7a7a7a"
	ColorYellow  Color = "#fee300"
	ColorRed     Color = "#e5484d"
	ColorGreen   Color = "#73aa73"
	ColorCyan    Color = "#5aa2fa"
)
