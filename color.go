package editline

// Color is a symbolic color used by the highlighter and hint callbacks and
// resolved to an ANSI escape by Writer.AnsiColor. Values beyond Default are
// the fixed palette the refresh engine and completion listing rely on for
// brace-match and common-prefix highlighting (§4.4, §4.6).
type Color int

const (
	Default Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
	Error
)
