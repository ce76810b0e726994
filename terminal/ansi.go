package terminal

// Escape sequences written directly during crash recovery, when tcell state can't be trusted
var (
	csiRIS           = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0          = []byte("\x1b[0m")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
	csiMouseOff      = []byte("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l")
)
