// Package input turns terminal key events into per-frame simulation input
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Action is a bindable user intent
type Action uint8

const (
	ActionNone Action = iota
	ActionSpeedAUp
	ActionSpeedADown
	ActionSpeedBUp
	ActionSpeedBDown
	ActionSpeedAllUp
	ActionSpeedAllDown
	ActionForward
	ActionBack
	ActionLeft
	ActionRight
	ActionCapture
	ActionQuit
)

// KeyPress is one key event reduced to what the keymap needs
type KeyPress struct {
	Key  tcell.Key
	Rune rune
}

var runeBindings = map[rune]Action{
	'z': ActionSpeedAUp,
	'x': ActionSpeedADown,
	'n': ActionSpeedBUp,
	'm': ActionSpeedBDown,
	'u': ActionSpeedAllUp,
	'd': ActionSpeedAllDown,
	'p': ActionCapture,
}

var keyBindings = map[tcell.Key]Action{
	tcell.KeyUp:     ActionForward,
	tcell.KeyDown:   ActionBack,
	tcell.KeyLeft:   ActionLeft,
	tcell.KeyRight:  ActionRight,
	tcell.KeyEscape: ActionQuit,
	tcell.KeyCtrlC:  ActionQuit,
}

// Lookup maps a key press to its action, letters are case-insensitive
func Lookup(kp KeyPress) Action {
	if kp.Key == tcell.KeyRune {
		return runeBindings[unicode.ToLower(kp.Rune)]
	}
	return keyBindings[kp.Key]
}

// IsEdge reports whether the action fires once per press rather than while held
func (a Action) IsEdge() bool {
	return a == ActionCapture || a == ActionQuit
}
