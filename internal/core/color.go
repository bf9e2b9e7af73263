package core

// Color represents a foreground color for a screen cell.
// The platform maps these to terminal colors; games only pick a role.
type Color uint8

// Color roles used by the board renderer.
const (
	ColorDefault Color = iota
	ColorTitle
	ColorMuted
	ColorCardBack
	ColorCardFace
	ColorMatched
	ColorCursor
	ColorAlert
	ColorTimer
)
