package core

// Color is the foreground of a screen cell. The terminal front end maps
// each one to an ANSI code.
type Color uint8

// Colors used by the arcade palette.
const (
	ColorDefault      Color = iota
	ColorRed                // 1UP label, captured fighter
	ColorMagenta            // Hurt boss Galaga
	ColorCyan               // Banners, tractor beam
	ColorBrightRed          // Butterflies, enemy bullets
	ColorBrightGreen        // Boss Galaga
	ColorBrightYellow       // Bees, stage badge
	ColorBrightCyan         // Point popups
	ColorBrightWhite        // Fighter, shots, score digits
	ColorOrange             // Enemy explosions
)
