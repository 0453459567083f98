package config

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Bouncing Balls"

	TPS = 60

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 28
	ButtonX      = 12
	ButtonY      = 34

	// History strip along the bottom edge
	HistorySize   = 240
	HistoryHeight = 40
	HistoryMargin = 12

	// Collision chime
	SampleRate     = 44100
	ChimeFrequency = 660.0
	ChimeMillis    = 60
	ChimeVolume    = -1.5
)
