package core

// DefaultTickRate is the simulation rate every timer in the game is tuned for.
const DefaultTickRate = 60

// RuntimeConfig is what the host tells a game on Reset.
// Screen size is in terminal cells; the game world keeps its own units.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // ticks per second
	Seed     int64 // 0 picks a time-based seed
}

// GameState is the summary the host reads after each tick.
type GameState struct {
	Score    int  // Banked score
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Paused   bool // Whether a menu is suspending the simulation
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Quit  bool // The game asked the host to exit after this tick
}
