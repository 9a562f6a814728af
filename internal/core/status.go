package core

// Status is the externally visible state of a round.
type Status struct {
	Score    int  // Current score (body length)
	GameOver bool // Whether the round has ended
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	Status Status
	Ate    bool // Food was eaten this tick
	Ended  bool // This tick ended the round
}
