package snake

// ScoreStore persists finished-round scores.
type ScoreStore interface {
	// Record appends a score.
	Record(score int) error
	// TopScores returns up to limit best scores, highest first.
	TopScores(limit int) ([]int, error)
}

// SoundPlayer plays short clips. Play must not block and never reports failure;
// implementations log their own errors.
type SoundPlayer interface {
	Play(clip string)
}

type silent struct{}

func (silent) Play(string) {}
