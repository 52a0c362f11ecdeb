package invaders

// Stats tracks the session score, level, ships left and the high-score
// watermark. The watermark survives Reset for the life of the process.
type Stats struct {
	Score     int
	Level     int
	ShipsLeft int
	HighScore int
}

// Reset starts a new session: score 0, level 1, a full set of ships.
func (s *Stats) Reset(shipLimit int) {
	s.Score = 0
	s.Level = 1
	s.ShipsLeft = shipLimit
}

// AddPoints adds to the score and raises the watermark if it was exceeded.
// Negative amounts are ignored.
func (s *Stats) AddPoints(points int) {
	if points <= 0 {
		return
	}
	s.Score += points
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
}
