// models/models.go
package models

// Player 玩家记录模型
type Player struct {
	Name          string `json:"name"`
	Score         int    `json:"score"`
	GamesPlayed   int    `json:"games_played"`
	BestScore     int    `json:"best_score"`
	ScoreHistory  []int  `json:"score_history"`
	CurrentStreak int    `json:"current_streak"`
}

// NewPlayer creates a record from a player's first recorded game.
func NewPlayer(name string, score int) *Player {
	return &Player{
		Name:         name,
		Score:        score,
		GamesPlayed:  1,
		BestScore:    score,
		ScoreHistory: []int{score},
	}
}

// UpdateScore records one more game for the player. The streak counts
// consecutive games that strictly beat the previous best score; any game
// that fails to set a new best resets it.
func (p *Player) UpdateScore(newScore int) {
	p.Score = newScore
	p.GamesPlayed++
	p.ScoreHistory = append(p.ScoreHistory, newScore)

	if newScore > p.BestScore {
		p.BestScore = newScore
		p.CurrentStreak++
	} else {
		p.CurrentStreak = 0
	}
}

// AverageScore returns the arithmetic mean over all recorded games.
func (p *Player) AverageScore() float64 {
	if len(p.ScoreHistory) == 0 {
		return 0
	}
	sum := 0
	for _, s := range p.ScoreHistory {
		sum += s
	}
	return float64(sum) / float64(len(p.ScoreHistory))
}

// PlayerStats 玩家统计信息（只读快照）
type PlayerStats struct {
	Name          string  `json:"name"`
	CurrentScore  int     `json:"current_score"`
	BestScore     int     `json:"best_score"`
	GamesPlayed   int     `json:"games_played"`
	AverageScore  float64 `json:"average_score"`
	CurrentStreak int     `json:"current_streak"`
	ScoreHistory  []int   `json:"score_history"`
}

// Stats returns a read-only snapshot of the player's statistics. The
// history is copied so callers cannot mutate the record through it.
func (p *Player) Stats() *PlayerStats {
	history := make([]int, len(p.ScoreHistory))
	copy(history, p.ScoreHistory)

	return &PlayerStats{
		Name:          p.Name,
		CurrentScore:  p.Score,
		BestScore:     p.BestScore,
		GamesPlayed:   p.GamesPlayed,
		AverageScore:  p.AverageScore(),
		CurrentStreak: p.CurrentStreak,
		ScoreHistory:  history,
	}
}
