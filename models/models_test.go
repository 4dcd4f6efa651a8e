package models

import (
	"reflect"
	"testing"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("Alice", 100)

	if p.Name != "Alice" {
		t.Errorf("Expected name Alice, got %s", p.Name)
	}
	if p.Score != 100 {
		t.Errorf("Expected score 100, got %d", p.Score)
	}
	if p.GamesPlayed != 1 {
		t.Errorf("Expected games played 1, got %d", p.GamesPlayed)
	}
	if p.BestScore != 100 {
		t.Errorf("Expected best score 100, got %d", p.BestScore)
	}
	if !reflect.DeepEqual(p.ScoreHistory, []int{100}) {
		t.Errorf("Expected history [100], got %v", p.ScoreHistory)
	}
	if p.CurrentStreak != 0 {
		t.Errorf("Expected streak 0 on creation, got %d", p.CurrentStreak)
	}
}

func TestPlayer_UpdateScore_BestIsRunningMax(t *testing.T) {
	p := NewPlayer("Alice", 100)

	scores := []int{50, 200, 150, 300, 10}
	best := 100
	for _, s := range scores {
		p.UpdateScore(s)
		if s > best {
			best = s
		}
		if p.BestScore != best {
			t.Errorf("After score %d: expected best %d, got %d", s, best, p.BestScore)
		}
		if p.Score != s {
			t.Errorf("After score %d: expected current score %d, got %d", s, s, p.Score)
		}
	}

	if p.GamesPlayed != 1+len(scores) {
		t.Errorf("Expected games played %d, got %d", 1+len(scores), p.GamesPlayed)
	}
	if len(p.ScoreHistory) != p.GamesPlayed {
		t.Errorf("History length %d does not match games played %d", len(p.ScoreHistory), p.GamesPlayed)
	}
}

func TestPlayer_UpdateScore_StreakOnlyOnNewBest(t *testing.T) {
	p := NewPlayer("Alice", 100)

	// Drops below best: streak resets.
	p.UpdateScore(50)
	if p.CurrentStreak != 0 {
		t.Errorf("Expected streak 0 after non-best score, got %d", p.CurrentStreak)
	}

	// New best: streak increments.
	p.UpdateScore(200)
	if p.CurrentStreak != 1 {
		t.Errorf("Expected streak 1 after new best, got %d", p.CurrentStreak)
	}

	// Another new best: streak keeps growing.
	p.UpdateScore(300)
	if p.CurrentStreak != 2 {
		t.Errorf("Expected streak 2 after second new best, got %d", p.CurrentStreak)
	}

	// Beats the previous score but not the best: still a reset.
	p.UpdateScore(250)
	if p.CurrentStreak != 0 {
		t.Errorf("Expected streak 0 after score below best, got %d", p.CurrentStreak)
	}

	// Equal to best is not a new best either.
	p.UpdateScore(300)
	if p.CurrentStreak != 0 {
		t.Errorf("Expected streak 0 after score equal to best, got %d", p.CurrentStreak)
	}
}

func TestPlayer_UpdateScore_Scenario(t *testing.T) {
	// Alice 100, 50, 200: reset at step two, increment at step three.
	p := NewPlayer("Alice", 100)
	p.UpdateScore(50)
	p.UpdateScore(200)

	if p.Score != 200 {
		t.Errorf("Expected current score 200, got %d", p.Score)
	}
	if p.BestScore != 200 {
		t.Errorf("Expected best score 200, got %d", p.BestScore)
	}
	if p.GamesPlayed != 3 {
		t.Errorf("Expected games played 3, got %d", p.GamesPlayed)
	}
	if !reflect.DeepEqual(p.ScoreHistory, []int{100, 50, 200}) {
		t.Errorf("Expected history [100 50 200], got %v", p.ScoreHistory)
	}
	if p.CurrentStreak != 1 {
		t.Errorf("Expected streak 1, got %d", p.CurrentStreak)
	}
}

func TestPlayer_AverageScore(t *testing.T) {
	p := NewPlayer("Alice", 100)
	p.UpdateScore(200)
	p.UpdateScore(300)

	if avg := p.AverageScore(); avg != 200 {
		t.Errorf("Expected average 200, got %f", avg)
	}

	empty := &Player{}
	if avg := empty.AverageScore(); avg != 0 {
		t.Errorf("Expected average 0 for empty history, got %f", avg)
	}
}

func TestPlayer_Stats_CopiesHistory(t *testing.T) {
	p := NewPlayer("Alice", 100)
	stats := p.Stats()

	stats.ScoreHistory[0] = 9999
	if p.ScoreHistory[0] != 100 {
		t.Error("Mutating the snapshot history must not affect the record")
	}

	if stats.AverageScore != 100 {
		t.Errorf("Expected average 100, got %f", stats.AverageScore)
	}
}
