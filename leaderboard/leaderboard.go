// leaderboard/leaderboard.go
package leaderboard

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/wfunc/scoreboard/logger"
	"github.com/wfunc/scoreboard/models"
	"github.com/wfunc/scoreboard/monitor"
	"github.com/wfunc/scoreboard/persistence"
	"github.com/wfunc/scoreboard/validator"
)

// MaxPersistedPlayers is how many top players survive a save. Players
// ranked below this stay in memory for the current run only.
const MaxPersistedPlayers = 10

var ErrPlayerNotFound = errors.New("player not found")

// Leaderboard 排行榜核心引擎
//
// It owns the player collection, applies validation to every submission,
// computes rankings and re-saves the full board through its store after
// every successful mutation. Not safe for concurrent use; the tracker is
// single-user by design.
type Leaderboard struct {
	id      string
	store   persistence.Store
	monitor *monitor.Monitor
	players map[string]*models.Player
	order   []string // player names in insertion order, for deterministic ranking ties
}

// New builds a leaderboard bound to the given store and loads any
// previously saved state. A failed load is reported and leaves the board
// empty; it never aborts the run. The monitor may be nil.
func New(store persistence.Store, mon *monitor.Monitor) *Leaderboard {
	lb := &Leaderboard{
		id:      uuid.New().String(),
		store:   store,
		monitor: mon,
		players: make(map[string]*models.Player),
	}
	lb.load()
	return lb
}

func (lb *Leaderboard) load() {
	players, err := lb.store.Load()
	if err != nil {
		logger.Log.Errorf("Failed to load leaderboard (board %s), starting empty: %v", lb.id, err)
		return
	}
	for _, p := range players {
		lb.players[p.Name] = p
		lb.order = append(lb.order, p.Name)
	}
	if lb.monitor != nil {
		lb.monitor.SetPlayersTracked(len(lb.players))
	}
	logger.Log.Infof("Leaderboard loaded (board %s), %d players", lb.id, len(lb.players))
}

// AddScore validates a raw submission and records it, creating the player
// on first sight. Validation failure leaves the board untouched. A failed
// save after a successful mutation is reported but does not fail the call;
// the in-memory state stays intact, just unsaved.
func (lb *Leaderboard) AddScore(name, rawScore string) error {
	if err := validator.ValidateName(name); err != nil {
		lb.rejected(name, err)
		return err
	}
	score, err := validator.ParseScore(rawScore)
	if err != nil {
		lb.rejected(name, err)
		return err
	}

	if player, ok := lb.players[name]; ok {
		player.UpdateScore(score)
		logger.Log.Infof("Updated player %q with score %d (board %s)", name, score, lb.id)
	} else {
		lb.players[name] = models.NewPlayer(name, score)
		lb.order = append(lb.order, name)
		logger.Log.Infof("New player %q added with score %d (board %s)", name, score, lb.id)
	}

	if lb.monitor != nil {
		lb.monitor.IncScoresRecorded()
		lb.monitor.SetPlayersTracked(len(lb.players))
	}

	if err := lb.Save(); err != nil {
		logger.Log.Errorf("Failed to save leaderboard (board %s): %v", lb.id, err)
	}
	return nil
}

func (lb *Leaderboard) rejected(name string, err error) {
	if lb.monitor != nil {
		lb.monitor.IncValidationFailures()
	}
	logger.Log.Warnf("Rejected submission for %q: %v", name, err)
}

// TopPlayers returns up to n players sorted by current score, highest
// first. Ties keep insertion order, so rankings are stable within a run.
func (lb *Leaderboard) TopPlayers(n int) []*models.Player {
	ranked := make([]*models.Player, 0, len(lb.order))
	for _, name := range lb.order {
		ranked = append(ranked, lb.players[name])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// PlayerStats returns a read-only snapshot for one player.
func (lb *Leaderboard) PlayerStats(name string) (*models.PlayerStats, error) {
	player, ok := lb.players[name]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	return player.Stats(), nil
}

// Snapshot returns read-only stats for every tracked player in insertion
// order. This is the surface the analytics collaborator consumes.
func (lb *Leaderboard) Snapshot() []*models.PlayerStats {
	stats := make([]*models.PlayerStats, 0, len(lb.order))
	for _, name := range lb.order {
		stats = append(stats, lb.players[name].Stats())
	}
	return stats
}

// Len returns how many players the board currently tracks.
func (lb *Leaderboard) Len() int {
	return len(lb.players)
}

// Save overwrites the persistence target with the current top players.
func (lb *Leaderboard) Save() error {
	start := time.Now()
	err := lb.store.Save(lb.TopPlayers(MaxPersistedPlayers))
	if lb.monitor != nil {
		lb.monitor.ObserveSaveLatency(time.Since(start))
		if err != nil {
			lb.monitor.IncSaveErrors()
		}
	}
	return err
}
