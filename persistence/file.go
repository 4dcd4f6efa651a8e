// persistence/file.go
package persistence

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/wfunc/scoreboard/models"
)

const headerSeparator = "============================================================"

// FileStore 基于平面文本文件的排行榜存储
//
// File layout:
//
//	Line 1:    Leaderboard - Updated: <timestamp>
//	Line 2:    ============================================================
//	Line 3..N: <name>|<score>|<games_played>|<best_score>|<history_csv>
type FileStore struct {
	path string
	now  func() time.Time
}

// NewFileStore creates a store writing to the given path. The file is
// created on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		now:  time.Now,
	}
}

// Save truncates the file and writes the full leaderboard.
func (f *FileStore) Save(players []*models.Player) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Leaderboard - Updated: %s\n", f.now().Format("2006-01-02 15:04:05"))
	b.WriteString(headerSeparator + "\n")

	for _, p := range players {
		fmt.Fprintf(&b, "%s|%d|%d|%d|%s\n",
			p.Name, p.Score, p.GamesPlayed, p.BestScore, joinHistory(p.ScoreHistory))
	}

	if err := os.WriteFile(f.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

// Load reads the whole file back. A nonexistent file is an empty
// leaderboard. Any malformed data line fails the entire load.
func (f *FileStore) Load() ([]*models.Player, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	defer file.Close()

	var players []*models.Player
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo <= 2 {
			// Skip the timestamp header and the separator.
			continue
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		player, err := parseRecordLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrReadFailed, lineNo, err)
		}
		players = append(players, player)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	return players, nil
}

func (f *FileStore) Close() error {
	return nil
}

func parseRecordLine(line string) (*models.Player, error) {
	parts := strings.Split(line, "|")
	if len(parts) != 5 {
		return nil, fmt.Errorf("expected 5 fields, got %d", len(parts))
	}

	score, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("bad score %q: %v", parts[1], err)
	}
	gamesPlayed, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, fmt.Errorf("bad games played %q: %v", parts[2], err)
	}
	bestScore, err := strconv.Atoi(parts[3])
	if err != nil {
		return nil, fmt.Errorf("bad best score %q: %v", parts[3], err)
	}
	history, err := splitHistory(parts[4])
	if err != nil {
		return nil, err
	}

	return &models.Player{
		Name:         parts[0],
		Score:        score,
		GamesPlayed:  gamesPlayed,
		BestScore:    bestScore,
		ScoreHistory: history,
	}, nil
}
