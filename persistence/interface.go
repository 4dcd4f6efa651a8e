// persistence/interface.go
package persistence

import (
	"errors"

	"github.com/wfunc/scoreboard/models"
)

// Store 排行榜持久化接口
type Store interface {
	// Save overwrites the stored leaderboard with the given players,
	// in ranking order. It never appends.
	Save(players []*models.Player) error
	// Load reads back every stored player. A missing or never-written
	// target yields an empty slice, not an error.
	Load() ([]*models.Player, error)
	Close() error
}

// 错误定义
var (
	ErrReadFailed  = errors.New("failed to read leaderboard")
	ErrWriteFailed = errors.New("failed to write leaderboard")
)
