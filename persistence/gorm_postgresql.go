// persistence/gorm_postgresql.go
package persistence

import (
	"fmt"

	"github.com/wfunc/scoreboard/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormStore 基于 GORM 的 PostgreSQL 排行榜存储
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens a PostgreSQL connection through GORM and migrates
// the leaderboard table.
func NewGormStore(host string, port int, user, password, dbname string) (*GormStore, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.GormPlayer{}); err != nil {
		return nil, err
	}

	return &GormStore{db: db}, nil
}

// Save replaces the stored leaderboard with the given players. The delete
// and inserts run in one transaction so a failed save leaves the previous
// leaderboard intact.
func (g *GormStore) Save(players []*models.Player) error {
	err := g.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(&models.GormPlayer{}).Error; err != nil {
			return err
		}

		for _, p := range players {
			row := models.GormPlayer{
				Name:          p.Name,
				Score:         p.Score,
				GamesPlayed:   p.GamesPlayed,
				BestScore:     p.BestScore,
				History:       joinHistory(p.ScoreHistory),
				CurrentStreak: p.CurrentStreak,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

// Load reads back every stored player, best current score first.
func (g *GormStore) Load() ([]*models.Player, error) {
	var rows []models.GormPlayer
	if err := g.db.Order("score DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	players := make([]*models.Player, 0, len(rows))
	for _, row := range rows {
		history, err := splitHistory(row.History)
		if err != nil {
			return nil, fmt.Errorf("%w: player %q: %v", ErrReadFailed, row.Name, err)
		}
		players = append(players, &models.Player{
			Name:          row.Name,
			Score:         row.Score,
			GamesPlayed:   row.GamesPlayed,
			BestScore:     row.BestScore,
			ScoreHistory:  history,
			CurrentStreak: row.CurrentStreak,
		})
	}
	return players, nil
}

func (g *GormStore) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
