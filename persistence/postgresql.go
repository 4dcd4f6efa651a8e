// persistence/postgresql.go
package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// PostgreSQL 驱动
	_ "github.com/lib/pq"

	"github.com/wfunc/scoreboard/models"
)

// PostgresStore 基于 database/sql 的 PostgreSQL 排行榜存储
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a raw database/sql connection and creates the
// leaderboard table if it does not exist.
func NewPostgresStore(host string, port int, user, password, dbname string) (*PostgresStore, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	// 测试连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := initTables(db); err != nil {
		return nil, err
	}

	return &PostgresStore{db: db}, nil
}

// initTables 初始化数据库表结构
func initTables(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS leaderboard_players (
            id SERIAL PRIMARY KEY,
            name VARCHAR(20) UNIQUE NOT NULL,
            score INTEGER NOT NULL,
            games_played INTEGER NOT NULL DEFAULT 1,
            best_score INTEGER NOT NULL,
            history TEXT NOT NULL,
            current_streak INTEGER NOT NULL DEFAULT 0,
            updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        )
    `)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
        CREATE INDEX IF NOT EXISTS idx_leaderboard_players_score ON leaderboard_players(score)
    `)
	return err
}

// Save replaces the stored leaderboard inside one transaction.
func (p *PostgresStore) Save(players []*models.Player) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM leaderboard_players`); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	query := `
        INSERT INTO leaderboard_players (name, score, games_played, best_score, history, current_streak)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	for _, player := range players {
		_, err := tx.ExecContext(ctx, query,
			player.Name,
			player.Score,
			player.GamesPlayed,
			player.BestScore,
			joinHistory(player.ScoreHistory),
			player.CurrentStreak)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWriteFailed, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

// Load reads back every stored player, best current score first.
func (p *PostgresStore) Load() ([]*models.Player, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rows, err := p.db.QueryContext(ctx, `
        SELECT name, score, games_played, best_score, history, current_streak
        FROM leaderboard_players
        ORDER BY score DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	defer rows.Close()

	var players []*models.Player
	for rows.Next() {
		var (
			player  models.Player
			history string
		)
		if err := rows.Scan(&player.Name, &player.Score, &player.GamesPlayed,
			&player.BestScore, &history, &player.CurrentStreak); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
		}
		player.ScoreHistory, err = splitHistory(history)
		if err != nil {
			return nil, fmt.Errorf("%w: player %q: %v", ErrReadFailed, player.Name, err)
		}
		players = append(players, &player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	return players, nil
}

func (p *PostgresStore) Close() error {
	return p.db.Close()
}
