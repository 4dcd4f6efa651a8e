package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/wfunc/scoreboard/config"
	"github.com/wfunc/scoreboard/leaderboard"
	"github.com/wfunc/scoreboard/logger"
	"github.com/wfunc/scoreboard/monitor"
	"github.com/wfunc/scoreboard/persistence"
	"github.com/wfunc/scoreboard/render"
)

func main() {
	// Initialize logger
	logger.Init()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize persistence backend
	store, err := openStore(cfg)
	if err != nil {
		logger.Log.Fatalf("Failed to open %s store: %v", cfg.Storage.Driver, err)
	}
	defer store.Close()

	// Initialize metrics
	var mon *monitor.Monitor
	if cfg.Server.MetricsAddress != "" {
		mon = monitor.NewMonitor("scoreboard")
		mon.StartServer(cfg.Server.MetricsAddress)
	}

	board := leaderboard.New(store, mon)

	if err := run(board, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (persistence.Store, error) {
	pg := cfg.Storage.Postgres
	switch cfg.Storage.Driver {
	case "", "file":
		return persistence.NewFileStore(cfg.Storage.File.Path), nil
	case "gorm":
		return persistence.NewGormStore(pg.Host, pg.Port, pg.User, pg.Password, pg.DBName)
	case "postgres":
		return persistence.NewPostgresStore(pg.Host, pg.Port, pg.User, pg.Password, pg.DBName)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func run(board *leaderboard.Leaderboard, args []string) error {
	if len(args) == 0 {
		usage()
		return nil
	}

	switch args[0] {
	case "add":
		if len(args) != 3 {
			return fmt.Errorf("usage: add <name> <score>")
		}
		if err := board.AddScore(args[1], args[2]); err != nil {
			return err
		}
		fmt.Printf("Score %s recorded for %s\n", args[2], args[1])
		return nil

	case "top":
		n := 5
		if len(args) > 1 {
			parsed, err := strconv.Atoi(args[1])
			if err != nil || parsed < 1 {
				return fmt.Errorf("usage: top [n]")
			}
			n = parsed
		}
		show := render.WithHeader("VIDEO GAME LEADERBOARD", render.Table)
		fmt.Print(show(board.TopPlayers(n)))
		return nil

	case "stats":
		if len(args) != 2 {
			return fmt.Errorf("usage: stats <name>")
		}
		stats, err := board.PlayerStats(args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Player: %s\n", stats.Name)
		fmt.Printf("Current Score: %d\n", stats.CurrentScore)
		fmt.Printf("Best Score: %d\n", stats.BestScore)
		fmt.Printf("Games Played: %d\n", stats.GamesPlayed)
		fmt.Printf("Average Score: %.2f\n", stats.AverageScore)
		fmt.Printf("Current Streak: %d\n", stats.CurrentStreak)
		fmt.Printf("Score History: %v\n", stats.ScoreHistory)
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  scoreboard add <name> <score>   record a score")
	fmt.Println("  scoreboard top [n]              show the top n players (default 5)")
	fmt.Println("  scoreboard stats <name>         show one player's statistics")
}
