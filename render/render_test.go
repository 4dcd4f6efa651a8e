package render

import (
	"strings"
	"testing"

	"github.com/wfunc/scoreboard/models"
)

func rankedPlayers() []*models.Player {
	return []*models.Player{
		{Name: "Charlie", Score: 9100},
		{Name: "Alice", Score: 8500},
		{Name: "Bob", Score: 7200},
	}
}

func TestTable(t *testing.T) {
	out := Table(rankedPlayers())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Column header, separator, three data rows.
	if len(lines) != 5 {
		t.Fatalf("Expected 5 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Rank") || !strings.Contains(lines[0], "Gap") {
		t.Errorf("Unexpected column header: %q", lines[0])
	}

	// Rank 1 has no gap; later ranks show the distance to the rank above.
	if !strings.Contains(lines[2], "Charlie") || !strings.Contains(lines[2], "-") {
		t.Errorf("Unexpected first row: %q", lines[2])
	}
	if !strings.Contains(lines[3], "Alice") || !strings.Contains(lines[3], "600") {
		t.Errorf("Expected gap 600 for Alice: %q", lines[3])
	}
	if !strings.Contains(lines[4], "Bob") || !strings.Contains(lines[4], "1300") {
		t.Errorf("Expected gap 1300 for Bob: %q", lines[4])
	}
}

func TestTable_Empty(t *testing.T) {
	out := Table(nil)
	if !strings.Contains(out, "No players yet") {
		t.Errorf("Expected empty-board message, got %q", out)
	}
}

func TestWithHeader(t *testing.T) {
	show := WithHeader("LEADERBOARD", Table)
	out := show(rankedPlayers())

	bar := strings.Repeat("=", 60)
	if strings.Count(out, bar) != 3 {
		t.Errorf("Expected banner above, below title and at the end:\n%s", out)
	}
	if !strings.Contains(out, "LEADERBOARD") {
		t.Errorf("Header title missing:\n%s", out)
	}
	if !strings.Contains(out, "Charlie") {
		t.Errorf("Wrapped renderer output missing:\n%s", out)
	}
}
