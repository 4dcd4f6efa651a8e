// render/render.go
package render

import (
	"fmt"
	"strings"

	"github.com/wfunc/scoreboard/models"
)

const bannerWidth = 60

// Renderer turns a ranked player list into display text. Renderers are
// composed as plain functions, independent of the data model.
type Renderer func(players []*models.Player) string

// WithHeader wraps a renderer's output in a banner with a centered title.
func WithHeader(title string, r Renderer) Renderer {
	return func(players []*models.Player) string {
		var b strings.Builder
		bar := strings.Repeat("=", bannerWidth)
		b.WriteString("\n" + bar + "\n")
		b.WriteString(center(title, bannerWidth-4) + "\n")
		b.WriteString(bar + "\n")
		b.WriteString(r(players))
		b.WriteString(bar + "\n")
		return b.String()
	}
}

// Table renders rank, name, score and the score gap to the previous rank.
func Table(players []*models.Player) string {
	if len(players) == 0 {
		return "No players yet. Add some scores to get started!\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-6s %-20s %-10s %-10s\n", "Rank", "Player Name", "Score", "Gap")
	b.WriteString(strings.Repeat("-", bannerWidth) + "\n")

	prevScore := 0
	for i, p := range players {
		gap := "-"
		if i > 0 {
			gap = fmt.Sprintf("%d", prevScore-p.Score)
		}
		fmt.Fprintf(&b, "%-6d %-20s %-10d %-10s\n", i+1, p.Name, p.Score, gap)
		prevScore = p.Score
	}
	return b.String()
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
