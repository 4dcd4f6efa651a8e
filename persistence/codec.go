// persistence/codec.go
package persistence

import (
	"fmt"
	"strconv"
	"strings"
)

// joinHistory encodes a score history as a comma-joined list. Every
// backend stores the history in this format.
func joinHistory(history []int) string {
	parts := make([]string, len(history))
	for i, s := range history {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}

func splitHistory(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	history := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad history entry %q: %w", p, err)
		}
		history = append(history, v)
	}
	return history, nil
}
