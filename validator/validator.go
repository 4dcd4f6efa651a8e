// validator/validator.go
package validator

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MaxScore   = 10000
	MaxNameLen = 20
)

// 校验错误定义
var (
	ErrInvalidFormat = errors.New("score must be a number")
	ErrOutOfRange    = errors.New("score must be between 0 and 10000")
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrNameTooLong   = errors.New("name too long, maximum 20 characters")
)

// ParseScore parses a raw score string and checks it against the allowed
// range. It returns the parsed value on success.
func ParseScore(raw string) (int, error) {
	score, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidFormat
	}
	if score < 0 || score > MaxScore {
		return 0, ErrOutOfRange
	}
	return score, nil
}

// ValidateName checks a raw player name. Length is counted in characters,
// not bytes.
func ValidateName(raw string) error {
	if len(strings.TrimSpace(raw)) == 0 {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(raw) > MaxNameLen {
		return ErrNameTooLong
	}
	return nil
}
