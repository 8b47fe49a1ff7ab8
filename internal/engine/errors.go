package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrQuestNotFound     = errors.New("quest not found")
	ErrEmptyTitle        = errors.New("title is required")
)

// AmbiguousIDError indicates a quest id prefix matched more than one quest.
// The matches are listed so the user can type a longer prefix.
type AmbiguousIDError struct {
	Prefix  string
	Matches []string
}

func (e AmbiguousIDError) Error() string {
	if len(e.Matches) == 0 {
		return fmt.Sprintf("quest id '%s' is ambiguous", e.Prefix)
	}
	return fmt.Sprintf("quest id '%s' is ambiguous (%s)", e.Prefix, strings.Join(e.Matches, ", "))
}
