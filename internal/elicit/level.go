package elicit

import (
	"fmt"
	"strings"
)

// Level is how much the user wants to be bothered (or not) with questions.
// Levels are cumulative: each level runs all lower levels' questions first.
type Level int

const (
	// Batch asks no questions; suitable for non-interactive or scripted runs.
	Batch Level = iota
	// Default asks only the essential questions.
	Default
	// Advanced adds finer control over common advanced settings.
	Advanced
	// Full asks every possible question.
	Full
)

var levelNames = map[Level]string{
	Batch:    "batch",
	Default:  "default",
	Advanced: "advanced",
	Full:     "full",
}

// levelAliases are shorter ways for the caller to choose a level.
var levelAliases = map[string]Level{
	"b": Batch,
	"d": Default,
	"a": Advanced,
	"f": Full,
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel resolves a level name or its single-letter alias.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if level, ok := levelAliases[s]; ok {
		return level, nil
	}
	for level, name := range levelNames {
		if s == name {
			return level, nil
		}
	}
	return Batch, fmt.Errorf("unknown level %q (valid: %s)", s, strings.Join(LevelNames(), ", "))
}

// LevelNames returns every valid level name in ascending order.
func LevelNames() []string {
	return []string{"batch", "default", "advanced", "full"}
}
