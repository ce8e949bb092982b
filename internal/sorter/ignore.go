package sorter

import (
	"github.com/bmatcuk/doublestar/v4"
)

// ignoreSet matches entry names against doublestar patterns. Patterns are
// validated by the config package; a pattern that still fails to parse never
// matches.
type ignoreSet []string

func (s ignoreSet) match(name string) (string, bool) {
	for _, pattern := range s {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return pattern, true
		}
	}
	return "", false
}
