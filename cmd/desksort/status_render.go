package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// statusKind tags one line of human output. Sort reports use the entry
// kinds; `config paths` uses the path kinds.
type statusKind int

const (
	statusPlain statusKind = iota
	statusNone
	statusMoved
	statusFailed
	statusFound
	statusAbsent
	statusNotDir
	statusUnset
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 12
	statusIndent     = "  "
)

var statusStyles = map[statusKind]struct{ tag, color string }{
	statusNone:   {"--", ansiBlue},
	statusMoved:  {"MOVED", ansiGreen},
	statusFailed: {"FAILED", ansiRed},
	statusFound:  {"FOUND", ansiGreen},
	statusAbsent: {"ABSENT", ansiYellow},
	statusNotDir: {"NOT A DIR", ansiRed},
	statusUnset:  {"UNSET", ansiYellow},
}

func renderStatusLine(label string, kind statusKind, value string, colorize bool) string {
	style, tagged := statusStyles[kind]
	text := value
	if tagged {
		text = strings.TrimSpace(fmt.Sprintf("[%s] %s", style.tag, value))
	}
	line := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", text)
	if colorize && tagged {
		return style.color + line + ansiReset
	}
	return line
}

// renderCountLine shows an entry count, falling back to statusNone when
// nothing happened so an empty scan does not read as a success or failure.
func renderCountLine(label string, kind statusKind, count int, colorize bool) string {
	if count == 0 {
		kind = statusNone
	}
	return renderStatusLine(label, kind, fmt.Sprintf("%d", count), colorize)
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

// shouldColorize reports whether w is an interactive terminal. NO_COLOR
// disables colour everywhere.
func shouldColorize(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
