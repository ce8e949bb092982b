package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"desksort/internal/sorter"
	"desksort/internal/testsupport"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Failed", statusFailed, "2", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Failed:", "[FAILED] 2")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Moved", statusMoved, "3", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestRenderSortReportEmpty(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	report := &sorter.Report{Root: "/desk", StartedAt: start, FinishedAt: start.Add(5 * time.Millisecond)}

	var b strings.Builder
	renderSortReport(&b, report, false)
	out := b.String()
	requireContains(t, out, "== Sort /desk ==")
	requireContains(t, out, "[--] 0")
	requireContains(t, out, "5ms")
	if strings.Contains(out, "Destination") {
		t.Fatalf("empty report should not render a table:\n%s", out)
	}
}

func TestRenderStatusLinePlainHasNoTag(t *testing.T) {
	got := renderStatusLine("Duration", statusPlain, "5ms", true)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Duration:", "5ms")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderCountLineZeroIsNeutral(t *testing.T) {
	if got := renderCountLine("Failed", statusFailed, 0, false); !strings.HasSuffix(got, "[--] 0") {
		t.Fatalf("expected neutral tag for zero count, got %q", got)
	}
	if got := renderCountLine("Failed", statusFailed, 4, false); !strings.HasSuffix(got, "[FAILED] 4") {
		t.Fatalf("expected failed tag, got %q", got)
	}
}

func TestPathStatus(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	testsupport.WriteFile(t, file, "")

	tests := []struct {
		name    string
		path    string
		wantDir bool
		want    statusKind
	}{
		{"unset", "  ", true, statusUnset},
		{"absent", filepath.Join(dir, "missing"), true, statusAbsent},
		{"file where dir expected", file, true, statusNotDir},
		{"file", file, false, statusFound},
		{"dir", dir, true, statusFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pathStatus(tt.path, tt.wantDir); got != tt.want {
				t.Fatalf("pathStatus(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestShouldColorizeHonoursNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if shouldColorize(os.Stdout) {
		t.Fatal("expected NO_COLOR to disable color")
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}
