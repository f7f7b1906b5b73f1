// Package snapshot provides golden file testing for rendered terminal output.
// Output is compared as plain text: escape sequences are stripped and
// trailing blanks are dropped, so color profiles do not matter.
package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// GoldenDir is the default directory for golden files
const GoldenDir = "testdata/golden"

// UpdateEnv rewrites golden files instead of comparing against them.
const UpdateEnv = "UPDATE_GOLDEN"

// Snap provides snapshot testing functionality
type Snap struct {
	t         testing.TB
	goldenDir string
	update    bool
}

// New creates a new Snap instance for the given test
func New(t testing.TB) *Snap {
	return &Snap{
		t:         t,
		goldenDir: GoldenDir,
		update:    os.Getenv(UpdateEnv) == "1",
	}
}

// WithDir sets a custom golden file directory
func (s *Snap) WithDir(dir string) *Snap {
	s.goldenDir = dir
	return s
}

// Path returns the golden file used for name.
func (s *Snap) Path(name string) string {
	return filepath.Join(s.goldenDir, name+".golden")
}

// Assert compares actual output against the golden file for name. With
// UPDATE_GOLDEN=1 the golden file is rewritten instead.
func (s *Snap) Assert(name, actual string) {
	s.t.Helper()

	path := s.Path(name)
	normalized := normalizeOutput(actual)

	if s.update {
		if err := os.MkdirAll(s.goldenDir, 0755); err != nil {
			s.t.Fatalf("failed to create golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(normalized), 0644); err != nil {
			s.t.Fatalf("failed to write golden file: %v", err)
		}
		s.t.Logf("Updated golden file: %s", path)
		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.t.Fatalf("Golden file not found: %s\nRun with %s=1 to create it.\nActual output:\n%s", path, UpdateEnv, normalized)
		}
		s.t.Fatalf("failed to read golden file: %v", err)
	}

	if want := normalizeOutput(string(expected)); want != normalized {
		s.t.Errorf("Snapshot mismatch for %s\n\nExpected:\n%s\n\nActual:\n%s\n\nRun with %s=1 to update.",
			name, want, normalized, UpdateEnv)
	}
}

// AssertContains checks that actual output contains the expected substring
func (s *Snap) AssertContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if !strings.Contains(normalized, substr) {
		s.t.Errorf("Output does not contain expected substring.\nExpected to contain: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertNotContains checks that actual output does NOT contain the substring
func (s *Snap) AssertNotContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if strings.Contains(normalized, substr) {
		s.t.Errorf("Output unexpectedly contains substring: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertSize checks that every line of actual is width cells wide and that
// there are height lines.
func (s *Snap) AssertSize(actual string, width, height int) {
	s.t.Helper()
	lines := strings.Split(StripANSI(actual), "\n")
	if len(lines) != height {
		s.t.Errorf("Output has %d lines, want %d", len(lines), height)
	}
	for i, line := range lines {
		if w := runewidth.StringWidth(line); w != width {
			s.t.Errorf("Line %d is %d cells wide, want %d: %q", i, w, width, line)
		}
	}
}

// normalizeOutput strips escape sequences, CRs and trailing blanks.
func normalizeOutput(s string) string {
	s = StripANSI(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// StripANSI removes escape sequences, hyperlinks included.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Lines returns the line count of the rendered output (useful for height tests)
func Lines(s string) int {
	return len(strings.Split(StripANSI(s), "\n"))
}

// Width returns the maximum cell width of the rendered output
func Width(s string) int {
	maxWidth := 0
	for _, line := range strings.Split(StripANSI(s), "\n") {
		if w := runewidth.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}
