// Package inspect provides UI introspection for debugging and automated testing.
// It lets scripts and tests read the split layout without looking at the screen.
package inspect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Introspectable is implemented by UI components that can report their state.
type Introspectable interface {
	// InspectNode returns a structured representation of this component.
	InspectNode() *Node
}

// InspectEnv enables writing a snapshot after every render. "1" writes JSON
// to DefaultFileName in the temp dir; any other value is the file to write,
// as text when it ends in ".txt".
const InspectEnv = "SPLITPANE_INSPECT"

// DefaultFileName is the snapshot file used when InspectEnv is "1".
const DefaultFileName = "splitpane-inspect.json"

var (
	enabled     bool
	enabledOnce sync.Once
	inspectFile string
)

// IsEnabled returns true if inspection mode is active.
func IsEnabled() bool {
	enabledOnce.Do(func() {
		enabled, inspectFile = resolveTarget(os.Getenv(InspectEnv))
	})
	return enabled
}

func resolveTarget(v string) (bool, string) {
	switch v = strings.TrimSpace(v); v {
	case "", "0", "false":
		return false, ""
	case "1", "true":
		return true, filepath.Join(os.TempDir(), DefaultFileName)
	default:
		return true, v
	}
}

// GetInspectFile returns the path to the inspection output file.
func GetInspectFile() string {
	if !IsEnabled() {
		return ""
	}
	return inspectFile
}

// WriteSnapshot writes a snapshot to the inspection file.
func WriteSnapshot(snapshot *Snapshot) error {
	if !IsEnabled() {
		return nil
	}
	return WriteSnapshotToPath(snapshot, inspectFile)
}

// WriteSnapshotToPath replaces path with the snapshot, as text when path
// ends in ".txt" and as JSON otherwise. Readers never see a partial file.
func WriteSnapshotToPath(snapshot *Snapshot, path string) error {
	var data []byte
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		data = []byte(snapshot.ToText())
	} else {
		var err error
		data, err = json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".inspect-*")
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}
