package prereq

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/frostyard/prereqs/pathlist"
)

// Looker resolves a command name to an executable path. Mockable for tests.
type Looker interface {
	// LookPath searches searchPath for an executable named name.
	LookPath(name, searchPath string) (string, error)
}

// SystemLooker resolves commands on the real filesystem using exec.LookPath.
type SystemLooker struct{}

// LookPath tries each segment of searchPath in order and returns the first
// executable match as an absolute path. Names containing a path separator
// are checked as given and searchPath is not consulted.
func (l *SystemLooker) LookPath(name, searchPath string) (string, error) {
	if strings.ContainsAny(name, `/`+string(os.PathSeparator)) {
		path, err := exec.LookPath(name)
		if err != nil {
			return "", err
		}
		return filepath.Abs(path)
	}

	for _, dir := range pathlist.Split(searchPath) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, name)
		if !strings.ContainsRune(candidate, os.PathSeparator) {
			// Keep exec.LookPath from falling back to its own PATH search.
			candidate = "." + string(os.PathSeparator) + candidate
		}
		path, err := exec.LookPath(candidate)
		if err != nil {
			continue
		}
		return filepath.Abs(path)
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}
