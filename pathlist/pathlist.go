// Package pathlist reads and rewrites executable search path lists.
package pathlist

import (
	"os"
	"path/filepath"
	"strings"
)

// userHomeDir is swapped out in tests.
var userHomeDir = os.UserHomeDir

// Split splits a search path list using the platform's separator rules.
// An empty list yields no segments.
func Split(searchPath string) []string {
	return filepath.SplitList(searchPath)
}

// Expand returns searchPath with a leading ~ in each segment replaced by home.
// Only "~" and "~/..." forms are expanded; "~user" is left as is.
// The rest of each segment is kept byte for byte.
func Expand(searchPath, home string) string {
	segments := Split(searchPath)
	for i, seg := range segments {
		segments[i] = expandSegment(seg, home)
	}
	return strings.Join(segments, string(os.PathListSeparator))
}

// FromEnv expands the process PATH using the current user's home directory.
// If the home directory cannot be determined, PATH is returned unexpanded.
func FromEnv() string {
	home, err := userHomeDir()
	if err != nil {
		home = ""
	}
	return Expand(os.Getenv("PATH"), home)
}

func expandSegment(seg, home string) string {
	if home == "" || !strings.HasPrefix(seg, "~") {
		return seg
	}
	if seg == "~" {
		return home
	}
	// "/" is accepted on every platform, the native separator as well.
	if seg[1] == '/' || seg[1] == os.PathSeparator {
		return home + seg[1:]
	}
	return seg
}
