// Package prereq verifies that required commands are installed before a
// program goes any further.
//
// Every command is looked up, in order, before anything is reported. Either
// all of them resolve and a name to path map is returned, or a *CheckError
// lists each one that did not.
//
//	paths, err := prereq.CheckInstalled(ctx, []string{"git", "python3"})
//	if err != nil {
//		var cerr *prereq.CheckError
//		if errors.As(err, &cerr) {
//			for _, e := range cerr.Errors {
//				fmt.Fprintln(os.Stderr, e)
//			}
//		}
//		os.Exit(1)
//	}
package prereq

import (
	"context"

	"github.com/frostyard/prereqs/internal/ctxlog"
	"github.com/frostyard/prereqs/pathlist"
)

// Diagnostic returns the message reported for a command that is not installed.
func Diagnostic(name string) string {
	return name + " is not installed"
}

// CheckInstalled resolves names against the process PATH, with a leading ~
// in each PATH entry expanded to the user's home directory.
func CheckInstalled(ctx context.Context, names []string) (map[string]string, error) {
	return Check(ctx, &SystemLooker{}, pathlist.FromEnv(), names)
}

// Check resolves every name in names against searchPath using l.
// A nil l means a SystemLooker.
//
// All names are checked even after a miss. If every name resolves the
// returned map holds one entry per name; it is empty, not nil, for empty
// input. Otherwise the map is nil and the error is a *CheckError with one
// diagnostic per missing name in input order. Duplicate names are looked up
// and reported once per occurrence.
func Check(ctx context.Context, l Looker, searchPath string, names []string) (map[string]string, error) {
	if l == nil {
		l = &SystemLooker{}
	}

	paths := make(map[string]string, len(names))
	var diagnostics, missing []string

	for _, name := range names {
		path, err := l.LookPath(name, searchPath)
		if err != nil || path == "" {
			ctxlog.Debug(ctx, "command not found", "name", name, "error", err)
			diagnostics = append(diagnostics, Diagnostic(name))
			missing = append(missing, name)
			continue
		}
		ctxlog.Debug(ctx, "command found", "name", name, "path", path)
		paths[name] = path
	}

	if len(diagnostics) > 0 {
		return nil, &CheckError{Errors: diagnostics, Commands: missing}
	}
	return paths, nil
}
