package prereq

import (
	"errors"
	"fmt"
	"strings"
)

// CheckError is returned by Check when one or more commands are missing.
type CheckError struct {
	// Errors holds one diagnostic per missing command, in input order.
	Errors []string
	// Commands holds the missing command names, parallel to Errors.
	Commands []string
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%d error(s) found: %s", len(e.Errors), strings.Join(e.Errors, ", "))
}

// Missing returns the missing command names carried by err, or nil when err
// is not a *CheckError.
func Missing(err error) []string {
	var cerr *CheckError
	if errors.As(err, &cerr) {
		return cerr.Commands
	}
	return nil
}
