package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frostyard/prereqs/prereq"
)

func TestFoundPlain(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf}

	p.Found([]string{"python", "git", "python"}, map[string]string{
		"git":    "/usr/bin/git",
		"python": "/usr/bin/python",
	})

	assert.Equal(t, "ok python  /usr/bin/python\nok git  /usr/bin/git\n", buf.String())
}

func TestMissingPlain(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf}

	p.Missing(&prereq.CheckError{
		Errors:   []string{"c1 is not installed", "c3 is not installed"},
		Commands: []string{"c1", "c3"},
	}, map[string]string{"c3": "install the c3 package"})

	want := "missing c1 is not installed\n" +
		"missing c3 is not installed\n" +
		"    install the c3 package\n"
	assert.Equal(t, want, buf.String())
}

func TestMissingWithoutCommands(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf}

	p.Missing(&prereq.CheckError{Errors: []string{"git is not installed"}}, map[string]string{"git": "hint"})

	assert.Equal(t, "missing git is not installed\n", buf.String())
}

func TestStyledKeepsText(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf, Styled: true}

	p.Found([]string{"git"}, map[string]string{"git": "/usr/bin/git"})
	p.Missing(&prereq.CheckError{
		Errors:   []string{"make is not installed"},
		Commands: []string{"make"},
	}, nil)

	out := buf.String()
	assert.Contains(t, out, "git")
	assert.Contains(t, out, "/usr/bin/git")
	assert.Contains(t, out, "make is not installed")
	assert.NotContains(t, out, "missing")
}
