package prereq

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("executable bits are not used on windows")
	}
}

func writeTool(t *testing.T, dir, name string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), mode))
	require.NoError(t, os.Chmod(path, mode))
	return path
}

func searchPath(dirs ...string) string {
	return strings.Join(dirs, string(os.PathListSeparator))
}

func TestSystemLookerFound(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	want := writeTool(t, dir, "mockcommand", 0o755)

	got, err := (&SystemLooker{}).LookPath("mockcommand", searchPath("/non/existent/path", dir))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSystemLookerFirstSegmentWins(t *testing.T) {
	skipOnWindows(t)
	first, second := t.TempDir(), t.TempDir()
	want := writeTool(t, first, "tool", 0o755)
	writeTool(t, second, "tool", 0o755)

	got, err := (&SystemLooker{}).LookPath("tool", searchPath(first, second))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSystemLookerSkipsNonExecutable(t *testing.T) {
	skipOnWindows(t)
	first, second := t.TempDir(), t.TempDir()
	writeTool(t, first, "tool", 0o644)
	want := writeTool(t, second, "tool", 0o755)

	got, err := (&SystemLooker{}).LookPath("tool", searchPath(first, second))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSystemLookerSkipsDirectories(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "tool"), 0o755))

	_, err := (&SystemLooker{}).LookPath("tool", dir)
	assert.True(t, errors.Is(err, exec.ErrNotFound))
}

func TestSystemLookerNotFound(t *testing.T) {
	tests := []struct {
		name       string
		searchPath string
	}{
		{"missing from path", t.TempDir()},
		{"empty path", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&SystemLooker{}).LookPath("nonexistentcommand", tt.searchPath)
			require.Error(t, err)
			assert.True(t, errors.Is(err, exec.ErrNotFound))

			var execErr *exec.Error
			require.ErrorAs(t, err, &execErr)
			assert.Equal(t, "nonexistentcommand", execErr.Name)
		})
	}
}

func TestSystemLookerEmptySegmentIsWorkingDir(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	writeTool(t, dir, "localtool", 0o755)
	t.Chdir(dir)

	got, err := (&SystemLooker{}).LookPath("localtool", searchPath("/non/existent/path", ""))
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, "localtool", filepath.Base(got))
}

func TestSystemLookerIgnoresProcessPath(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	writeTool(t, dir, "hiddentool", 0o755)
	t.Setenv("PATH", dir)

	_, err := (&SystemLooker{}).LookPath("hiddentool", t.TempDir())
	assert.Error(t, err)
}

func TestSystemLookerNameWithSeparator(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	want := writeTool(t, dir, "tool", 0o755)

	got, err := (&SystemLooker{}).LookPath(want, "")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCheckInstalledExpandsHome(t *testing.T) {
	skipOnWindows(t)
	home := t.TempDir()
	bin := filepath.Join(home, "bin")
	require.NoError(t, os.Mkdir(bin, 0o755))
	want := writeTool(t, bin, "hometool", 0o755)

	t.Setenv("HOME", home)
	t.Setenv("PATH", searchPath("/non/existent/path", "~/bin"))

	got, err := CheckInstalled(context.Background(), []string{"hometool"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"hometool": want}, got)
}

func TestCheckInstalledReportsMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := CheckInstalled(context.Background(), []string{"youwontfindme"})
	assert.Equal(t, []string{"youwontfindme"}, Missing(err))
	assert.EqualError(t, err, "1 error(s) found: youwontfindme is not installed")
}
