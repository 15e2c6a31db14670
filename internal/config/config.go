package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// DefaultFile is the requirements file looked up in the working directory.
const DefaultFile = "prereqs.toml"

// FsFactory returns the filesystem config files are read from and written to.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Command is a single required command.
type Command struct {
	Name string `toml:"name"`
	Hint string `toml:"hint,omitempty"`
}

// Config is the list of commands a project needs.
type Config struct {
	Commands []Command `toml:"command"`
}

// Load reads the requirements file at path.
// A missing file yields an empty config.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := afero.ReadFile(FsFactory(), path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Exists reports whether a requirements file is present at path.
func Exists(path string) bool {
	ok, err := afero.Exists(FsFactory(), path)
	return err == nil && ok
}

func (c *Config) Save(path string) error {
	f, err := FsFactory().Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}

// Validate reports every malformed entry at once.
func (c *Config) Validate() error {
	var result error
	for i, cmd := range c.Commands {
		switch {
		case cmd.Name == "":
			result = multierror.Append(result, fmt.Errorf("command %d: name is empty", i+1))
		case strings.TrimSpace(cmd.Name) != cmd.Name:
			result = multierror.Append(result, fmt.Errorf("command %d: name %q has surrounding whitespace", i+1, cmd.Name))
		}
	}
	return result
}

// Names returns the command names in file order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Commands))
	for _, cmd := range c.Commands {
		names = append(names, cmd.Name)
	}
	return names
}

// Hints maps command names to their install hints. Commands without a hint
// are left out.
func (c *Config) Hints() map[string]string {
	hints := make(map[string]string)
	for _, cmd := range c.Commands {
		if cmd.Hint != "" {
			hints[cmd.Name] = cmd.Hint
		}
	}
	return hints
}

// Add appends name, or updates its hint when it is already listed.
// It reports whether the config changed.
func (c *Config) Add(name, hint string) bool {
	for i, cmd := range c.Commands {
		if cmd.Name == name {
			if hint == "" || cmd.Hint == hint {
				return false
			}
			c.Commands[i].Hint = hint
			return true
		}
	}
	c.Commands = append(c.Commands, Command{Name: name, Hint: hint})
	return true
}

// Remove drops every entry named name and reports whether any was found.
func (c *Config) Remove(name string) bool {
	kept := c.Commands[:0]
	for _, cmd := range c.Commands {
		if cmd.Name != name {
			kept = append(kept, cmd)
		}
	}
	removed := len(kept) != len(c.Commands)
	c.Commands = kept
	return removed
}
