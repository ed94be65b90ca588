// Package cli holds the settings shared by the command line commands.
package cli

import (
	"os"
	"path/filepath"

	"github.com/peter88213/aeon3md/config"
	"github.com/peter88213/aeon3md/render"
)

// Settings are the values of the global and command flags.
type Settings struct {
	ConfigDir string
	EnvFile   string
	LogLevel  string
	Templates string

	Silent bool
	Force  bool
	All    bool
}

// DefaultConfigDir returns the directory of the user-wide aeon3yw.ini, or ""
// when the home directory is unknown.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pywriter", "aeon3yw", "config")
}

// Labels loads the field labels for source.
func (s *Settings) Labels(source string) (config.Labels, error) {
	return config.Load(config.LoadOptions{
		InstallDir: s.ConfigDir,
		SourcePath: source,
		EnvFile:    s.EnvFile,
	})
}

// TemplateSet loads the --templates file. ok is false when none was given.
func (s *Settings) TemplateSet() (set render.Set, ok bool, err error) {
	if s.Templates == "" {
		return render.Set{}, false, nil
	}
	set, err = render.LoadSet(s.Templates)
	if err != nil {
		return render.Set{}, false, err
	}
	return set, true, nil
}
