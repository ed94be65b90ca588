package config

import (
	"maps"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/peter88213/aeon3md/internal/errors"
	"github.com/peter88213/aeon3md/internal/logger"
)

const component = "config"

// LoadOptions selects the configuration sources. Zero values skip a source.
type LoadOptions struct {
	// InstallDir holds the user-wide aeon3yw.ini.
	InstallDir string
	// SourcePath is the project file; an aeon3yw.ini next to it overrides
	// the install-wide one.
	SourcePath string
	// EnvFile is an optional .env file with AEON3MD_* assignments.
	EnvFile string
	// Environ replaces the process environment when non-nil.
	Environ map[string]string
}

// Load layers the label sources over Defaults, lowest first: install dir
// INI, source dir INI, EnvFile, environment. Missing INI and .env files are
// skipped.
func Load(opts LoadOptions) (Labels, error) {
	log := logger.Default().Module(component)
	labels := Defaults()

	v := viper.New()
	v.SetConfigType("ini")
	for _, path := range iniPaths(opts) {
		if _, err := os.Stat(path); err != nil {
			log.Debug("settings file skipped", logger.String("path", path))
			continue
		}
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return Labels{}, errors.Newf("cannot read settings %q: %w", path, err).
				Component(component).
				Category(errors.CategoryConfiguration).
				Context("path", path).
				Build()
		}
		log.Debug("settings file merged", logger.String("path", path))
	}
	if v.IsSet(IniSection) {
		if err := v.UnmarshalKey(IniSection, &labels); err != nil {
			return Labels{}, errors.Newf("invalid settings: %w", err).
				Component(component).
				Category(errors.CategoryConfiguration).
				Build()
		}
	}

	environ, err := environment(opts)
	if err != nil {
		return Labels{}, err
	}
	if err := env.ParseWithOptions(&labels, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}); err != nil {
		return Labels{}, errors.Newf("parse env: %w", err).
			Component(component).
			Category(errors.CategoryConfiguration).
			Build()
	}

	return labels, nil
}

// iniPaths returns the candidate settings files in ascending priority.
func iniPaths(opts LoadOptions) []string {
	var paths []string
	if opts.InstallDir != "" {
		paths = append(paths, filepath.Join(opts.InstallDir, IniFileName))
	}
	if opts.SourcePath != "" {
		paths = append(paths, filepath.Join(filepath.Dir(opts.SourcePath), IniFileName))
	}
	return paths
}

// environment merges the .env file under the process (or supplied)
// environment.
func environment(opts LoadOptions) (map[string]string, error) {
	merged := make(map[string]string)

	if opts.EnvFile != "" {
		vars, err := godotenv.Read(opts.EnvFile)
		switch {
		case err == nil:
			maps.Copy(merged, vars)
		case os.IsNotExist(err):
			logger.Default().Module(component).Debug("env file skipped",
				logger.String("path", opts.EnvFile))
		default:
			return nil, errors.Newf("cannot read env file %q: %w", opts.EnvFile, err).
				Component(component).
				Category(errors.CategoryConfiguration).
				Context("path", opts.EnvFile).
				Build()
		}
	}

	if opts.Environ != nil {
		maps.Copy(merged, opts.Environ)
	} else {
		maps.Copy(merged, env.ToMap(os.Environ()))
	}
	return merged, nil
}
