package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the configuration file looked up in the project root, without
// its extension.
const FileName = ".tino"

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Configuration, error)
}

type loader struct {
	rootDir string
	file    string
}

// NewLoader creates a loader that looks for .tino.yaml in rootDir.
func NewLoader(rootDir string) Loader {
	return &loader{rootDir: rootDir}
}

// NewFileLoader creates a loader that reads exactly the given file.
func NewFileLoader(file string) Loader {
	return &loader{file: file}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (TINO_*)
// 2. Config file (.tino.yaml in the root directory, or the explicit file)
// 3. Default values
func (l *loader) Load() (*Configuration, error) {
	v := viper.New()

	if l.file != "" {
		v.SetConfigFile(l.file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(l.rootDir)
	}

	v.SetEnvPrefix("TINO")
	v.AutomaticEnv()
	// TINO_EQUATABLE_VIEW_MARKER overrides equatable.view_marker
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Only a missing searched file is acceptable, an explicit one must exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || l.file != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Configuration{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults registers every key so that AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("equatable.skip_attribute", defaults.Equatable.SkipAttribute)
	v.SetDefault("equatable.view_marker", defaults.Equatable.ViewMarker)
	v.SetDefault("equatable.conformance", defaults.Equatable.Conformance)

	v.SetDefault("metadata.tag", defaults.Metadata.Tag)

	v.SetDefault("l10n.default_bundle", string(defaults.L10n.DefaultBundle))
	v.SetDefault("l10n.bundle_type", defaults.L10n.BundleType)

	v.SetDefault("go.runtime_package", defaults.Go.RuntimePackage)
	v.SetDefault("go.runtime_import", defaults.Go.RuntimeImport)
	v.SetDefault("go.equal_method", defaults.Go.EqualMethod)
}
