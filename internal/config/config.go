// Package config holds the program wide constants every expansion rule reads.
//
// A Configuration is loaded once at start-up and passed by value afterwards;
// nothing mutates it once expansion begins.
package config

// Bundle is the canonical value of a resource bundle selector.
type Bundle string

const (
	BundleMain   Bundle = "main"
	BundleModule Bundle = "module"
)

// Bundles lists every canonical bundle in the order spellings are matched.
var Bundles = []Bundle{BundleMain, BundleModule}

// Configuration contains every tunable constant of the expansion rules.
type Configuration struct {
	Equatable EquatableConfig `mapstructure:"equatable"`
	Metadata  MetadataConfig  `mapstructure:"metadata"`
	L10n      L10nConfig      `mapstructure:"l10n"`
	Go        GoConfig        `mapstructure:"go"`
}

// EquatableConfig drives equality synthesis.
type EquatableConfig struct {
	// SkipAttribute excludes a member from comparison.
	SkipAttribute string `mapstructure:"skip_attribute"`
	// ViewMarker is the conformance that excludes a member named `body`.
	ViewMarker string `mapstructure:"view_marker"`
	// Conformance is written after the type name of the extension.
	Conformance string `mapstructure:"conformance"`
}

// MetadataConfig drives comment synthesis.
type MetadataConfig struct {
	// Tag starts every generated comment.
	Tag string `mapstructure:"tag"`
}

// L10nConfig drives localized resource synthesis.
type L10nConfig struct {
	// DefaultBundle is used when the bundle argument is omitted.
	DefaultBundle Bundle `mapstructure:"default_bundle"`
	// BundleType qualifies the long spelling of a bundle (`ResourceBundle.main`).
	BundleType string `mapstructure:"bundle_type"`
}

// GoConfig drives the Go rendering dialect.
type GoConfig struct {
	// RuntimePackage qualifies the constructors of generated expressions.
	RuntimePackage string `mapstructure:"runtime_package"`
	// RuntimeImport is the import path of RuntimePackage. When empty, generated
	// code references the package name without managing imports.
	RuntimeImport string `mapstructure:"runtime_import"`
	// EqualMethod is the name of the generated equality method.
	EqualMethod string `mapstructure:"equal_method"`
}

// Default returns the constants the expansion rules were designed around.
func Default() Configuration {
	return Configuration{
		Equatable: EquatableConfig{
			SkipAttribute: "SkipEquatable",
			ViewMarker:    "View",
			Conformance:   "@MainActor Equatable",
		},
		Metadata: MetadataConfig{
			Tag: "@Metadata",
		},
		L10n: L10nConfig{
			DefaultBundle: BundleModule,
			BundleType:    "ResourceBundle",
		},
		Go: GoConfig{
			RuntimePackage: "l10n",
			EqualMethod:    "Equal",
		},
	}
}

// BundleSpellings returns every accepted source spelling of b: the bare
// shorthand (`.main`) and the qualified form (`ResourceBundle.main`).
func (c Configuration) BundleSpellings(b Bundle) []string {
	spellings := []string{"." + string(b)}
	if c.L10n.BundleType != "" {
		spellings = append(spellings, c.L10n.BundleType+"."+string(b))
	}
	return spellings
}
