package config

import (
	"errors"
	"fmt"
	"go/token"
	"slices"
)

var (
	// ErrEmptyName indicates a required attribute or tag name is missing.
	ErrEmptyName = errors.New("empty name")

	// ErrInvalidBundle indicates an unknown default bundle.
	ErrInvalidBundle = errors.New("invalid bundle")

	// ErrInvalidIdentifier indicates a Go identifier setting is not one.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// Validate checks that the configuration is complete.
func Validate(cfg *Configuration) error {
	var errs []error

	if cfg.Equatable.SkipAttribute == "" {
		errs = append(errs, fmt.Errorf("%w: equatable.skip_attribute", ErrEmptyName))
	}
	if cfg.Equatable.Conformance == "" {
		errs = append(errs, fmt.Errorf("%w: equatable.conformance", ErrEmptyName))
	}
	if cfg.Metadata.Tag == "" {
		errs = append(errs, fmt.Errorf("%w: metadata.tag", ErrEmptyName))
	}

	if !slices.Contains(Bundles, cfg.L10n.DefaultBundle) {
		errs = append(errs, fmt.Errorf("%w: l10n.default_bundle must be one of %v, got '%s'", ErrInvalidBundle, Bundles, cfg.L10n.DefaultBundle))
	}

	if !token.IsIdentifier(cfg.Go.RuntimePackage) {
		errs = append(errs, fmt.Errorf("%w: go.runtime_package '%s'", ErrInvalidIdentifier, cfg.Go.RuntimePackage))
	}
	if !token.IsIdentifier(cfg.Go.EqualMethod) || !token.IsExported(cfg.Go.EqualMethod) {
		errs = append(errs, fmt.Errorf("%w: go.equal_method must be an exported identifier, got '%s'", ErrInvalidIdentifier, cfg.Go.EqualMethod))
	}

	return errors.Join(errs...)
}
