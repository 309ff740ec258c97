package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Default values for Manifest.
const (
	DefaultTokenEnv        = "STACKWATCH_TOKEN"
	DefaultIntervalSeconds = 3
	DefaultCheckpointPolls = 5
)

// DefaultManifest returns a Manifest with sensible default values.
// Endpoint is intentionally left empty; it must come from the manifest
// file or a command-line flag.
func DefaultManifest() Manifest {
	return Manifest{
		TokenEnv: DefaultTokenEnv,
		Poll: Poll{
			IntervalSeconds: DefaultIntervalSeconds,
			CheckpointPolls: DefaultCheckpointPolls,
		},
	}
}

// ValidationError represents a manifest validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// Load reads and parses the manifest at path. A missing file returns the
// defaults; defaults also apply for any omitted fields.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			m := DefaultManifest()
			return &m, nil
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m := DefaultManifest()
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if err := Validate(&m); err != nil {
		return nil, err
	}

	return &m, nil
}

// Validate checks that all manifest values are usable.
func Validate(m *Manifest) error {
	if m.TokenEnv == "" {
		return ValidationError{Field: "token_env", Message: "must not be empty"}
	}
	if m.Poll.IntervalSeconds <= 0 {
		return ValidationError{Field: "poll.interval_seconds", Message: "must be positive"}
	}
	if m.Poll.CheckpointPolls <= 0 {
		return ValidationError{Field: "poll.checkpoint_polls", Message: "must be positive"}
	}
	if m.RequiredVersion != "" {
		if _, err := semver.NewConstraint(m.RequiredVersion); err != nil {
			return ValidationError{Field: "required_version", Message: "not a valid version constraint"}
		}
	}
	return nil
}

// CheckVersion verifies the running stackwatch version against the
// manifest's required_version constraint. Unconstrained manifests and
// non-semver versions (development builds) always pass.
func CheckVersion(m *Manifest, version string) error {
	if m.RequiredVersion == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(m.RequiredVersion)
	if err != nil {
		return ValidationError{Field: "required_version", Message: "not a valid version constraint"}
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		// Development builds ("dev") are never gated.
		return nil
	}

	if !constraint.Check(v) {
		return fmt.Errorf("manifest requires stackwatch %s, running %s", m.RequiredVersion, version)
	}
	return nil
}
