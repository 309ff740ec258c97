package config

// Manifest represents the stackwatch.yaml file describing the deployment
// service to watch and how to present its resources.
type Manifest struct {
	// Endpoint is the deployment service base URL.
	Endpoint string `yaml:"endpoint"`
	// TokenEnv names the environment variable holding the API token.
	TokenEnv string `yaml:"token_env"`
	// RequiredVersion is an optional semver constraint on the stackwatch
	// version allowed to use this manifest, e.g. ">= 1.2".
	RequiredVersion string `yaml:"required_version,omitempty"`

	Poll    Poll    `yaml:"poll"`
	Aliases Aliases `yaml:"aliases"`
}

// Poll tunes the reconciliation loop.
type Poll struct {
	// IntervalSeconds is the fixed cadence between event fetches.
	IntervalSeconds int `yaml:"interval_seconds"`
	// CheckpointPolls bounds the resume search: the number of fetched
	// pages the checkpoint may be absent from before the run fails.
	CheckpointPolls int `yaml:"checkpoint_polls"`
}

// Aliases maps raw service identifiers to display names for the board.
type Aliases struct {
	// Resources maps logical resource ids to display names.
	Resources map[string]string `yaml:"resources,omitempty"`
	// Types maps resource types to display names.
	Types map[string]string `yaml:"types,omitempty"`
}
