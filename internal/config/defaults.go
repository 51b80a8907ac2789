package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/tycoon.yaml
var defaultTycoonYAML []byte

// Default returns the embedded default game configuration.
// Panics if the embedded YAML is malformed, which is a build defect.
func Default() *GameConfig {
	cfg := &GameConfig{}
	if err := yaml.Unmarshal(defaultTycoonYAML, cfg); err != nil {
		panic("config: embedded default YAML is invalid: " + err.Error())
	}
	if err := cfg.Validate(); err != nil {
		panic("config: embedded default catalogs are invalid: " + err.Error())
	}
	return cfg
}
