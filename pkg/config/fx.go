package config

import (
	"os"

	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Function attempts to load the configuration from .sqlfmt.yaml if it
	// exists. A missing file yields the defaults, so the CLI works in any
	// directory without setup.
	func() (*Config, error) {
		if _, err := os.Stat(FileName); os.IsNotExist(err) {
			return Default(), nil
		}

		return LoadConfigFile(FileName)
	},
))
