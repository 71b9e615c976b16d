package config

import (
	_ "embed"
)

//go:embed defaults/term2048.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration used when no file is readable.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Variant:    "classic",
			Spawn4Prob: 0.2,
		},
		Server: ServerConfig{
			Address:     ":2048",
			HostKey:     ".ssh/term2048_ed25519",
			IdleTimeout: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
