// Package config provides YAML-based configuration loading for term2048.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// MinBoardSize and MaxBoardSize bound board.size when it is set.
	MinBoardSize = 2
	MaxBoardSize = 8
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete term2048 configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig selects the board played by default.
type BoardConfig struct {
	Variant    string  `yaml:"variant"`
	Size       int     `yaml:"size"`        // 0 = use the variant's size
	Spawn4Prob float64 `yaml:"spawn4_prob"` // 0.0 - 1.0
}

// StorageConfig locates the session journal.
type StorageConfig struct {
	Path string `yaml:"path"` // empty = default location in the home directory
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address     string `yaml:"address"`
	HostKey     string `yaml:"host_key"`
	IdleTimeout int    `yaml:"idle_timeout"` // minutes
}

// IdleTimeoutDuration returns the idle timeout as a time.Duration.
func (s ServerConfig) IdleTimeoutDuration() time.Duration {
	return time.Duration(s.IdleTimeout) * time.Minute
}

// LogConfig sets the logger verbosity.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Board.Size != 0 && (c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize) {
		return fmt.Errorf("%w: board.size %d not in [%d, %d]", ErrInvalid, c.Board.Size, MinBoardSize, MaxBoardSize)
	}
	if c.Board.Spawn4Prob < 0 || c.Board.Spawn4Prob > 1 {
		return fmt.Errorf("%w: board.spawn4_prob %g not in [0, 1]", ErrInvalid, c.Board.Spawn4Prob)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: server.idle_timeout %d is negative", ErrInvalid, c.Server.IdleTimeout)
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
		}
	}
	return nil
}
