// Package config provides configuration for plyboard binaries.
package config

import (
	"fmt"
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	// Grouped settings
	Game   *GameConfig
	Server *ServerConfig

	// Output
	JSONFormat bool

	// Logging
	Verbosity int // 0=nothing, 1=lifecycle events, 2=every move
	LogFile   io.Writer

	// Output stream
	OutputFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Game:       NewGameConfig(),
		Server:     NewServerConfig(),
		Verbosity:  1,
		LogFile:    os.Stderr,
		OutputFile: os.Stdout,
	}
}

// Validate checks every group of settings.
func (c *Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}

// Logf writes a log line when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Logger returns Logf bound to c, for packages that should not depend
// on Config.
func (c *Config) Logger() func(level int, format string, args ...interface{}) {
	return c.Logf
}
