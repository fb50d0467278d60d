package config

import (
	"io"

	"github.com/lgbarn/plyboard/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPlayerColour sets the colour seated on ranks 6-7.
func (b *ConfigBuilder) WithPlayerColour(colour chess.Colour) *ConfigBuilder {
	b.cfg.Game.PlayerColour = colour
	return b
}

// WithLayout sets the starting layout text.
func (b *ConfigBuilder) WithLayout(layout string) *ConfigBuilder {
	b.cfg.Game.Layout = layout
	return b
}

// WithListenAddr sets the server address.
func (b *ConfigBuilder) WithListenAddr(addr string) *ConfigBuilder {
	b.cfg.Server.ListenAddr = addr
	return b
}

// WithDataDir sets the badger data directory.
func (b *ConfigBuilder) WithDataDir(dir string) *ConfigBuilder {
	b.cfg.Server.DataDir = dir
	return b
}

// WithWebsocket enables or disables the websocket move stream.
func (b *ConfigBuilder) WithWebsocket(enabled bool) *ConfigBuilder {
	b.cfg.Server.EnableWebsocket = enabled
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.JSONFormat = enabled
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLogFile sets the log destination.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithOutput sets the output destination.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}
