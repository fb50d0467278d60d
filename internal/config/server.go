package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/plyboard/internal/errors"
)

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	// Address to listen on, host:port.
	ListenAddr string

	// Badger data directory; empty keeps games in memory only.
	DataDir string

	// Enable the websocket move stream.
	EnableWebsocket bool

	// Buffered events per websocket subscriber.
	SubscriberBuffer int
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		ListenAddr:       ":3000",
		EnableWebsocket:  true,
		SubscriberBuffer: 16,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if !strings.Contains(s.ListenAddr, ":") {
		return fmt.Errorf("listen address %q has no port: %w", s.ListenAddr, errors.ErrInvalidConfig)
	}
	if s.SubscriberBuffer < 1 {
		return fmt.Errorf("subscriber buffer %d < 1: %w", s.SubscriberBuffer, errors.ErrInvalidConfig)
	}
	return nil
}
