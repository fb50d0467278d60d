package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/plyboard/internal/chess"
	"github.com/lgbarn/plyboard/internal/engine"
	"github.com/lgbarn/plyboard/internal/errors"
	"github.com/lgbarn/plyboard/internal/testutil"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Game.PlayerColour != chess.White {
		t.Errorf("PlayerColour = %v, want White", cfg.Game.PlayerColour)
	}
	if cfg.Game.Layout != "" {
		t.Errorf("Layout = %q, want empty", cfg.Game.Layout)
	}
	if cfg.Server.ListenAddr != ":3000" {
		t.Errorf("ListenAddr = %q, want :3000", cfg.Server.ListenAddr)
	}
	if cfg.Server.DataDir != "" {
		t.Errorf("DataDir = %q, want empty", cfg.Server.DataDir)
	}
	if !cfg.Server.EnableWebsocket {
		t.Error("EnableWebsocket should be true by default")
	}
	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.LogFile == nil || cfg.OutputFile == nil {
		t.Error("LogFile and OutputFile should default to stderr and stdout")
	}
	testutil.AssertNoError(t, cfg.Validate())
}

// TestConfigBuilder verifies every builder method sets its field
func TestConfigBuilder(t *testing.T) {
	var logBuf, outBuf bytes.Buffer
	layout := strings.Repeat("0", 64)

	cfg := NewConfigBuilder().
		WithPlayerColour(chess.Black).
		WithLayout(layout).
		WithListenAddr("127.0.0.1:8080").
		WithDataDir("/tmp/plyboard").
		WithWebsocket(false).
		WithJSONOutput(true).
		WithVerbosity(2).
		WithLogFile(&logBuf).
		WithOutput(&outBuf).
		Build()

	testutil.AssertEqual(t, cfg.Game.PlayerColour, chess.Black)
	testutil.AssertEqual(t, cfg.Game.Layout, layout)
	testutil.AssertEqual(t, cfg.Server.ListenAddr, "127.0.0.1:8080")
	testutil.AssertEqual(t, cfg.Server.DataDir, "/tmp/plyboard")
	testutil.AssertFalse(t, cfg.Server.EnableWebsocket)
	testutil.AssertTrue(t, cfg.JSONFormat)
	testutil.AssertEqual(t, cfg.Verbosity, 2)
	testutil.AssertTrue(t, cfg.LogFile == &logBuf, "LogFile")
	testutil.AssertTrue(t, cfg.OutputFile == &outBuf, "OutputFile")
	testutil.AssertNoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no player colour", func(c *Config) { c.Game.PlayerColour = chess.NoColour }},
		{"short layout", func(c *Config) { c.Game.Layout = "123" }},
		{"bad piece code", func(c *Config) { c.Game.Layout = "8" + strings.Repeat("0", 63) }},
		{"address without port", func(c *Config) { c.Server.ListenAddr = "localhost" }},
		{"zero subscriber buffer", func(c *Config) { c.Server.SubscriberBuffer = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			testutil.AssertErrorIs(t, cfg.Validate(), errors.ErrInvalidConfig)
		})
	}
}

func TestGameConfig_NewBoard(t *testing.T) {
	t.Run("standard", func(t *testing.T) {
		g := NewGameConfig()
		g.PlayerColour = chess.Black

		b, err := g.NewBoard()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, b.PlayerColour(), chess.Black)
		testutil.AssertEqual(t, b.Tile(chess.MustCoord(4, 7)).Colour(), chess.Black)
	})

	t.Run("custom layout", func(t *testing.T) {
		g := NewGameConfig()
		g.Layout = "....6... ........ " + strings.Repeat("........ ", 4) + "........ ....6..."

		b, err := g.NewBoard()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, b.Tile(chess.MustCoord(4, 0)).Piece(), chess.King)
		testutil.AssertTrue(t, b.Tile(chess.MustCoord(0, 0)).IsEmpty())
	})

	t.Run("standard layout when blank", func(t *testing.T) {
		g := NewGameConfig()
		g.Layout = "   "
		layout, err := g.BoardLayout()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, layout, engine.StandardLayout)
	})
}

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLogFile(&buf).WithVerbosity(1).Build()

	cfg.Logf(1, "game %s created", "abc")
	cfg.Logf(2, "suppressed %d", 42)
	cfg.Logger()(0, "always")

	testutil.AssertEqual(t, buf.String(), "game abc created\nalways\n")

	cfg.LogFile = nil
	cfg.Logf(0, "dropped") // must not panic
}
