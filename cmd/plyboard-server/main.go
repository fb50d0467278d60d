// plyboard-server serves games over HTTP and websockets, persisting them
// in a Badger database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lgbarn/plyboard/internal/chess"
	"github.com/lgbarn/plyboard/internal/config"
	"github.com/lgbarn/plyboard/internal/httpapi"
	"github.com/lgbarn/plyboard/internal/session"
	"github.com/lgbarn/plyboard/internal/storage"
)

var (
	addr      = flag.String("addr", ":3000", "Listen address, host:port")
	dataDir   = flag.String("data", "", "Badger data directory; \"default\" for the per-user data dir, empty for memory only")
	colour    = flag.String("color", "white", "Default colour for new games: white or black")
	noWS      = flag.Bool("nows", false, "Disable the websocket move stream")
	logFile   = flag.String("log", "", "Write log output to this file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0=quiet, 1=lifecycle, 2=every move and request")
)

func main() {
	flag.Parse()

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if *logFile != "" {
		file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		defer file.Close()
		cfg.LogFile = file
	}

	if err := run(cfg); err != nil {
		cfg.Logf(0, "Error: %v", err)
		os.Exit(1)
	}
}

// buildConfig turns the flags into a validated Config.
func buildConfig() (*config.Config, error) {
	c, ok := chess.ParseColour(*colour)
	if !ok {
		return nil, fmt.Errorf("unknown colour %q", *colour)
	}
	dir := *dataDir
	if dir == "default" {
		var err error
		if dir, err = storage.DefaultDataDir(); err != nil {
			return nil, err
		}
	}

	cfg := config.NewConfigBuilder().
		WithPlayerColour(c).
		WithListenAddr(*addr).
		WithDataDir(dir).
		WithWebsocket(!*noWS).
		WithVerbosity(*verbosity).
		Build()
	return cfg, cfg.Validate()
}

func run(cfg *config.Config) error {
	store, err := storage.Open(cfg.Server.DataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	games := session.NewManager(store, cfg.Logger(),
		session.WithSubscriberBuffer(cfg.Server.SubscriberBuffer))
	if _, err := games.Restore(context.Background()); err != nil {
		return err
	}

	srv := httpapi.New(games, cfg)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		cfg.Logf(1, "shutting down")
		if err := srv.Shutdown(5 * time.Second); err != nil {
			cfg.Logf(0, "shutdown: %v", err)
		}
	}()

	return srv.Listen(cfg.Server.ListenAddr)
}
