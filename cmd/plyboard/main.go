// plyboard plays a game on the terminal: it reads moves as "file,rank
// file,rank" lines from stdin and prints the board after each one.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/plyboard/internal/config"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)

	board, err := cfg.Game.NewBoard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := play(cfg, board, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: plyboard [options]\n\n")
	fmt.Fprintf(os.Stderr, "Commands on stdin:\n")
	fmt.Fprintf(os.Stderr, "  f,r f,r    move the piece on the first square to the second\n")
	fmt.Fprintf(os.Stderr, "  moves f,r  list the legal moves from a square\n")
	fmt.Fprintf(os.Stderr, "  show       print the board\n")
	fmt.Fprintf(os.Stderr, "  quit       exit\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
