package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/luca-patrignani/showdown/domain/poker"
)

const (
	envSeed       = "SHOWDOWN_SEED"
	envComparator = "SHOWDOWN_COMPARATOR"
	envGames      = "SHOWDOWN_GAMES"
)

// config of one CLI run. A zero seed selects the crypto shuffler.
type config struct {
	seed       int64
	comparator string
	games      int
	board      string
	p1         string
	p2         string
	json       bool
	debug      bool
}

// manual reports whether the cards were given on the command line instead
// of being dealt.
func (c config) manual() bool {
	return c.board != "" || c.p1 != "" || c.p2 != ""
}

// loadConfig reads the environment first and lets flags override it.
func loadConfig(args []string, getenv func(string) string) (config, error) {
	cfg := config{comparator: poker.ComparatorRanks, games: 1}
	if v := getenv(envSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return config{}, fmt.Errorf("%s: %w", envSeed, err)
		}
		cfg.seed = seed
	}
	if v := getenv(envComparator); v != "" {
		cfg.comparator = v
	}
	if v := getenv(envGames); v != "" {
		games, err := strconv.Atoi(v)
		if err != nil {
			return config{}, fmt.Errorf("%s: %w", envGames, err)
		}
		cfg.games = games
	}

	fs := flag.NewFlagSet("showdown", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Int64Var(&cfg.seed, "seed", cfg.seed, "seed for a reproducible deal, 0 for a crypto shuffle")
	fs.StringVar(&cfg.comparator, "comparator", cfg.comparator, "hand comparator: ranks or strength")
	fs.IntVar(&cfg.games, "games", cfg.games, "number of random games to play")
	fs.StringVar(&cfg.board, "board", "", "five board cards, e.g. \"Ah Kh Qh 2c 3d\"")
	fs.StringVar(&cfg.p1, "p1", "", "player 1 hole cards")
	fs.StringVar(&cfg.p2, "p2", "", "player 2 hole cards")
	fs.BoolVar(&cfg.json, "json", false, "print results as JSON")
	fs.BoolVar(&cfg.debug, "debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if _, err := poker.ComparatorByName(cfg.comparator); err != nil {
		return config{}, err
	}
	if cfg.games < 1 {
		return config{}, fmt.Errorf("games must be at least 1, got %d", cfg.games)
	}
	if cfg.manual() && (cfg.board == "" || cfg.p1 == "" || cfg.p2 == "") {
		return config{}, fmt.Errorf("-board, -p1 and -p2 must be given together")
	}
	return cfg, nil
}
