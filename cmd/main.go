package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/showdown/application"
	"github.com/luca-patrignani/showdown/domain/deck"
	"github.com/luca-patrignani/showdown/domain/poker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := loadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
		os.Exit(2)
	}
	if cfg.debug {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}

	// Create a new slog logger with the default PTerm logger
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	if !cfg.json {
		pterm.DefaultBigText.WithLetters(
			putils.LettersFromStringWithStyle("Show", pterm.FgRed.ToStyle()),
			putils.LettersFromStringWithStyle("down", pterm.FgDarkGray.ToStyle()),
		).Render()
	}

	if err := run(cfg, logger, os.Stdout); err != nil {
		logger.Error("showdown failed", "error", err)
		os.Exit(1)
	}
}

// showdown is one played game as printed with -json.
type showdown struct {
	Deal   poker.Deal             `json:"deal"`
	Result application.GameResult `json:"result"`
}

func newOrchestrator(cfg config, logger *slog.Logger) (*application.GameOrchestrator, error) {
	compare, err := poker.ComparatorByName(cfg.comparator)
	if err != nil {
		return nil, err
	}
	var shuffler deck.Shuffler
	if cfg.seed != 0 {
		shuffler = deck.NewSeededShuffler(cfg.seed)
	}
	return application.NewGameOrchestrator(
		application.WithDealer(poker.NewDealer(shuffler)),
		application.WithComparator(compare),
		application.WithLogger(logger),
	), nil
}

func run(cfg config, logger *slog.Logger, w io.Writer) error {
	g, err := newOrchestrator(cfg, logger)
	if err != nil {
		return err
	}

	var games []showdown
	if cfg.manual() {
		deal, err := parseDeal(cfg.board, cfg.p1, cfg.p2)
		if err != nil {
			return err
		}
		result, err := g.CompareHands(deal.Board, deal.Player1, deal.Player2)
		if err != nil {
			return err
		}
		games = append(games, showdown{Deal: deal, Result: result})
	} else {
		for i := 0; i < cfg.games; i++ {
			result, deal, err := g.PlayRandomGame()
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			games = append(games, showdown{Deal: deal, Result: result})
		}
	}

	if cfg.json {
		enc := json.NewEncoder(w)
		for _, s := range games {
			if err := enc.Encode(s); err != nil {
				return err
			}
		}
		return nil
	}

	if len(games) == 1 {
		return renderShowdown(games[0].Deal, games[0].Result)
	}
	return renderTally(tally(games))
}

func parseDeal(board, p1, p2 string) (poker.Deal, error) {
	var deal poker.Deal
	var err error
	if deal.Board, err = poker.ParseCards(board); err != nil {
		return poker.Deal{}, fmt.Errorf("board: %w", err)
	}
	if deal.Player1, err = poker.ParseCards(p1); err != nil {
		return poker.Deal{}, fmt.Errorf("p1: %w", err)
	}
	if deal.Player2, err = poker.ParseCards(p2); err != nil {
		return poker.Deal{}, fmt.Errorf("p2: %w", err)
	}
	return deal, nil
}

// tally counts won games per player over a run, plus the ties.
type tallyResult struct {
	player1    int
	player2    int
	ties       int
	categories map[poker.Category]int
}

func tally(games []showdown) tallyResult {
	t := tallyResult{categories: make(map[poker.Category]int)}
	for _, s := range games {
		t.categories[poker.Classify(s.Result.Player1BestHand)]++
		t.categories[poker.Classify(s.Result.Player2BestHand)]++
		switch {
		case s.Result.IsTie():
			t.ties++
		case s.Result.Winners[0] == application.Player1:
			t.player1++
		default:
			t.player2++
		}
	}
	return t
}
