package application

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/luca-patrignani/showdown/domain/poker"
)

// Winner labels used in GameResult.
const (
	Player1 = "Player 1"
	Player2 = "Player 2"
)

// GameResult is the outcome of one heads-up showdown. Winners holds one
// label, or both on an exact tie.
type GameResult struct {
	Winners         []string     `json:"winners"`
	Player1BestHand []poker.Card `json:"player1BestHand"`
	Player2BestHand []poker.Card `json:"player2BestHand"`
}

// IsTie reports whether both players share the pot.
func (r GameResult) IsTie() bool {
	return len(r.Winners) == 2
}

// GameOrchestrator runs showdowns: it selects each player's best hand
// against the shared board and compares the two.
type GameOrchestrator struct {
	dealer  poker.Dealer
	compare poker.CompareFunc
	logger  *slog.Logger
}

type Option func(GameOrchestrator) GameOrchestrator

// NewGameOrchestrator returns an orchestrator using a crypto shuffled dealer,
// the rank vector comparator and slog.Default unless overridden.
func NewGameOrchestrator(opts ...Option) *GameOrchestrator {
	g := GameOrchestrator{
		compare: poker.CompareRanks,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		g = opt(g)
	}
	if g.dealer == nil {
		g.dealer = poker.NewDealer(nil)
	}
	return &g
}

func WithDealer(dealer poker.Dealer) Option {
	return func(g GameOrchestrator) GameOrchestrator {
		g.dealer = dealer
		return g
	}
}

// WithComparator replaces the default CompareRanks, e.g. with
// poker.CompareStrength for standard hand rankings.
func WithComparator(compare poker.CompareFunc) Option {
	return func(g GameOrchestrator) GameOrchestrator {
		if compare != nil {
			g.compare = compare
		}
		return g
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g GameOrchestrator) GameOrchestrator {
		if logger != nil {
			g.logger = logger
		}
		return g
	}
}

// CompareHands validates both players' hands, selects their best hands and
// decides the winner. Nothing is evaluated when either pair is invalid.
func (g *GameOrchestrator) CompareHands(board poker.BoardHand, hole1, hole2 poker.HoleHand) (GameResult, error) {
	err1 := poker.AreHandsValid(board, hole1)
	err2 := poker.AreHandsValid(board, hole2)
	if err1 != nil || err2 != nil {
		err := joinPlayerErrors(err1, err2)
		g.logger.Warn("showdown rejected", "error", err)
		return GameResult{}, err
	}

	p1, err := poker.EvaluateBestHand(board, hole1)
	if err != nil {
		return GameResult{}, fmt.Errorf("%s: %w", Player1, err)
	}
	p2, err := poker.EvaluateBestHand(board, hole2)
	if err != nil {
		return GameResult{}, fmt.Errorf("%s: %w", Player2, err)
	}

	var winners []string
	switch cmp := g.compare(p1.Cards, p2.Cards); {
	case cmp > 0:
		winners = []string{Player1}
	case cmp < 0:
		winners = []string{Player2}
	default:
		winners = []string{Player1, Player2}
	}

	g.logger.Debug("showdown evaluated",
		"board", poker.FormatCards(board),
		"player1", poker.FormatCards(p1.Cards),
		"player1Category", p1.Category.String(),
		"player2", poker.FormatCards(p2.Cards),
		"player2Category", p2.Category.String(),
		"winners", winners,
	)

	return GameResult{
		Winners:         winners,
		Player1BestHand: p1.Cards,
		Player2BestHand: p2.Cards,
	}, nil
}

// PlayRandomGame deals a fresh board and two hole hands and plays them out.
// The deal is returned alongside the result.
func (g *GameOrchestrator) PlayRandomGame() (GameResult, poker.Deal, error) {
	deal, err := g.dealer.Deal()
	if err != nil {
		return GameResult{}, poker.Deal{}, fmt.Errorf("deal: %w", err)
	}
	result, err := g.CompareHands(deal.Board, deal.Player1, deal.Player2)
	if err != nil {
		return GameResult{}, deal, err
	}
	return result, deal, nil
}

func joinPlayerErrors(err1, err2 error) error {
	var errs []error
	if err1 != nil {
		errs = append(errs, fmt.Errorf("%s: %w", Player1, err1))
	}
	if err2 != nil {
		errs = append(errs, fmt.Errorf("%s: %w", Player2, err2))
	}
	return errors.Join(errs...)
}
