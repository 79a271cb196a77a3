package poker

import (
	"fmt"

	"github.com/luca-patrignani/showdown/domain/deck"
)

// Deal is one heads-up allocation drawn without replacement from a single
// shuffled deck.
type Deal struct {
	Board   BoardHand `json:"board"`
	Player1 HoleHand  `json:"player1"`
	Player2 HoleHand  `json:"player2"`
}

// Dealer produces fresh deals.
type Dealer interface {
	Deal() (Deal, error)
}

type standardDealer struct {
	shuffler deck.Shuffler
}

// NewDealer returns a dealer shuffling a new 52 card deck for every deal.
// A nil shuffler means deck.NewCryptoShuffler.
func NewDealer(shuffler deck.Shuffler) Dealer {
	if shuffler == nil {
		shuffler = deck.NewCryptoShuffler()
	}
	return standardDealer{shuffler: shuffler}
}

// Deal takes the board from the top five cards, then two cards for each
// player.
func (d standardDealer) Deal() (Deal, error) {
	pd := NewPokerDeck()
	if err := pd.PrepareDeck(); err != nil {
		return Deal{}, err
	}
	if err := pd.Shuffle(d.shuffler); err != nil {
		return Deal{}, err
	}
	board, err := pd.DrawCards(BoardSize)
	if err != nil {
		return Deal{}, fmt.Errorf("deal board: %w", err)
	}
	p1, err := pd.DrawCards(HoleSize)
	if err != nil {
		return Deal{}, fmt.Errorf("deal player 1: %w", err)
	}
	p2, err := pd.DrawCards(HoleSize)
	if err != nil {
		return Deal{}, fmt.Errorf("deal player 2: %w", err)
	}
	return Deal{Board: board, Player1: p1, Player2: p2}, nil
}
