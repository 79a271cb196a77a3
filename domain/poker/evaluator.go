package poker

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// toLibraryCard converts a Card for github.com/paulhankin/poker, whose Ace
// is rank 1.
func toLibraryCard(c Card) (card poker.Card, err error) {
	var s poker.Suit
	switch c.suit {
	case Club:
		s = poker.Club
	case Diamond:
		s = poker.Diamond
	case Heart:
		s = poker.Heart
	case Spade:
		s = poker.Spade
	default:
		return card, fmt.Errorf("invalid suit %d", c.suit)
	}
	r := poker.Rank(c.rank)
	if c.rank == Ace {
		r = poker.Rank(1)
	}
	card, err = poker.MakeCard(s, r)
	if err != nil {
		return card, fmt.Errorf("invalid card %s: %w", c, err)
	}
	return card, nil
}

func makeFinalHand(board BoardHand, hole HoleHand) ([7]poker.Card, error) {
	var finalHand [7]poker.Card
	if err := AreHandsValid(board, hole); err != nil {
		return finalHand, err
	}
	for i, c := range board {
		card, err := toLibraryCard(c)
		if err != nil {
			return [7]poker.Card{}, fmt.Errorf("invalid board card at idx %d: %w", i, err)
		}
		finalHand[i] = card
	}
	for i, c := range hole {
		card, err := toLibraryCard(c)
		if err != nil {
			return [7]poker.Card{}, fmt.Errorf("invalid player card at idx %d: %w", i, err)
		}
		finalHand[BoardSize+i] = card
	}
	return finalHand, nil
}

// DescribeHand names the best hand made from board and hole, e.g.
// "straight flush, queen high".
func DescribeHand(board BoardHand, hole HoleHand) (string, error) {
	c, err := makeFinalHand(board, hole)
	if err != nil {
		return "", err
	}
	return poker.Describe(c[:])
}

// Score7 returns the table score of the best hand in board and hole. Higher
// is stronger and equal scores are ties under standard hand rankings.
func Score7(board BoardHand, hole HoleHand) (int16, error) {
	c, err := makeFinalHand(board, hole)
	if err != nil {
		return 0, err
	}
	return poker.Eval7(&c), nil
}

// Score5 scores an already selected five card hand on the same scale as
// Score7.
func Score5(cards []Card) (int16, error) {
	if len(cards) != 5 {
		return 0, fmt.Errorf("score needs 5 cards, got %d", len(cards))
	}
	var five [5]poker.Card
	for i, c := range cards {
		card, err := toLibraryCard(c)
		if err != nil {
			return 0, err
		}
		five[i] = card
	}
	return poker.Eval5(&five), nil
}
