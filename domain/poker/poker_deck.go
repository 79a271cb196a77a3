package poker

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/showdown/domain/deck"
)

// PokerDeck wraps a generic numbered deck and converts its card numbers to
// poker Cards.
type PokerDeck struct {
	*deck.Deck
}

// NewPokerDeck creates a new, unprepared poker deck with 52 cards.
func NewPokerDeck() PokerDeck {
	return PokerDeck{
		Deck: &deck.Deck{DeckSize: 52},
	}
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to suits in order
// (clubs, diamonds, hearts, spades) with ranks Two through Ace within each suit.
//
// Card numbering:
//   - 1-13: Clubs (Two through Ace)
//   - 14-26: Diamonds (Two through Ace)
//   - 27-39: Hearts (Two through Ace)
//   - 40-52: Spades (Two through Ace)
func IntToCard(rawCard int) (Card, error) {
	if rawCard > 52 || rawCard < 1 {
		return Card{}, errors.New("the card to convert have an invalid value")
	}
	suit := Suit((rawCard - 1) / 13)
	rank := Rank((rawCard-1)%13) + Two
	return NewCard(suit, rank)
}

// CardToInt converts a Card to its integer representation (1-52).
// This is the inverse operation of IntToCard.
func CardToInt(card Card) int {
	return int(card.Suit())*13 + int(card.Rank()-Two) + 1
}

// DrawCards draws n cards from the top of the deck.
func (d PokerDeck) DrawCards(n int) ([]Card, error) {
	raw, err := d.Deck.DrawCards(n)
	if err != nil {
		return nil, err
	}
	cards := make([]Card, len(raw))
	for i, r := range raw {
		c, err := IntToCard(r)
		if err != nil {
			return nil, fmt.Errorf("draw card %d: %w", r, err)
		}
		cards[i] = c
	}
	return cards, nil
}

// GenerateCardsForSuit returns the 13 cards of one suit, Two through Ace.
func GenerateCardsForSuit(suit Suit) []Card {
	cards := make([]Card, 0, 13)
	for r := Two; r <= Ace; r++ {
		cards = append(cards, Card{suit: suit, rank: r})
	}
	return cards
}

// GenerateDeck returns the 52 card universe, suit by suit, in the same order
// as the card numbers used by IntToCard.
func GenerateDeck() []Card {
	cards := make([]Card, 0, 52)
	for _, s := range Suits {
		cards = append(cards, GenerateCardsForSuit(s)...)
	}
	return cards
}
