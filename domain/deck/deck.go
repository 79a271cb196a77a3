package deck

import (
	"errors"
	"fmt"
)

// ErrDeckExhausted is returned by DrawCard once every card has been drawn.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck is an ordered pile of card numbers 1..DeckSize. The meaning of a
// number is left to the caller.
type Deck struct {
	DeckSize       int
	cardCollection []int
	lastDrawnCard  int
}

// PrepareDeck fills the deck with the card numbers 1..DeckSize in order and
// resets the draw position.
func (d *Deck) PrepareDeck() error {
	if d.DeckSize <= 0 {
		return fmt.Errorf("invalid deck size %d", d.DeckSize)
	}
	d.cardCollection = make([]int, d.DeckSize)
	for i := range d.cardCollection {
		d.cardCollection[i] = i + 1
	}
	d.lastDrawnCard = 0
	return nil
}

// Shuffle permutes the undrawn part of the deck with the given shuffler.
func (d *Deck) Shuffle(s Shuffler) error {
	if d.cardCollection == nil {
		return errors.New("deck not prepared")
	}
	if err := s.Shuffle(d.cardCollection[d.lastDrawnCard:]); err != nil {
		return fmt.Errorf("shuffle deck: %w", err)
	}
	return nil
}

// DrawCard returns the next card number from the top of the deck.
func (d *Deck) DrawCard() (int, error) {
	if d.lastDrawnCard >= len(d.cardCollection) {
		return 0, ErrDeckExhausted
	}
	c := d.cardCollection[d.lastDrawnCard]
	d.lastDrawnCard++
	return c, nil
}

// DrawCards draws n cards in order.
func (d *Deck) DrawCards(n int) ([]int, error) {
	if n > d.Remaining() {
		return nil, fmt.Errorf("draw %d cards: %w (%d left)", n, ErrDeckExhausted, d.Remaining())
	}
	out := make([]int, n)
	for i := range out {
		out[i], _ = d.DrawCard()
	}
	return out, nil
}

// Cards returns a copy of the whole deck, drawn cards included.
func (d *Deck) Cards() []int {
	return append([]int(nil), d.cardCollection...)
}

// Remaining returns how many cards can still be drawn.
func (d *Deck) Remaining() int {
	return len(d.cardCollection) - d.lastDrawnCard
}
