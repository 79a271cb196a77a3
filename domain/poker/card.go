package poker

import (
	"fmt"
	"strings"
	"unicode"
)

// Suit of a card. Suits have no strength of their own; they only matter for
// flush and straight flush detection.
type Suit uint8

// Card suit constants (0-3)
const (
	Club    Suit = 0 // ♣
	Diamond Suit = 1 // ♦
	Heart   Suit = 2 // ♥
	Spade   Suit = 3 // ♠
)

// Suits lists every suit in ascending order.
var Suits = [...]Suit{Club, Diamond, Heart, Spade}

// Rank of a card, 2 through 14. The Ace is 14 and only counts as 1 inside
// the wheel straight (A-2-3-4-5).
type Rank uint8

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

var suitGlyphs = [...]string{"♣", "♦", "♥", "♠"}

func (s Suit) String() string {
	if int(s) < len(suitGlyphs) {
		return suitGlyphs[s]
	}
	return "?"
}

func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(rankChars[r-Two])
}

// Card represents a playing card with suit and rank. Cards are values and
// compare equal when both fields match.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 2-14 (Two through Ace)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit > Spade || rank < Two || rank > Ace {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// Suit returns the suit value of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank value of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// String returns the card as rank followed by suit symbol, e.g. "A♥".
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// Code returns the two letter form of the card, e.g. "Ah".
func (c Card) Code() string {
	if int(c.suit) >= len(suitChars) {
		return c.rank.String() + "?"
	}
	return c.rank.String() + string(suitChars[c.suit])
}

func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

func (c *Card) UnmarshalText(text []byte) error {
	card, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = card
	return nil
}

// ParseCard parses a card written as rank then suit. Ranks are 2-9, T (or 10),
// J, Q, K, A; suits are c, d, h, s or one of ♣ ♦ ♥ ♠. Case is ignored.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	suitRune := runes[len(runes)-1]
	suit := -1
	if i := strings.IndexRune(suitChars, unicode.ToLower(suitRune)); i >= 0 {
		suit = i
	} else {
		for i, g := range suitGlyphs {
			if string(suitRune) == g {
				suit = i
			}
		}
	}
	if suit < 0 {
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}

	rankStr := strings.ToUpper(string(runes[:len(runes)-1]))
	if rankStr == "10" {
		rankStr = "T"
	}
	if len(rankStr) != 1 {
		return Card{}, fmt.Errorf("invalid rank in card %q", s)
	}
	rank := strings.Index(rankChars, rankStr)
	if rank < 0 {
		return Card{}, fmt.Errorf("invalid rank in card %q", s)
	}

	return NewCard(Suit(suit), Rank(rank)+Two)
}

// ParseCards parses a list of cards separated by spaces or commas.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// FormatCards joins the String form of the cards with spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
