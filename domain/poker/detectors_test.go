package poker

import (
	"errors"
	"reflect"
	"testing"
)

func hands(t *testing.T, board, hole string) (BoardHand, HoleHand) {
	t.Helper()
	return BoardHand(parse(t, board)), HoleHand(parse(t, hole))
}

func assertCards(t *testing.T, got []Card, want string) {
	t.Helper()
	if want == "" {
		if got != nil {
			t.Fatalf("expected no hand, got %s", FormatCards(got))
		}
		return
	}
	expected, err := ParseCards(want)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %s, got %s", FormatCards(expected), FormatCards(got))
	}
}

func TestDetectors(t *testing.T) {
	tests := []struct {
		name   string
		detect func(BoardHand, HoleHand) ([]Card, error)
		board  string
		hole   string
		want   string
	}{
		{
			name:   "straight flush queen high",
			detect: BestStraightFlush,
			board:  "9h Th Jh 2c Kd",
			hole:   "Qh 8h",
			want:   "Qh Jh Th 9h 8h",
		},
		{
			name:   "straight flush wheel",
			detect: BestStraightFlush,
			board:  "Ah 2h 3h 4h 9c",
			hole:   "5h Kd",
			want:   "5h 4h 3h 2h Ah",
		},
		{
			name:   "straight flush absent with flush and straight in different suits",
			detect: BestStraightFlush,
			board:  "5h 6h 7h 8c 2h",
			hole:   "9h Kd",
			want:   "",
		},
		{
			name:   "full house from two triples",
			detect: BestFullHouse,
			board:  "Kc Kd 9c 9d 2h",
			hole:   "Ks 9h",
			want:   "Kc Kd Ks 9c 9d",
		},
		{
			name:   "full house picks highest pair",
			detect: BestFullHouse,
			board:  "5c 5d 5h Qc Qd",
			hole:   "Ts Th",
			want:   "5c 5d 5h Qc Qd",
		},
		{
			name:   "full house absent with only a triple",
			detect: BestFullHouse,
			board:  "5c 5d 5h Qc Jd",
			hole:   "Ts 2h",
			want:   "",
		},
		{
			name:   "flush top five of six",
			detect: BestFlush,
			board:  "As 7s 2s 4s 9s",
			hole:   "Js 3c",
			want:   "As Js 9s 7s 4s",
		},
		{
			name:   "flush absent",
			detect: BestFlush,
			board:  "As 7s 2s 4d 9d",
			hole:   "Js 3c",
			want:   "",
		},
		{
			name:   "straight",
			detect: BestStraight,
			board:  "6c 5h 4s Kd 3c",
			hole:   "8s 7d",
			want:   "8s 7d 6c 5h 4s",
		},
		{
			name:   "straight wheel",
			detect: BestStraight,
			board:  "Ac 2d 3h 4s 9c",
			hole:   "5d Kh",
			want:   "5d 4s 3h 2d Ac",
		},
		{
			name:   "six high beats the wheel",
			detect: BestStraight,
			board:  "Ac 2d 3h 4s 5c",
			hole:   "6d Kh",
			want:   "6d 5c 4s 3h 2d",
		},
		{
			name:   "broadway",
			detect: BestStraight,
			board:  "Tc Jd Qh 2s 3c",
			hole:   "Kd Ah",
			want:   "Ah Kd Qh Jd Tc",
		},
		{
			name:   "no straight around the corner",
			detect: BestStraight,
			board:  "Qc Kd Ah 2s 3c",
			hole:   "8d 7h",
			want:   "",
		},
		{
			name:   "three of a kind",
			detect: BestThreeOfAKind,
			board:  "7c 7d 2h 9s Kd",
			hole:   "7h Ac",
			want:   "7c 7d 7h Ac Kd",
		},
		{
			name:   "two pair out of three pairs",
			detect: BestTwoPair,
			board:  "Ac Ad Kc Kd Qc",
			hole:   "Qd 3s",
			want:   "Ac Ad Kc Kd Qc",
		},
		{
			name:   "two pair kicker from hole",
			detect: BestTwoPair,
			board:  "4c 4d 9h 9s 2c",
			hole:   "Ah 6s",
			want:   "9h 9s 4c 4d Ah",
		},
		{
			name:   "one pair",
			detect: BestOnePair,
			board:  "4c 4d 9h Js 2c",
			hole:   "Ah 6s",
			want:   "4c 4d Ah Js 9h",
		},
		{
			name:   "one pair absent",
			detect: BestOnePair,
			board:  "4c 5d 9h Js 2c",
			hole:   "Ah 6s",
			want:   "",
		},
		{
			name:   "high card",
			detect: BestHighCard,
			board:  "2c 5d 7h Js Kc",
			hole:   "3h 9d",
			want:   "Kc Js 9d 7h 5d",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			board, hole := hands(t, tc.board, tc.hole)
			got, err := tc.detect(board, hole)
			if err != nil {
				t.Fatal(err)
			}
			assertCards(t, got, tc.want)
		})
	}
}

func TestBestFourOfAKind(t *testing.T) {
	board, hole := hands(t, "8c 8d 8h Ks 2c", "8s Ad")
	q, err := BestFourOfAKind(board, hole)
	if err != nil {
		t.Fatal(err)
	}
	if q == nil {
		t.Fatal("expected four of a kind")
	}
	assertCards(t, q.Quads[:], "8c 8d 8h 8s")
	if q.Kicker != (Card{suit: Diamond, rank: Ace}) {
		t.Fatalf("expected A♦ kicker, got %s", q.Kicker)
	}
	assertCards(t, q.Cards(), "8c 8d 8h 8s Ad")
}

func TestFourOfAKindKickerIsHighestRemaining(t *testing.T) {
	// The pair in the hole must not be preferred over a higher single card.
	board, hole := hands(t, "9c 9d 9h 9s Kd", "Qc Qd")
	q, err := BestFourOfAKind(board, hole)
	if err != nil {
		t.Fatal(err)
	}
	if q == nil || q.Kicker.Rank() != King {
		t.Fatalf("expected king kicker, got %v", q)
	}

	board, hole = hands(t, "9c 9d 9h Qs Kd", "2c 3d")
	if q, _ := BestFourOfAKind(board, hole); q != nil {
		t.Fatalf("expected no four of a kind, got %v", q.Cards())
	}
}

func TestFullHouseWithTwoTriplesAndAPair(t *testing.T) {
	// Eight cards only fit through the generic context: counts {3,3,2}.
	hc := newHandContext(parse(t, "9c 9d 9h 7c 7d 7h 5c 5d")...)
	assertCards(t, hc.fullHouse(), "9c 9d 9h 7c 7d")

	hc = newHandContext(parse(t, "9c 9d 9h 3c 3d 3h Jc Jd")...)
	assertCards(t, hc.fullHouse(), "9c 9d 9h Jc Jd")
}

func TestFlushAcrossSuits(t *testing.T) {
	hc := newHandContext(parse(t, "2h 4h 6h 8h Th 3s 5s 7s 9s Js")...)
	assertCards(t, hc.flush(), "Js 9s 7s 5s 3s")

	// Equal flushes: the first suit in suit order is kept.
	hc = newHandContext(parse(t, "2h 4h 6h 8h Th 2c 4c 6c 8c Tc")...)
	assertCards(t, hc.flush(), "Tc 8c 6c 4c 2c")
}

func TestStraightFlushAcrossSuits(t *testing.T) {
	hc := newHandContext(parse(t, "5h 6h 7h 8h 9h 6s 7s 8s 9s Ts")...)
	assertCards(t, hc.straightFlush(), "Ts 9s 8s 7s 6s")

	hc = newHandContext(parse(t, "Ah 2h 3h 4h 5h 2s 3s 4s 5s 6s")...)
	assertCards(t, hc.straightFlush(), "6s 5s 4s 3s 2s")
}

func TestStraightUsesDistinctRanks(t *testing.T) {
	board, hole := hands(t, "5c 6d 6h 7s 8c", "8d 9h")
	got, err := BestStraight(board, hole)
	if err != nil {
		t.Fatal(err)
	}
	assertCards(t, got, "9h 8c 7s 6d 5c")
}

func TestDetectorsRejectInvalidHands(t *testing.T) {
	board := BoardHand(parse(t, "2c 5d 7h Js"))
	hole := HoleHand(parse(t, "3h 9d"))

	detectors := map[string]func(BoardHand, HoleHand) ([]Card, error){
		"straight flush":  BestStraightFlush,
		"full house":      BestFullHouse,
		"flush":           BestFlush,
		"straight":        BestStraight,
		"three of a kind": BestThreeOfAKind,
		"two pair":        BestTwoPair,
		"one pair":        BestOnePair,
		"high card":       BestHighCard,
		"best hand":       CheckBestPlayerHand,
	}
	for name, detect := range detectors {
		got, err := detect(board, hole)
		if !errors.Is(err, ErrInvalidHand) {
			t.Fatalf("%s: expected ErrInvalidHand, got %v", name, err)
		}
		if got != nil {
			t.Fatalf("%s: expected no cards on failure, got %v", name, got)
		}
	}
	if q, err := BestFourOfAKind(board, hole); !errors.Is(err, ErrInvalidHand) || q != nil {
		t.Fatalf("four of a kind: expected ErrInvalidHand, got %v, %v", q, err)
	}
	if _, err := EvaluateBestHand(board, hole); !errors.Is(err, ErrInvalidHand) {
		t.Fatalf("evaluate: expected ErrInvalidHand, got %v", err)
	}
}
