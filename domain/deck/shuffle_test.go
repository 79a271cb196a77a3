package deck

import (
	"reflect"
	"testing"
)

func shuffled(t *testing.T, s Shuffler) []int {
	t.Helper()
	d := Deck{DeckSize: 52}
	if err := d.PrepareDeck(); err != nil {
		t.Fatal(err)
	}
	if err := d.Shuffle(s); err != nil {
		t.Fatal(err)
	}
	return d.Cards()
}

func assertPermutation(t *testing.T, cards []int) {
	t.Helper()
	if len(cards) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(cards))
	}
	seen := make(map[int]bool, len(cards))
	for _, c := range cards {
		if c < 1 || c > 52 {
			t.Fatalf("card %d out of range", c)
		}
		if seen[c] {
			t.Fatalf("duplicate card %d", c)
		}
		seen[c] = true
	}
}

func TestCryptoShuffleIsPermutation(t *testing.T) {
	for i := 0; i < 20; i++ {
		assertPermutation(t, shuffled(t, NewCryptoShuffler()))
	}
}

func TestCryptoShuffleMovesCards(t *testing.T) {
	d := Deck{DeckSize: 52}
	if err := d.PrepareDeck(); err != nil {
		t.Fatal(err)
	}
	ordered := d.Cards()
	// 20 identity permutations in a row has probability (1/52!)^20.
	for i := 0; i < 20; i++ {
		if !reflect.DeepEqual(shuffled(t, NewCryptoShuffler()), ordered) {
			return
		}
	}
	t.Fatal("crypto shuffler never changed the order")
}

func TestSeededShuffleIsDeterministic(t *testing.T) {
	a := shuffled(t, NewSeededShuffler(7))
	b := shuffled(t, NewSeededShuffler(7))
	assertPermutation(t, a)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("expected identical shuffled decks for same seed")
	}
}

func TestSeededShuffleDiffersBySeed(t *testing.T) {
	a := shuffled(t, NewSeededShuffler(7))
	b := shuffled(t, NewSeededShuffler(11))
	if reflect.DeepEqual(a, b) {
		t.Fatal("expected shuffled decks to differ for different seeds")
	}
}

func TestShuffleSmallSlices(t *testing.T) {
	for _, s := range []Shuffler{NewCryptoShuffler(), NewSeededShuffler(1)} {
		if err := s.Shuffle(nil); err != nil {
			t.Fatal(err)
		}
		one := []int{42}
		if err := s.Shuffle(one); err != nil {
			t.Fatal(err)
		}
		if one[0] != 42 {
			t.Fatalf("single card changed to %d", one[0])
		}
	}
}
