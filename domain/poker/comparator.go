package poker

import (
	"fmt"
	"sort"
)

// CompareFunc orders two best hands: positive when a wins, negative when b
// wins, zero on a tie.
type CompareFunc func(a, b []Card) int

// rankVector returns the ranks of cards in descending order.
func rankVector(cards []Card) []Rank {
	ranks := make([]Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.rank
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })
	return ranks
}

func isWheel(desc []Rank) bool {
	return len(desc) == 5 &&
		desc[0] == Ace && desc[1] == Five && desc[2] == Four && desc[3] == Three && desc[4] == Two
}

// normalizeRanks is the descending rank vector with the wheel's Ace moved to
// the bottom as a 1.
func normalizeRanks(cards []Card) []Rank {
	ranks := rankVector(cards)
	if isWheel(ranks) {
		return []Rank{5, 4, 3, 2, 1}
	}
	return ranks
}

// compareRankVectors compares the first five positions; a missing position
// counts as 0.
func compareRankVectors(a, b []Rank) int {
	for i := 0; i < 5; i++ {
		var ra, rb int
		if i < len(a) {
			ra = int(a[i])
		}
		if i < len(b) {
			rb = int(b[i])
		}
		if ra != rb {
			return ra - rb
		}
	}
	return 0
}

// CompareRanks compares two hands by their descending rank vectors only.
// It does not know about categories, so a straight can beat a full house
// whose top ranks are lower.
func CompareRanks(a, b []Card) int {
	return compareRankVectors(normalizeRanks(a), normalizeRanks(b))
}

// CompareStrength compares two five card hands by category first and then
// by the ranks that break ties within the category.
func CompareStrength(a, b []Card) int {
	ca, ka := strengthKey(a)
	cb, kb := strengthKey(b)
	if ca != cb {
		return int(ca) - int(cb)
	}
	return compareRankVectors(ka, kb)
}

// strengthKey re-evaluates the hand so the tie-break ranks come out in
// category order: group ranks first, kickers after.
func strengthKey(cards []Card) (Category, []Rank) {
	hr := newHandContext(cards...).Best()
	switch hr.Category {
	case CategoryStraight, CategoryStraightFlush:
		return hr.Category, []Rank{straightHigh(hr.Cards)}
	}
	key := make([]Rank, len(hr.Cards))
	for i, c := range hr.Cards {
		key[i] = c.rank
	}
	return hr.Category, key
}

const (
	ComparatorRanks    = "ranks"
	ComparatorStrength = "strength"
)

// ComparatorByName resolves a comparator from its configuration name.
func ComparatorByName(name string) (CompareFunc, error) {
	switch name {
	case "", ComparatorRanks:
		return CompareRanks, nil
	case ComparatorStrength:
		return CompareStrength, nil
	}
	return nil, fmt.Errorf("unknown comparator %q", name)
}
