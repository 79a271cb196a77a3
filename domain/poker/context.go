package poker

import "sort"

// HandContext indexes the seven cards of one evaluation: board followed by
// hole. It is built once per evaluation, shared by every detector and never
// modified afterwards.
type HandContext struct {
	cards       []Card
	rankCount   map[Rank]int
	byRank      map[Rank][]Card
	bySuit      map[Suit][]Card
	bySuitDesc  map[Suit][]Card
	sortedDesc  []Card
	suits       []Suit // suits present, ascending
	ranksByDesc []Rank // distinct ranks present, descending
}

// NewHandContext validates the hands and builds the context for them.
func NewHandContext(board BoardHand, hole HoleHand) (*HandContext, error) {
	if err := AreHandsValid(board, hole); err != nil {
		return nil, err
	}
	cards := make([]Card, 0, len(board)+len(hole))
	cards = append(cards, board...)
	cards = append(cards, hole...)
	return newHandContext(cards...), nil
}

// newHandContext builds the views over any number of cards.
func newHandContext(cards ...Card) *HandContext {
	hc := &HandContext{
		cards:      append([]Card(nil), cards...),
		rankCount:  make(map[Rank]int),
		byRank:     make(map[Rank][]Card),
		bySuit:     make(map[Suit][]Card),
		bySuitDesc: make(map[Suit][]Card),
	}
	for _, c := range hc.cards {
		if hc.rankCount[c.rank] == 0 {
			hc.ranksByDesc = append(hc.ranksByDesc, c.rank)
		}
		if len(hc.bySuit[c.suit]) == 0 {
			hc.suits = append(hc.suits, c.suit)
		}
		hc.rankCount[c.rank]++
		hc.byRank[c.rank] = append(hc.byRank[c.rank], c)
		hc.bySuit[c.suit] = append(hc.bySuit[c.suit], c)
	}

	sort.Slice(hc.ranksByDesc, func(i, j int) bool { return hc.ranksByDesc[i] > hc.ranksByDesc[j] })
	sort.Slice(hc.suits, func(i, j int) bool { return hc.suits[i] < hc.suits[j] })

	hc.sortedDesc = sortedByRankDesc(hc.cards)
	for suit, cs := range hc.bySuit {
		hc.bySuitDesc[suit] = sortedByRankDesc(cs)
	}
	return hc
}

// sortedByRankDesc returns a copy of cards ordered by descending rank. Cards
// of equal rank keep their relative order.
func sortedByRankDesc(cards []Card) []Card {
	out := append([]Card(nil), cards...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].rank > out[j].rank })
	return out
}

// Count returns how many of the cards have rank r.
func (hc *HandContext) Count(r Rank) int {
	return hc.rankCount[r]
}

// CardsOfRank returns the cards of rank r in input order.
func (hc *HandContext) CardsOfRank(r Rank) []Card {
	return append([]Card(nil), hc.byRank[r]...)
}

// CardsOfSuit returns the cards of suit s in input order.
func (hc *HandContext) CardsOfSuit(s Suit) []Card {
	return append([]Card(nil), hc.bySuit[s]...)
}

// SortedDesc returns every card ordered by descending rank.
func (hc *HandContext) SortedDesc() []Card {
	return append([]Card(nil), hc.sortedDesc...)
}

// highestRankWithCount returns the highest rank occurring at least min times,
// skipping the excluded ranks.
func (hc *HandContext) highestRankWithCount(min int, exclude ...Rank) (Rank, bool) {
	for _, r := range hc.ranksByDesc {
		if hc.rankCount[r] < min || containsRank(exclude, r) {
			continue
		}
		return r, true
	}
	return 0, false
}

// kickers returns up to n of the highest cards whose rank is not excluded.
func (hc *HandContext) kickers(n int, exclude ...Rank) []Card {
	out := make([]Card, 0, n)
	for _, c := range hc.sortedDesc {
		if len(out) == n {
			break
		}
		if containsRank(exclude, c.rank) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func containsRank(ranks []Rank, r Rank) bool {
	for _, x := range ranks {
		if x == r {
			return true
		}
	}
	return false
}
