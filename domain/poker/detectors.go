package poker

// FourOfAKind is the result of the quads detector. Cards concatenates the
// two parts into a regular five card hand.
type FourOfAKind struct {
	Quads  [4]Card
	Kicker Card
}

func (f FourOfAKind) Cards() []Card {
	return append(f.Quads[:], f.Kicker)
}

// straightFlush keeps, over every suit with at least five cards, the run
// with the greatest high rank. Suits are visited in ascending order.
func (hc *HandContext) straightFlush() []Card {
	var best []Card
	for _, s := range hc.suits {
		suited := hc.bySuitDesc[s]
		if len(suited) < 5 {
			continue
		}
		run := bestRun(suited)
		if run == nil {
			continue
		}
		if best == nil || straightHigh(run) > straightHigh(best) {
			best = run
		}
	}
	return best
}

func (hc *HandContext) fourOfAKind() *FourOfAKind {
	for _, r := range hc.ranksByDesc {
		if hc.rankCount[r] != 4 {
			continue
		}
		kicker := hc.kickers(1, r)
		if len(kicker) == 0 {
			return nil
		}
		var quads [4]Card
		copy(quads[:], hc.byRank[r])
		return &FourOfAKind{Quads: quads, Kicker: kicker[0]}
	}
	return nil
}

// fullHouse takes the highest triple and then the highest other rank with at
// least two cards, which may be a second triple.
func (hc *HandContext) fullHouse() []Card {
	triple, ok := hc.highestRankWithCount(3)
	if !ok {
		return nil
	}
	pair, ok := hc.highestRankWithCount(2, triple)
	if !ok {
		return nil
	}
	out := make([]Card, 0, 5)
	out = append(out, hc.byRank[triple][:3]...)
	return append(out, hc.byRank[pair][:2]...)
}

// flush takes the top five cards of each suit with at least five cards and
// keeps the lexicographically greatest; the first suit wins ties.
func (hc *HandContext) flush() []Card {
	var best []Card
	for _, s := range hc.suits {
		suited := hc.bySuitDesc[s]
		if len(suited) < 5 {
			continue
		}
		top := suited[:5]
		if best == nil || compareRankVectors(rankVector(top), rankVector(best)) > 0 {
			best = append([]Card(nil), top...)
		}
	}
	return best
}

func (hc *HandContext) straight() []Card {
	return bestRun(hc.sortedDesc)
}

func (hc *HandContext) threeOfAKind() []Card {
	triple, ok := hc.highestRankWithCount(3)
	if !ok {
		return nil
	}
	kickers := hc.kickers(2, triple)
	if len(kickers) < 2 {
		return nil
	}
	out := make([]Card, 0, 5)
	out = append(out, hc.byRank[triple][:3]...)
	return append(out, kickers...)
}

func (hc *HandContext) twoPair() []Card {
	high, ok := hc.highestRankWithCount(2)
	if !ok {
		return nil
	}
	low, ok := hc.highestRankWithCount(2, high)
	if !ok {
		return nil
	}
	kicker := hc.kickers(1, high, low)
	if len(kicker) == 0 {
		return nil
	}
	out := make([]Card, 0, 5)
	out = append(out, hc.byRank[high][:2]...)
	out = append(out, hc.byRank[low][:2]...)
	return append(out, kicker...)
}

func (hc *HandContext) onePair() []Card {
	pair, ok := hc.highestRankWithCount(2)
	if !ok {
		return nil
	}
	kickers := hc.kickers(3, pair)
	if len(kickers) < 3 {
		return nil
	}
	out := make([]Card, 0, 5)
	out = append(out, hc.byRank[pair][:2]...)
	return append(out, kickers...)
}

func (hc *HandContext) highCard() []Card {
	if len(hc.sortedDesc) < 5 {
		return nil
	}
	return append([]Card(nil), hc.sortedDesc[:5]...)
}

// BestStraightFlush returns the best straight flush, or nil when there is none.
func BestStraightFlush(board BoardHand, hole HoleHand) ([]Card, error) {
	return detect(board, hole, (*HandContext).straightFlush)
}

// BestFourOfAKind returns the quads with the highest remaining card as
// kicker, or nil when no rank appears four times.
func BestFourOfAKind(board BoardHand, hole HoleHand) (*FourOfAKind, error) {
	hc, err := NewHandContext(board, hole)
	if err != nil {
		return nil, err
	}
	return hc.fourOfAKind(), nil
}

// BestFullHouse returns the highest triple plus the highest other pair.
func BestFullHouse(board BoardHand, hole HoleHand) ([]Card, error) {
	return detect(board, hole, (*HandContext).fullHouse)
}

// BestFlush returns the five highest cards of the best flush suit.
func BestFlush(board BoardHand, hole HoleHand) ([]Card, error) {
	return detect(board, hole, (*HandContext).flush)
}

// BestStraight returns the highest straight regardless of suit, wheel included.
func BestStraight(board BoardHand, hole HoleHand) ([]Card, error) {
	return detect(board, hole, (*HandContext).straight)
}

func BestThreeOfAKind(board BoardHand, hole HoleHand) ([]Card, error) {
	return detect(board, hole, (*HandContext).threeOfAKind)
}

func BestTwoPair(board BoardHand, hole HoleHand) ([]Card, error) {
	return detect(board, hole, (*HandContext).twoPair)
}

func BestOnePair(board BoardHand, hole HoleHand) ([]Card, error) {
	return detect(board, hole, (*HandContext).onePair)
}

// BestHighCard returns the five highest cards. It always succeeds for valid
// hands.
func BestHighCard(board BoardHand, hole HoleHand) ([]Card, error) {
	return detect(board, hole, (*HandContext).highCard)
}

func detect(board BoardHand, hole HoleHand, find func(*HandContext) []Card) ([]Card, error) {
	hc, err := NewHandContext(board, hole)
	if err != nil {
		return nil, err
	}
	return find(hc), nil
}
