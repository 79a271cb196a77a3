package poker

// bestRun returns the five cards of the highest straight that can be built
// from cards, ordered from the top card down. The wheel is returned as
// 5-4-3-2-A so that the first card always carries the straight's high rank.
// When several cards share a rank the first one in cards is used.
func bestRun(cards []Card) []Card {
	first := make(map[Rank]Card, len(cards))
	for _, c := range cards {
		if _, ok := first[c.rank]; !ok {
			first[c.rank] = c
		}
	}
	if len(first) < 5 {
		return nil
	}

	for high := Ace; high >= Five; high-- {
		run := make([]Card, 0, 5)
		for i := Rank(0); i < 5; i++ {
			r := high - i
			if r == 1 {
				r = Ace
			}
			c, ok := first[r]
			if !ok {
				break
			}
			run = append(run, c)
		}
		if len(run) == 5 {
			return run
		}
	}
	return nil
}

// straightHigh is the rank a straight is ranked by: 5 for the wheel.
func straightHigh(run []Card) Rank {
	ranks := rankVector(run)
	if isWheel(ranks) {
		return Five
	}
	return ranks[0]
}
