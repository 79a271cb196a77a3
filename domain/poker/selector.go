package poker

// Category of a five card poker hand, weakest first.
type Category uint8

const (
	CategoryHighCard Category = iota
	CategoryOnePair
	CategoryTwoPair
	CategoryThreeOfAKind
	CategoryStraight
	CategoryFlush
	CategoryFullHouse
	CategoryFourOfAKind
	CategoryStraightFlush
)

var categoryNames = [...]string{
	CategoryHighCard:      "high card",
	CategoryOnePair:       "one pair",
	CategoryTwoPair:       "two pair",
	CategoryThreeOfAKind:  "three of a kind",
	CategoryStraight:      "straight",
	CategoryFlush:         "flush",
	CategoryFullHouse:     "full house",
	CategoryFourOfAKind:   "four of a kind",
	CategoryStraightFlush: "straight flush",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// HandRank is a selected best hand together with the category that
// produced it.
type HandRank struct {
	Category Category
	Cards    []Card
}

type detector struct {
	category Category
	find     func(*HandContext) []Card
}

// cascade is tried in order; the first detector returning cards wins.
var cascade = [...]detector{
	{CategoryStraightFlush, (*HandContext).straightFlush},
	{CategoryFourOfAKind, func(hc *HandContext) []Card {
		if q := hc.fourOfAKind(); q != nil {
			return q.Cards()
		}
		return nil
	}},
	{CategoryFullHouse, (*HandContext).fullHouse},
	{CategoryFlush, (*HandContext).flush},
	{CategoryStraight, (*HandContext).straight},
	{CategoryThreeOfAKind, (*HandContext).threeOfAKind},
	{CategoryTwoPair, (*HandContext).twoPair},
	{CategoryOnePair, (*HandContext).onePair},
	{CategoryHighCard, (*HandContext).highCard},
}

// Best runs the detectors strongest first over the context.
func (hc *HandContext) Best() HandRank {
	for _, d := range cascade {
		if cards := d.find(hc); cards != nil {
			return HandRank{Category: d.category, Cards: cards}
		}
	}
	return HandRank{Category: CategoryHighCard, Cards: hc.SortedDesc()}
}

// EvaluateBestHand selects the best five cards out of board and hole and
// reports their category.
func EvaluateBestHand(board BoardHand, hole HoleHand) (HandRank, error) {
	hc, err := NewHandContext(board, hole)
	if err != nil {
		return HandRank{}, err
	}
	return hc.Best(), nil
}

// CheckBestPlayerHand returns the best five cards out of board and hole, in
// category order (group cards first, then kickers).
func CheckBestPlayerHand(board BoardHand, hole HoleHand) ([]Card, error) {
	hr, err := EvaluateBestHand(board, hole)
	if err != nil {
		return nil, err
	}
	return hr.Cards, nil
}

// Classify returns the category of an already selected hand.
func Classify(cards []Card) Category {
	return newHandContext(cards...).Best().Category
}
