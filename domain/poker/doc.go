// Package poker implements two player Texas Hold'em showdown evaluation:
// choosing the best five cards out of a shared board and a private hole hand,
// and ordering two such hands.
//
// # Core Types
//
// Card: A playing card with suit and rank, Ace high.
//
// BoardHand, HoleHand: The five community cards and a player's two cards.
// Only their sizes are validated; a wrong size yields a *HandValidationError.
//
// HandContext: Per evaluation indexes of the seven cards (counts and cards by
// rank, cards by suit, cards sorted by rank) shared by every detector.
//
// # Hand Evaluation
//
// Nine detectors, one per category, are tried from straight flush down to
// high card and the first one that matches wins. The Ace also plays low in
// the wheel (A-2-3-4-5), which ranks as a five high straight.
//
// # Comparison
//
// CompareRanks orders two hands by their descending rank vectors and ignores
// categories. CompareStrength is the category aware alternative.
//
// # Dealing
//
// Dealer shuffles a fresh 52 card deck from package deck and hands out the
// board and both hole hands.
package poker
