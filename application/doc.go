// Package application wires the poker domain into heads-up games.
//
// A GameOrchestrator takes a board and two hole hands, selects each
// player's best five cards and reports the winners. PlayRandomGame asks a
// poker.Dealer for the cards first.
package application
