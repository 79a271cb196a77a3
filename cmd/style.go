package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/showdown/application"
	"github.com/luca-patrignani/showdown/domain/poker"
)

func renderShowdown(deal poker.Deal, result application.GameResult) error {
	p1, err := playerInfo(application.Player1, deal.Board, deal.Player1, result.Player1BestHand, result)
	if err != nil {
		return err
	}
	p2, err := playerInfo(application.Player2, deal.Board, deal.Player2, result.Player2BestHand, result)
	if err != nil {
		return err
	}
	board := pterm.Panel{Data: boardInfo(deal.Board)}

	return pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{board},
		{{Data: p1}, {Data: p2}},
		{winnerPanel(result)},
	}).Render()
}

func boardInfo(board []poker.Card) string {
	return pterm.DefaultHeader.WithBackgroundStyle(pterm.BgGreen.ToStyle()).Sprintf("Board: %s", poker.FormatCards(board))
}

func playerInfo(name string, board poker.BoardHand, hole poker.HoleHand, best []poker.Card, result application.GameResult) (string, error) {
	desc, err := poker.DescribeHand(board, hole)
	if err != nil {
		return "", err
	}
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := name
	if isWinner(name, result) {
		title = pterm.LightGreen(name)
	}
	hand := pterm.BgGreen.Sprint(poker.FormatCards(hole))
	return pbox.WithTitle(title).WithTitleTopLeft().Sprintf("%s\nBest: %s\n%s (%s)", hand, poker.FormatCards(best), poker.Classify(best), desc), nil
}

func isWinner(name string, result application.GameResult) bool {
	for _, w := range result.Winners {
		if w == name {
			return true
		}
	}
	return false
}

func winnerPanel(result application.GameResult) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var info string
	if result.IsTie() {
		info = pterm.Sprintfln("%s and %s split the pot", pterm.LightCyan(application.Player1), pterm.LightCyan(application.Player2))
	} else {
		info = pterm.Sprintfln("%s wins", pterm.LightCyan(result.Winners[0]))
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Sprint(info)}
}

func renderTally(t tallyResult) error {
	total := t.player1 + t.player2 + t.ties
	data := pterm.TableData{
		{"Outcome", "Games", "Share"},
		{application.Player1, strconv.Itoa(t.player1), percent(t.player1, total)},
		{application.Player2, strconv.Itoa(t.player2), percent(t.player2, total)},
		{"Tie", strconv.Itoa(t.ties), percent(t.ties, total)},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}

	categories := pterm.TableData{{"Best hand", "Count"}}
	for c := poker.CategoryStraightFlush; ; c-- {
		if n := t.categories[c]; n > 0 {
			categories = append(categories, []string{c.String(), strconv.Itoa(n)})
		}
		if c == poker.CategoryHighCard {
			break
		}
	}
	return pterm.DefaultTable.WithHasHeader().WithData(categories).Render()
}

func percent(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return strconv.FormatFloat(100*float64(n)/float64(total), 'f', 1, 64) + "%"
}
