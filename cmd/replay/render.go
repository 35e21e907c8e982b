package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"pokerengine/pkg/engine"
)

// render prints the board, the seats and, once the hand is over, the payouts
func render(title string, g *engine.Game) error {
	pterm.DefaultSection.Println(title)
	pterm.Info.Printfln("hand %s", g.ID())

	board := g.BoardCards()
	if len(board) > 0 {
		pterm.Printfln("Board: %s", board)
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(seatTable(g)).Render(); err != nil {
		return err
	}

	if !g.IsTerminal() {
		stage, _ := g.Stage()
		pterm.Warning.Printfln("the hand is not over: waiting on %s in %s, pot %d", g.Actor(), stage.Kind, g.Pot())
		return nil
	}

	for seat, net := range g.Payouts() {
		if net > 0 {
			pterm.Success.Printfln("seat %d wins %d", seat, net)
		}
	}

	return nil
}

func seatTable(g *engine.Game) pterm.TableData {
	data := pterm.TableData{{"Seat", "Status", "Cards", "Hand", "Committed", "Stack", "Net"}}

	payouts := g.Payouts()
	for i, p := range g.Players() {
		cards, hand := p.VisibleCards(engine.NoActor).String(), ""
		if p.Shown() {
			hand = g.Hand(i).String()
		}

		net := ""
		if g.IsTerminal() {
			net = fmt.Sprintf("%+d", payouts[i])
		}

		data = append(data, []string{
			strconv.Itoa(i),
			status(p),
			cards,
			hand,
			strconv.Itoa(p.Commitment()),
			strconv.Itoa(g.Stack(i)),
			net,
		})
	}

	return data
}

func status(p *engine.Player) string {
	switch {
	case p.Mucked():
		return pterm.LightRed("mucked")
	case p.Shown():
		return pterm.LightGreen("shown")
	}

	return "in hand"
}
