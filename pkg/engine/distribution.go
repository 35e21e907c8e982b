package engine

import (
	"sort"

	"github.com/sirupsen/logrus"
	"pokerengine/pkg/evaluator"
)

type contender struct {
	seat       int
	commitment int
	hand       *evaluator.Hand
}

// distribute pays out every committed chip
// Contenders are walked from the best hand down; each takes the tier of the pot
// between the previous threshold and their own commitment, split with anyone tied
// who covers it.
func (g *Game) distribute() {
	contenders := make([]contender, 0, len(g.players))
	total := 0
	for i, p := range g.players {
		total += p.commitment
		if !p.Mucked() {
			contenders = append(contenders, contender{seat: i, commitment: p.commitment})
		}
	}

	if len(contenders) == 0 {
		return
	}

	if len(contenders) == 1 {
		g.players[contenders[0].seat].revenue += total
		g.logPayouts()
		return
	}

	for i := range contenders {
		contenders[i].hand = g.Hand(contenders[i].seat)
	}

	sort.SliceStable(contenders, func(i, j int) bool {
		a, b := contenders[i], contenders[j]
		if cmp := a.hand.Compare(b.hand); cmp != 0 {
			return cmp > 0
		}

		if a.commitment != b.commitment {
			return a.commitment < b.commitment
		}

		return a.seat < b.seat
	})

	base := 0
	for _, c := range contenders {
		if c.commitment <= base {
			continue
		}

		tier := 0
		for _, p := range g.players {
			tier += max(min(p.commitment, c.commitment)-base, 0)
		}

		winners := make([]int, 0, len(contenders))
		for _, other := range contenders {
			if other.commitment >= c.commitment && other.hand.Compare(c.hand) == 0 {
				winners = append(winners, other.seat)
			}
		}

		sort.Ints(winners)
		share := tier / len(winners)
		for _, seat := range winners {
			g.players[seat].revenue += share
		}

		// odd chips go to the first winner by seat
		g.players[winners[0]].revenue += tier % len(winners)

		base = c.commitment
	}

	g.logPayouts()
}

func (g *Game) logPayouts() {
	for i, payout := range g.Payouts() {
		g.logger.WithFields(logrus.Fields{
			"seat":    i,
			"revenue": g.players[i].revenue,
			"net":     payout,
		}).Info("payout")
	}
}
