package review

import "flash/internal/deck"

// Reconcile reassembles the complete deck for writing after a session: first
// the active groups in the order they were presented, then every excluded
// group in ascending tier order. The order is a contract — reloading a
// reconciled deck and partitioning it yields the same tier membership — and
// the result always has exactly the cards the deck was loaded with, with
// only priority fields possibly changed.
func Reconcile(plan *Plan) []*deck.Card {
	out := make([]*deck.Card, 0, planSize(plan))
	for _, g := range plan.Active {
		out = append(out, g.Cards...)
	}
	for _, g := range plan.Excluded {
		out = append(out, g.Cards...)
	}
	return out
}

func planSize(plan *Plan) int {
	n := 0
	for _, g := range plan.Active {
		n += len(g.Cards)
	}
	for _, g := range plan.Excluded {
		n += len(g.Cards)
	}
	return n
}
