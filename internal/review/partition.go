// Package review implements the card-selection and priority-update core of
// flash: partitioning a deck into priority tiers, planning the presentation
// order for one session (including periodic re-surfacing of high-priority
// cards), driving the question/answer/rating state machine, and reconciling
// the session's groups back into one complete deck for writing.
//
// The package is pure policy: it knows nothing about terminals, files, or
// flags. The TUI in cmd/flash/tui and the store in internal/deck are its
// only callers.
package review

import "flash/internal/deck"

// NumTiers is the number of priority tiers a deck partitions into.
const NumTiers = 4

// Groups holds the deck partitioned by priority: Groups[0] is tier 0
// (lowest), Groups[3] is tier 3 (highest, shown first).
type Groups [NumTiers][]*deck.Card

// Partition buckets cards by their priority field. A card whose priority is
// outside the four tiers is repaired in place to the highest tier rather
// than dropped; after Partition returns, every card has a valid priority and
// appears in exactly one group, in source order.
func Partition(cards []*deck.Card) Groups {
	var g Groups
	for _, c := range cards {
		if !deck.ValidPriority(c.Priority) {
			c.Priority = deck.PriorityHighest
		}
		g[c.Priority] = append(g[c.Priority], c)
	}
	return g
}

// Total returns the number of cards across all tiers.
func (g Groups) Total() int {
	n := 0
	for _, tier := range g {
		n += len(tier)
	}
	return n
}
