package review

import (
	"math/rand"

	"flash/internal/deck"
)

// Scheduler yields the plan's cards one at a time in presentation order and
// injects periodic re-surfacing of highest-tier cards.
//
// Re-surfacing is active only when the plan shows all tiers and frequency is
// positive. A budget of re-shows equal to the highest tier's size is set at
// session start; whenever the running count of scheduled cards is an exact
// multiple of frequency, budget remains, and the scheduled card is not itself
// highest-tier, one card is drawn uniformly from the live highest-tier group
// and presented before the scheduled card. Drawing spends budget but does not
// remove the card from its group, so it can appear again at its own turn.
type Scheduler struct {
	plan      *Plan
	frequency int
	rng       *rand.Rand

	pool   []*deck.Card // live highest-tier group
	budget int          // re-shows left

	seen     int // scheduled cards reached so far, 1-indexed
	groupIdx int
	cardIdx  int
	pending  *deck.Card // scheduled card deferred behind a re-surface
	total    int
}

// NewScheduler builds the card iterator for one session. frequency <= 0
// disables re-surfacing.
func NewScheduler(plan *Plan, frequency int, rng *rand.Rand) *Scheduler {
	s := &Scheduler{
		plan:      plan,
		frequency: frequency,
		rng:       rng,
	}
	if plan.Filter == FilterAll && frequency > 0 {
		s.pool = plan.highGroup()
		s.budget = len(s.pool)
	}
	for _, g := range plan.Active {
		s.total += len(g.Cards)
	}
	s.total += s.budget
	return s
}

// Total returns how many presentations the run holds, counting the
// re-surface budget.
func (s *Scheduler) Total() int {
	return s.total
}

// Next returns the next card to present, or false when the plan is
// exhausted. Each returned card is one full question/answer/rating cycle.
func (s *Scheduler) Next() (*deck.Card, bool) {
	if s.pending != nil {
		card := s.pending
		s.pending = nil
		return card, true
	}

	for s.groupIdx < len(s.plan.Active) {
		group := s.plan.Active[s.groupIdx]
		if s.cardIdx >= len(group.Cards) {
			s.groupIdx++
			s.cardIdx = 0
			continue
		}
		card := group.Cards[s.cardIdx]
		s.cardIdx++
		s.seen++

		if s.frequency > 0 && s.budget > 0 &&
			card.Priority != deck.PriorityHighest &&
			s.seen%s.frequency == 0 {
			s.budget--
			s.pending = card
			return s.pool[s.rng.Intn(len(s.pool))], true
		}

		return card, true
	}
	return nil, false
}
