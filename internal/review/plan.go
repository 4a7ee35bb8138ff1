package review

import (
	"errors"
	"fmt"
	"math/rand"

	"flash/internal/deck"
)

// Planning errors. Both abort the run before any card is shown.
var (
	ErrInvalidFilter  = errors.New("invalid priority filter")
	ErrEmptySelection = errors.New("no cards of selected priority")
)

// Filter selects which tiers a session presents. FilterAll shows every tier;
// 1 through 4 select exactly one tier (1 selects tier 0, 4 selects tier 3).
type Filter int

// FilterAll presents all tiers, highest first.
const FilterAll Filter = -1

// Valid reports whether f is FilterAll or a single-tier selection.
func (f Filter) Valid() bool {
	return f == FilterAll || (f >= 1 && f <= 4)
}

// Tier returns the tier index a single-tier filter selects. Only meaningful
// when f is not FilterAll.
func (f Filter) Tier() int {
	return int(f) - 1
}

// Group is one priority tier together with its cards, as owned by a Plan.
type Group struct {
	Tier  int
	Cards []*deck.Card
}

// Plan is the presentation order for one session. Active groups are shown in
// slice order; Excluded groups are never shown but are reattached at save
// time. Every tier appears in exactly one of the two lists.
type Plan struct {
	Filter   Filter
	Xeric    bool
	Active   []Group
	Excluded []Group // ascending tier order
}

// BuildPlan selects and shuffles the groups to present. With FilterAll the
// active order is tier 3, 2, 1 and then tier 0 unless xeric hides it; with a
// single-tier filter the one selected group is active and xeric is ignored.
// Each active group is shuffled independently with rng, so tiers keep their
// order while card order within a tier is random per run.
func BuildPlan(groups Groups, filter Filter, xeric bool, rng *rand.Rand) (*Plan, error) {
	if !filter.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFilter, filter)
	}

	var activeTiers []int
	if filter == FilterAll {
		activeTiers = []int{3, 2, 1}
		if !xeric {
			activeTiers = append(activeTiers, 0)
		}
	} else {
		activeTiers = []int{filter.Tier()}
	}

	plan := &Plan{Filter: filter, Xeric: xeric}
	active := make(map[int]bool, len(activeTiers))
	total := 0
	for _, tier := range activeTiers {
		cards := append([]*deck.Card(nil), groups[tier]...)
		rng.Shuffle(len(cards), func(i, j int) {
			cards[i], cards[j] = cards[j], cards[i]
		})
		plan.Active = append(plan.Active, Group{Tier: tier, Cards: cards})
		active[tier] = true
		total += len(cards)
	}
	if total == 0 {
		return nil, fmt.Errorf("%w (filter %d)", ErrEmptySelection, filter)
	}

	for tier := 0; tier < NumTiers; tier++ {
		if !active[tier] {
			cards := append([]*deck.Card(nil), groups[tier]...)
			plan.Excluded = append(plan.Excluded, Group{Tier: tier, Cards: cards})
		}
	}
	return plan, nil
}

// highGroup returns the live highest-tier active group, or nil if tier 3 is
// not active. The re-surfacing scheduler draws from it.
func (p *Plan) highGroup() []*deck.Card {
	for _, g := range p.Active {
		if g.Tier == deck.PriorityHighest {
			return g.Cards
		}
	}
	return nil
}
