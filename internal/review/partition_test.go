package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flash/internal/deck"
)

func card(subject string, priority int) *deck.Card {
	return &deck.Card{
		Subject:  subject,
		Question: "q:" + subject,
		Answer:   "a:" + subject,
		Priority: priority,
	}
}

func TestPartition_BucketsByPriority(t *testing.T) {
	cards := []*deck.Card{
		card("a", 0),
		card("b", 1),
		card("c", 2),
		card("d", 3),
		card("e", 1),
	}

	g := Partition(cards)

	assert.Len(t, g[0], 1)
	assert.Len(t, g[1], 2)
	assert.Len(t, g[2], 1)
	assert.Len(t, g[3], 1)
	assert.Equal(t, "b", g[1][0].Subject, "source order within a tier is preserved")
	assert.Equal(t, "e", g[1][1].Subject)
}

func TestPartition_RepairsInvalidPriorities(t *testing.T) {
	cards := []*deck.Card{
		card("a", 0),
		card("b", 1),
		card("c", 5),
		card("missing", deck.PriorityUnrated),
		card("negative", -7),
	}

	g := Partition(cards)

	require.Len(t, g[3], 3, "every invalid card lands in the highest tier")
	for _, c := range g[3] {
		assert.Equal(t, deck.PriorityHighest, c.Priority, "repair mutates the card in place")
	}
	assert.Equal(t, "a", g[0][0].Subject)
	assert.Equal(t, "b", g[1][0].Subject)
	assert.Empty(t, g[2])
}

func TestPartition_Completeness(t *testing.T) {
	cards := []*deck.Card{
		card("a", 3), card("b", -1), card("c", 0), card("d", 99),
		card("e", 2), card("f", 2), card("g", 1),
	}

	g := Partition(cards)

	assert.Equal(t, len(cards), g.Total(), "no card may be lost")

	seen := make(map[*deck.Card]int)
	for _, tier := range g {
		for _, c := range tier {
			seen[c]++
			assert.True(t, deck.ValidPriority(c.Priority))
		}
	}
	for _, c := range cards {
		assert.Equal(t, 1, seen[c], "card %s must appear exactly once", c.Subject)
	}
}

func TestPartition_EmptyDeck(t *testing.T) {
	g := Partition(nil)
	assert.Zero(t, g.Total())
}
