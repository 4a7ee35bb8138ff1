// Package deck owns the flashcard data model: loading a deck of cards from a
// YAML file, discovering decks in the user's data directory, and writing an
// updated deck back without losing any field the program does not understand.
package deck

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Priority tiers. Higher values are reviewed first.
const (
	PriorityLowest  = 0
	PriorityLow     = 1
	PriorityNormal  = 2
	PriorityHighest = 3

	// PriorityUnrated marks a card whose priority field was missing,
	// non-numeric, or otherwise unusable at load time. The partitioner
	// repairs it to PriorityHighest so the card is never dropped.
	PriorityUnrated = -1
)

// Card is a single question/answer pair. Unknown YAML keys are carried in
// Extra so a load/save cycle never discards them.
type Card struct {
	Subject  string
	Question string
	Answer   string
	Priority int
	Extra    map[string]any
}

// ValidPriority reports whether p is one of the four recognized tiers.
func ValidPriority(p int) bool {
	return p >= PriorityLowest && p <= PriorityHighest
}

// rawCard is the on-disk shape. Priority is decoded as a raw node so a
// malformed value surfaces as PriorityUnrated instead of a load failure.
type rawCard struct {
	Subject  string         `yaml:"subject"`
	Question string         `yaml:"question"`
	Answer   string         `yaml:"answer"`
	Priority yaml.Node      `yaml:"priority"`
	Extra    map[string]any `yaml:",inline"`
}

// UnmarshalYAML decodes one card mapping.
func (c *Card) UnmarshalYAML(node *yaml.Node) error {
	var raw rawCard
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("decode card: %w", err)
	}

	c.Subject = raw.Subject
	c.Question = raw.Question
	c.Answer = raw.Answer
	c.Extra = raw.Extra

	c.Priority = PriorityUnrated
	if !raw.Priority.IsZero() {
		var p int
		if err := raw.Priority.Decode(&p); err == nil {
			c.Priority = p
		}
	}
	return nil
}

// MarshalYAML encodes the card with its known fields first and any preserved
// unknown fields inlined after them.
func (c Card) MarshalYAML() (any, error) {
	out := struct {
		Subject  string         `yaml:"subject"`
		Question string         `yaml:"question"`
		Answer   string         `yaml:"answer"`
		Priority int            `yaml:"priority"`
		Extra    map[string]any `yaml:",inline"`
	}{
		Subject:  c.Subject,
		Question: c.Question,
		Answer:   c.Answer,
		Priority: c.Priority,
		Extra:    c.Extra,
	}
	return out, nil
}
