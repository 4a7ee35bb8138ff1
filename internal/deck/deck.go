package deck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Deck is an ordered collection of cards loaded from one file. Size is a
// snapshot taken at load time and is not updated when the session mutates
// card priorities; it exists for display only.
type Deck struct {
	Name  string
	Path  string
	Cards []*Card
	Size  int
}

// Load reads a deck file. The file must contain a YAML sequence of card
// mappings.
func Load(path, name string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck %s: %w", name, err)
	}

	var cards []*Card
	if err := yaml.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("parse deck %s: %w", name, err)
	}

	return &Deck{
		Name:  name,
		Path:  path,
		Cards: cards,
		Size:  len(cards),
	}, nil
}

// Save writes the given card order back to the deck file. The caller decides
// the order (see review.Reconcile); Save itself never reorders or filters.
func (d *Deck) Save(cards []*Card) error {
	data, err := yaml.Marshal(cards)
	if err != nil {
		return fmt.Errorf("encode deck %s: %w", d.Name, err)
	}
	if err := os.WriteFile(d.Path, data, 0o644); err != nil {
		return fmt.Errorf("write deck %s: %w", d.Name, err)
	}
	return nil
}
