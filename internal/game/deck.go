package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Deck is one ordering of the nine cards. Index 0 is dealt first.
type Deck [DeckSize]Card

// NewDeck returns a uniformly random permutation of all nine cards.
func NewDeck(rng Rand) Deck {
	deck := Deck(AllCards())
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// ValidateDeck checks that cards holds each of the nine cards exactly once.
func ValidateDeck(cards []Card) (Deck, error) {
	var deck Deck
	if len(cards) != DeckSize {
		return deck, fmt.Errorf("deck has %d cards, want %d", len(cards), DeckSize)
	}
	var seen [DeckSize]bool
	for i, c := range cards {
		if c < 0 || int(c) >= DeckSize {
			return deck, fmt.Errorf("deck position %d: invalid card %d", i, int(c))
		}
		if seen[c] {
			return deck, fmt.Errorf("deck position %d: duplicate %s", i, c)
		}
		seen[c] = true
		deck[i] = c
	}
	return deck, nil
}

// DealFile represents the top-level YAML structure of a file of fixed deals.
type DealFile struct {
	Deals []DealEntry `yaml:"deals"`
}

// DealEntry is a named deck ordering. Cards are listed in deal order.
type DealEntry struct {
	Name  string   `yaml:"name"`
	Cards []string `yaml:"cards"`
}

// Deck resolves and validates the entry's card names.
func (e DealEntry) Deck() (Deck, error) {
	cards := make([]Card, 0, len(e.Cards))
	for _, name := range e.Cards {
		c, err := ParseCard(name)
		if err != nil {
			return Deck{}, fmt.Errorf("deal %q: %w", e.Name, err)
		}
		cards = append(cards, c)
	}
	deck, err := ValidateDeck(cards)
	if err != nil {
		return Deck{}, fmt.Errorf("deal %q: %w", e.Name, err)
	}
	return deck, nil
}

// ParseDealYAML decodes a deal file from memory.
func ParseDealYAML(data []byte) (DealFile, error) {
	var df DealFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return DealFile{}, fmt.Errorf("parse deal YAML: %w", err)
	}
	return df, nil
}

// ParseDealFile parses a YAML deal file and returns a map of deal name → deck.
func ParseDealFile(path string) (map[string]Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	df, err := ParseDealYAML(data)
	if err != nil {
		return nil, err
	}

	deals := make(map[string]Deck, len(df.Deals))
	for _, entry := range df.Deals {
		deck, err := entry.Deck()
		if err != nil {
			return nil, err
		}
		deals[entry.Name] = deck
	}

	return deals, nil
}

// DealByNumber returns the Nth deal (1-indexed) from the deal file.
func DealByNumber(path string, n int) (string, Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", Deck{}, err
	}

	df, err := ParseDealYAML(data)
	if err != nil {
		return "", Deck{}, err
	}

	if n < 1 || n > len(df.Deals) {
		return "", Deck{}, fmt.Errorf("deal %d not found (have %d deals)", n, len(df.Deals))
	}

	entry := df.Deals[n-1]
	deck, err := entry.Deck()
	if err != nil {
		return "", Deck{}, err
	}
	return entry.Name, deck, nil
}
