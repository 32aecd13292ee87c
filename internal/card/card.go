package card

import (
	"fmt"
	"maps"
	"strings"
)

// Lang is a display language tag (e.g., en, it)
type Lang string

const (
	English Lang = "en"
	Italian Lang = "it"
)

// Suit identifies the Minor Arcana suit of a card
type Suit uint8

const (
	NoSuit Suit = iota // Major Arcana
	Wands
	Cups
	Swords
	Pentacles
)

// Suits lists the four Minor Arcana suits in catalog order
var Suits = []Suit{Wands, Cups, Swords, Pentacles}

func (s Suit) String() string {
	switch s {
	case Wands:
		return "Wands"
	case Cups:
		return "Cups"
	case Swords:
		return "Swords"
	case Pentacles:
		return "Pentacles"
	}
	return ""
}

// Key returns the canonical lowercase key used in card IDs and locale files
func (s Suit) Key() string {
	return strings.ToLower(s.String())
}

// Element returns the elemental tag associated with the suit
func (s Suit) Element() string {
	switch s {
	case Wands:
		return "Fire"
	case Cups:
		return "Water"
	case Swords:
		return "Air"
	case Pentacles:
		return "Earth"
	}
	return ""
}

// ParseSuit parses a suit key (wands, cups, swords, pentacles)
func ParseSuit(key string) (Suit, error) {
	for _, s := range Suits {
		if strings.EqualFold(key, s.Key()) {
			return s, nil
		}
	}
	return NoSuit, fmt.Errorf("unknown suit: %s", key)
}

// Meaning holds the content of a card in one language
type Meaning struct {
	Name     string
	Upright  string
	Reversed string
}

// Card is an immutable catalog template for a tarot card
type Card struct {
	Name   string // English name (e.g., The Fool, Ace, 7, Queen)
	Suit   Suit   // NoSuit for major arcana
	Rank   int    // 1-10 for numbered minor arcana, 0 otherwise
	Number int    // For major arcana (0-21)
	Major  bool
	Court  string // page, knight, queen, king

	UprightMeaning  string
	ReversedMeaning string

	// Locales maps a language to its localized content. English is
	// always resolvable from the base fields.
	Locales map[Lang]Meaning
}

// Identity is the uniqueness key of a card within the catalog
type Identity struct {
	Name string
	Suit Suit
	Rank int
}

// Identity returns the (name, suit, rank) key of the card
func (c Card) Identity() Identity {
	return Identity{Name: c.Name, Suit: c.Suit, Rank: c.Rank}
}

// ID returns the canonical card ID (e.g., major_arcana.00, minor_arcana.wands.ace)
func (c Card) ID() string {
	if c.Major {
		return fmt.Sprintf("major_arcana.%02d", c.Number)
	}
	return fmt.Sprintf("minor_arcana.%s.%s", c.Suit.Key(), c.RankKey())
}

// RankKey returns the rank part of a minor arcana ID (ace, two, ..., king)
func (c Card) RankKey() string {
	if c.Court != "" {
		return c.Court
	}
	if c.Rank >= 1 && c.Rank <= len(rankKeys) {
		return rankKeys[c.Rank-1]
	}
	return ""
}

var rankKeys = []string{
	"ace", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
}

// RankKeyOf returns the rank key for a numbered card (1-10)
func RankKeyOf(rank int) string {
	if rank < 1 || rank > len(rankKeys) {
		return ""
	}
	return rankKeys[rank-1]
}

// Clone returns a copy of c that shares no map with it
func (c Card) Clone() Card {
	c.Locales = maps.Clone(c.Locales)
	return c
}

// Clone returns a copy of d that shares no map with it
func (d Drawn) Clone() Drawn {
	d.Card = d.Card.Clone()
	return d
}

// Localized returns the card content in lang, falling back to English
func (c Card) Localized(lang Lang) Meaning {
	if lang != English {
		if m, ok := c.Locales[lang]; ok {
			return m
		}
	}
	return Meaning{Name: c.Name, Upright: c.UprightMeaning, Reversed: c.ReversedMeaning}
}

// Title returns the display name, e.g. "Queen of Cups"
func (c Card) Title(lang Lang) string {
	// Localized names already carry their suit
	if m, ok := c.Locales[lang]; ok && lang != English && m.Name != "" {
		return m.Name
	}
	if c.Suit == NoSuit {
		return c.Name
	}
	return fmt.Sprintf("%s of %s", c.Name, c.Suit)
}

// Drawn is a card as it came out of the deck for one reading
type Drawn struct {
	Card
	Reversed bool
}

// Meaning returns the upright or reversed meaning according to orientation
func (d Drawn) Meaning(lang Lang) string {
	m := d.Localized(lang)
	if d.Reversed {
		return m.Reversed
	}
	return m.Upright
}

func (d Drawn) String() string {
	s := d.Title(English)
	if d.Reversed {
		s += " (Reversed)"
	}
	return s
}
