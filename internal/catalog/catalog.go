// Package catalog assembles the 78 tarot card templates from the
// language bundles.
package catalog

import (
	"fmt"
	"strings"

	"github.com/arcanaland/tarotsim/internal/card"
	"github.com/arcanaland/tarotsim/internal/locale"
)

const (
	// Size is the number of cards in a full tarot deck
	Size = 78

	MajorCount = 22
	// NumberedPerSuit counts Ace through 10
	NumberedPerSuit = 10
)

// Courts lists the court ranks in catalog order
var Courts = []string{"page", "knight", "queen", "king"}

// Build returns a fresh copy of the 78 card templates with content for
// every embedded language.
func Build() []card.Card {
	var bundles []*locale.Bundle
	for _, lang := range locale.Languages() {
		if lang == card.English {
			continue
		}
		b, _ := locale.Embedded(lang)
		bundles = append(bundles, b)
	}
	return BuildWith(bundles...)
}

// BuildWith returns the card templates using the embedded English bundle as
// the base content and attaching the given bundles as localized variants.
// A bundle that does not cover every card is attached to none, so a
// language is either present on all cards or omitted.
func BuildWith(bundles ...*locale.Bundle) []card.Card {
	en := locale.MustEmbedded(card.English)

	cards := make([]card.Card, 0, Size)

	// Major arcana (00-21)
	for i := 0; i < MajorCount; i++ {
		e := en.MajorArcana[majorKey(i)]
		cards = append(cards, card.Card{
			Name:            e.Name,
			Number:          i,
			Major:           true,
			UprightMeaning:  e.Upright,
			ReversedMeaning: e.Reversed,
		})
	}

	// Numbered cards (Ace through 10)
	for _, suit := range card.Suits {
		for rank := 1; rank <= NumberedPerSuit; rank++ {
			key := card.RankKeyOf(rank)
			e := en.MinorArcana[suit.Key()][key]
			cards = append(cards, card.Card{
				Name:            en.Ranks[key],
				Suit:            suit,
				Rank:            rank,
				UprightMeaning:  e.Upright,
				ReversedMeaning: e.Reversed,
			})
		}
	}

	// Court cards
	for _, suit := range card.Suits {
		for _, court := range Courts {
			m := courtMeaning(en, suit, court)
			cards = append(cards, card.Card{
				Name:            en.Ranks[court],
				Suit:            suit,
				Court:           court,
				UprightMeaning:  m.Upright,
				ReversedMeaning: m.Reversed,
			})
		}
	}

	for _, b := range bundles {
		if b == nil || b.Lang() == card.English || !Covers(b) {
			continue
		}
		for i := range cards {
			if cards[i].Locales == nil {
				cards[i].Locales = make(map[card.Lang]card.Meaning, len(bundles))
			}
			cards[i].Locales[b.Lang()] = localize(b, cards[i])
		}
	}

	return cards
}

// Covers reports whether a bundle has content for every card
func Covers(b *locale.Bundle) bool {
	for i := 0; i < MajorCount; i++ {
		if e, ok := b.MajorArcana[majorKey(i)]; !ok || e.Name == "" || e.Upright == "" || e.Reversed == "" {
			return false
		}
	}
	for _, suit := range card.Suits {
		if b.Suits[suit.Key()].Name == "" {
			return false
		}
		for rank := 1; rank <= NumberedPerSuit; rank++ {
			e, ok := b.MinorArcana[suit.Key()][card.RankKeyOf(rank)]
			if !ok || e.Upright == "" || e.Reversed == "" {
				return false
			}
		}
	}
	for _, court := range Courts {
		if e, ok := b.Courts[court]; !ok || e.Upright == "" || e.Reversed == "" {
			return false
		}
	}
	return true
}

// localize resolves the content of c in the bundle language
func localize(b *locale.Bundle, c card.Card) card.Meaning {
	if c.Major {
		e := b.MajorArcana[majorKey(c.Number)]
		return card.Meaning{Name: e.Name, Upright: e.Upright, Reversed: e.Reversed}
	}

	rank := b.Ranks[c.RankKey()]
	if rank == "" {
		rank = c.Name
	}
	of := b.Of
	if of == "" {
		of = "of"
	}
	name := fmt.Sprintf("%s %s %s", rank, of, b.Suits[c.Suit.Key()].Name)

	if c.Court != "" {
		m := courtMeaning(b, c.Suit, c.Court)
		m.Name = name
		return m
	}

	e := b.MinorArcana[c.Suit.Key()][c.RankKey()]
	return card.Meaning{Name: name, Upright: e.Upright, Reversed: e.Reversed}
}

// courtMeaning combines the court meaning with the suit keywords
func courtMeaning(b *locale.Bundle, suit card.Suit, court string) card.Meaning {
	e := b.Courts[court]
	keywords := b.Suits[suit.Key()].Keywords
	return card.Meaning{
		Upright:  fmt.Sprintf("%s - %s", e.Upright, keywords),
		Reversed: fmt.Sprintf("%s - %s", e.Reversed, keywords),
	}
}

func majorKey(n int) string {
	return fmt.Sprintf("%02d", n)
}

// Lookup finds a card by its canonical ID
func Lookup(cards []card.Card, id string) (card.Card, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, c := range cards {
		if c.ID() == id {
			return c, nil
		}
	}
	return card.Card{}, fmt.Errorf("card not found: %s", id)
}
