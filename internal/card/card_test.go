package card_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/tarotsim/internal/card"
)

func TestCardID(t *testing.T) {
	tests := []struct {
		name string
		card card.Card
		want string
	}{
		{"major", card.Card{Name: "The Fool", Major: true, Number: 0}, "major_arcana.00"},
		{"major two digits", card.Card{Name: "The World", Major: true, Number: 21}, "major_arcana.21"},
		{"ace", card.Card{Name: "Ace", Suit: card.Cups, Rank: 1}, "minor_arcana.cups.ace"},
		{"numbered", card.Card{Name: "7", Suit: card.Swords, Rank: 7}, "minor_arcana.swords.seven"},
		{"court", card.Card{Name: "Queen", Suit: card.Pentacles, Court: "queen"}, "minor_arcana.pentacles.queen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.card.ID())
		})
	}
}

func TestSuit(t *testing.T) {
	assert.Equal(t, "Fire", card.Wands.Element())
	assert.Equal(t, "Water", card.Cups.Element())
	assert.Equal(t, "Air", card.Swords.Element())
	assert.Equal(t, "Earth", card.Pentacles.Element())
	assert.Empty(t, card.NoSuit.String())

	s, err := card.ParseSuit("Pentacles")
	require.NoError(t, err)
	assert.Equal(t, card.Pentacles, s)

	_, err = card.ParseSuit("coins")
	assert.Error(t, err)
}

func TestDrawnMeaningAndString(t *testing.T) {
	c := card.Card{
		Name:            "Ace",
		Suit:            card.Wands,
		Rank:            1,
		UprightMeaning:  "New creative energy, inspiration",
		ReversedMeaning: "Delays, lack of motivation",
		Locales: map[card.Lang]card.Meaning{
			card.Italian: {Name: "Asso di Bastoni", Upright: "Nuova energia creativa", Reversed: "Ritardi"},
		},
	}

	up := card.Drawn{Card: c}
	assert.Equal(t, "Ace of Wands", up.String())
	assert.Equal(t, "New creative energy, inspiration", up.Meaning(card.English))
	assert.Equal(t, "Nuova energia creativa", up.Meaning(card.Italian))

	rev := card.Drawn{Card: c, Reversed: true}
	assert.Equal(t, "Ace of Wands (Reversed)", rev.String())
	assert.Equal(t, "Ritardi", rev.Meaning(card.Italian))
	assert.Equal(t, "Asso di Bastoni", rev.Title(card.Italian))
}

func TestLocalizedFallsBackToEnglish(t *testing.T) {
	c := card.Card{Name: "The Fool", Major: true, UprightMeaning: "New beginnings"}
	m := c.Localized(card.Italian)
	assert.Equal(t, "The Fool", m.Name)
	assert.Equal(t, "New beginnings", m.Upright)
	assert.Equal(t, "The Fool", c.Title(card.Italian))
}

func TestCloneDoesNotShareLocales(t *testing.T) {
	c := card.Card{
		Name:    "The Fool",
		Major:   true,
		Locales: map[card.Lang]card.Meaning{card.Italian: {Name: "Il Matto"}},
	}
	d := card.Drawn{Card: c, Reversed: true}.Clone()
	d.Locales[card.Italian] = card.Meaning{Name: "Changed"}

	assert.Equal(t, "Il Matto", c.Title(card.Italian))
	assert.True(t, d.Reversed)

	var empty card.Card
	assert.Nil(t, empty.Clone().Locales)
}
