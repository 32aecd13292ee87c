package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/tarotsim/internal/card"
	"github.com/arcanaland/tarotsim/internal/catalog"
	"github.com/arcanaland/tarotsim/internal/locale"
)

func TestBuildCompleteness(t *testing.T) {
	cards := catalog.Build()
	require.Len(t, cards, catalog.Size)

	majors := 0
	ranked := map[card.Suit]int{}
	courts := map[card.Suit]int{}
	for _, c := range cards {
		switch {
		case c.Major:
			majors++
			assert.Equal(t, card.NoSuit, c.Suit, c.Name)
			assert.Zero(t, c.Rank, c.Name)
		case c.Court != "":
			courts[c.Suit]++
			assert.Zero(t, c.Rank, c.Name)
		default:
			ranked[c.Suit]++
			assert.GreaterOrEqual(t, c.Rank, 1)
			assert.LessOrEqual(t, c.Rank, 10)
		}
	}

	assert.Equal(t, 22, majors)
	for _, s := range card.Suits {
		assert.Equal(t, 10, ranked[s], s.String())
		assert.Equal(t, 4, courts[s], s.String())
	}
}

func TestBuildIdentitiesUnique(t *testing.T) {
	seen := map[card.Identity]bool{}
	ids := map[string]bool{}
	for _, c := range catalog.Build() {
		assert.False(t, seen[c.Identity()], "duplicate identity %+v", c.Identity())
		assert.False(t, ids[c.ID()], "duplicate id %s", c.ID())
		seen[c.Identity()] = true
		ids[c.ID()] = true
	}
	assert.Len(t, seen, catalog.Size)
}

func TestBuildContent(t *testing.T) {
	cards := catalog.Build()

	fool := cards[0]
	assert.Equal(t, "The Fool", fool.Name)
	assert.Equal(t, "New beginnings, innocence, spontaneity", fool.UprightMeaning)
	assert.Equal(t, "The World", cards[21].Name)

	ace, err := catalog.Lookup(cards, "minor_arcana.wands.ace")
	require.NoError(t, err)
	assert.Equal(t, "Ace", ace.Name)
	assert.Equal(t, 1, ace.Rank)

	seven, err := catalog.Lookup(cards, "minor_arcana.cups.seven")
	require.NoError(t, err)
	assert.Equal(t, "7", seven.Name)

	queen, err := catalog.Lookup(cards, "MINOR_ARCANA.CUPS.QUEEN")
	require.NoError(t, err)
	assert.Equal(t, "Queen", queen.Name)
	assert.Equal(t, "Compassion, calm, comfort, loyalty - emotion, spirituality, intuition, relationships", queen.UprightMeaning)
	assert.Equal(t, "Regina di Coppe", queen.Title(card.Italian))
	assert.Equal(t, "Compassione, calma, conforto, lealtà - emozioni, spiritualità, intuizione, relazioni", queen.Localized(card.Italian).Upright)

	_, err = catalog.Lookup(cards, "minor_arcana.coins.ace")
	assert.Error(t, err)
}

func TestBuildLocalizationConsistent(t *testing.T) {
	for _, c := range catalog.Build() {
		for _, lang := range locale.Languages() {
			if lang == card.English {
				continue
			}
			m, ok := c.Locales[lang]
			require.True(t, ok, "%s missing %s", c.ID(), lang)
			assert.NotEmpty(t, m.Name, c.ID())
			assert.NotEmpty(t, m.Upright, c.ID())
			assert.NotEmpty(t, m.Reversed, c.ID())
		}
	}
}

func TestBuildWithSkipsPartialBundle(t *testing.T) {
	partial, err := locale.Decode(`
language = "fr"
of = "de"

[major_arcana.00]
name = "Le Mat"
upright = "Nouveaux départs"
reversed = "Imprudence"
`)
	require.NoError(t, err)
	assert.False(t, catalog.Covers(partial))

	for _, c := range catalog.BuildWith(partial) {
		_, ok := c.Locales["fr"]
		assert.False(t, ok, c.ID())
	}
}

func TestBuildReturnsIndependentSlices(t *testing.T) {
	a := catalog.Build()
	b := catalog.Build()
	a[0].Name = "changed"
	assert.Equal(t, "The Fool", b[0].Name)
}
