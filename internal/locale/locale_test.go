package locale_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/tarotsim/internal/card"
	"github.com/arcanaland/tarotsim/internal/locale"
)

func TestEmbeddedBundles(t *testing.T) {
	assert.Equal(t, []card.Lang{card.English, card.Italian}, locale.Languages())

	for _, lang := range locale.Languages() {
		b, ok := locale.Embedded(lang)
		require.True(t, ok, lang)
		assert.Len(t, b.MajorArcana, 22, lang)
		assert.Len(t, b.Suits, 4, lang)
		assert.Len(t, b.Courts, 4, lang)
		assert.Len(t, b.Spreads, 5, lang)
		for _, s := range card.Suits {
			assert.Len(t, b.MinorArcana[s.Key()], 10, "%s %s", lang, s)
		}
	}
}

func TestSpreadPositionsAlignAcrossLanguages(t *testing.T) {
	en := locale.MustEmbedded(card.English)
	it := locale.MustEmbedded(card.Italian)
	for key, spread := range en.Spreads {
		other, ok := it.Spread(key)
		require.True(t, ok, key)
		assert.Len(t, other.Positions, len(spread.Positions), key)
	}
}

func TestVerdict(t *testing.T) {
	en := locale.MustEmbedded(card.English)
	assert.Equal(t, "Yes (Strong indication)", en.Verdict(true, true))
	assert.Equal(t, "No (Moderate indication)", en.Verdict(false, false))

	it := locale.MustEmbedded(card.Italian)
	assert.Equal(t, "Sì (indicazione forte)", it.Verdict(true, true))
	assert.Equal(t, "No (indicazione moderata)", it.Verdict(false, false))
}

func TestIsYes(t *testing.T) {
	en := locale.MustEmbedded(card.English)
	assert.True(t, en.IsYes("y"))
	assert.True(t, en.IsYes(" Yes "))
	assert.False(t, en.IsYes("n"))
	assert.False(t, en.IsYes(""))
	assert.False(t, en.IsYes("yikes"))
	assert.False(t, en.IsYes("yeah right"))

	it := locale.MustEmbedded(card.Italian)
	assert.True(t, it.IsYes("s"))
	assert.True(t, it.IsYes("sì"))
	assert.True(t, it.IsYes("y"))
	assert.True(t, it.IsYes("Si"))
	assert.False(t, it.IsYes("no"))
	assert.False(t, it.IsYes("sure"))
	assert.False(t, it.IsYes("yes"))

	fallback := &locale.Bundle{Language: "fr"}
	assert.True(t, fallback.IsYes("Y"))
	assert.False(t, fallback.IsYes("yes"))
}

func TestMustEmbeddedFallsBackToEnglish(t *testing.T) {
	b := locale.MustEmbedded(card.Lang("xx"))
	assert.Equal(t, card.English, b.Lang())
}

func TestMatch(t *testing.T) {
	available := locale.Languages()
	tests := []struct {
		tag  string
		want card.Lang
	}{
		{"", card.English},
		{"en", card.English},
		{"it", card.Italian},
		{"it-IT", card.Italian},
		{"it_CH", card.Italian},
		{"en-GB", card.English},
		{"fr", card.English},
		{"italian", card.Italian},
		{"Italiano", card.Italian},
		{"English", card.English},
		{"inglese", card.English},
		{"french", card.English},
		{"not a tag", card.English},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, locale.Match(tt.tag, available))
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.toml"), []byte(`name = "Français"
of = "de"

[suits.cups]
name = "Coupes"
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	bundles, err := locale.LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, bundles, 1)
	assert.Equal(t, card.Lang("fr"), bundles[0].Lang())
	assert.Equal(t, "Coupes", bundles[0].Suits["cups"].Name)
}

func TestLoadDirMissing(t *testing.T) {
	bundles, err := locale.LoadDir(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, bundles)
}

func TestDecodeRequiresLanguage(t *testing.T) {
	_, err := locale.Decode(`name = "Nameless"`)
	assert.Error(t, err)

	_, err = locale.Decode(`language = [`)
	assert.Error(t, err)
}

func TestBundleHelpers(t *testing.T) {
	it := locale.MustEmbedded(card.Italian)
	assert.Equal(t, "Croce Celtica", it.SpreadName("celtic", "Celtic Cross Spread"))
	assert.Equal(t, "Pyramid", it.SpreadName("pyramid", "Pyramid"))
	assert.Equal(t, "Guida quotidiana", it.SpreadQuestion("single", "Daily guidance"))
	assert.Equal(t, "Futuro", it.Position("three", 2, "Future"))
	assert.Equal(t, "Future", it.Position("three", 7, "Future"))

	c := card.Card{
		Name:    "The Fool",
		Major:   true,
		Locales: map[card.Lang]card.Meaning{card.Italian: {Name: "Il Matto"}},
	}
	assert.Equal(t, "Il Matto (Rovesciata)", it.CardLabel(card.Drawn{Card: c, Reversed: true}))
	assert.Equal(t, "Il Matto", it.CardLabel(card.Drawn{Card: c}))

	en := locale.MustEmbedded(card.English)
	assert.Equal(t, "The Fool (Reversed)", en.CardLabel(card.Drawn{Card: c, Reversed: true}))
}

func TestWithFallback(t *testing.T) {
	en := locale.MustEmbedded(card.English)
	fr, err := locale.Decode(`language = "fr"
[labels]
question = "Question"
reversed = "Renversée"

[spreads.single]
name = "Tirage d'une carte"
positions = ["Votre carte"]
`)
	require.NoError(t, err)

	merged := fr.WithFallback(en)
	assert.Equal(t, "Renversée", merged.Labels.Reversed)
	assert.Equal(t, en.Labels.Welcome, merged.Labels.Welcome)
	assert.Equal(t, en.Answers.Format, merged.Answers.Format)
	assert.Equal(t, "Tirage d'une carte", merged.SpreadName("single", ""))
	assert.Equal(t, en.Spreads["celtic"].Name, merged.SpreadName("celtic", ""))
	assert.Equal(t, "of", merged.Of)

	// The receiver is left untouched
	assert.Empty(t, fr.Labels.Welcome)
	assert.Len(t, fr.Spreads, 1)
}
