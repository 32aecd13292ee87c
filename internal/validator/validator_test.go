package validator_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/tarotsim/internal/validator"
)

func TestEmbeddedBundlesAreValid(t *testing.T) {
	for _, lang := range []string{"en", "it"} {
		t.Run(lang, func(t *testing.T) {
			path := filepath.Join("..", "locale", "data", lang+".toml")
			results, err := validator.NewValidator(path).Validate()
			require.NoError(t, err)
			assert.Empty(t, results.Errors)
			assert.Empty(t, results.Warnings)
		})
	}
}

func TestMissingFile(t *testing.T) {
	_, err := validator.NewValidator(filepath.Join(t.TempDir(), "xx.toml")).Validate()
	assert.ErrorContains(t, err, "locale file not found")
}

func TestUnparsableFile(t *testing.T) {
	path := writeLocale(t, "language = \n")
	_, err := validator.NewValidator(path).Validate()
	assert.ErrorContains(t, err, "error parsing")
}

func TestIncompleteBundle(t *testing.T) {
	path := writeLocale(t, `
language = "not a tag!"
colour = "blue"

[suits.wands]
name = "Bâtons"

[major_arcana.00]
name = "Le Mat"
upright = "Nouveaux départs"

[minor_arcana.cups.ace]
upright = "Amour"
reversed = "Vide"

[spreads.three]
name = "Trois cartes"
positions = ["Passé", "Présent"]

[spreads.tarot]
name = "?"

[answers]
format = "{confidence}"
`)

	results, err := validator.NewValidator(path).Validate()
	require.NoError(t, err)

	errs := strings.Join(results.Errors, "\n")
	assert.Contains(t, errs, `invalid language tag "not a tag!"`)
	assert.Contains(t, errs, "missing [suits.cups] section")
	assert.Contains(t, errs, "suits.wands.keywords is required")
	assert.Contains(t, errs, "major_arcana.00.reversed is required")
	assert.Contains(t, errs, "missing major arcana cards: 01, 02")
	assert.Contains(t, errs, "missing [minor_arcana.wands] section")
	assert.Contains(t, errs, "missing cards in cups suit: two, three")
	assert.Contains(t, errs, "missing court meanings: page, knight, queen, king")
	assert.Contains(t, errs, "spreads.three has 2 positions, expected 3")
	assert.Contains(t, errs, "answers.format must contain {answer}")

	warns := strings.Join(results.Warnings, "\n")
	assert.Contains(t, warns, "missing [spreads.celtic] section")
	assert.Contains(t, warns, "unknown spread: tarot")
	assert.Contains(t, warns, "missing labels")
	assert.Contains(t, warns, "missing answer words: yes, no, strong, moderate")
	assert.Contains(t, warns, "unknown key: colour")
}

func TestMissingLanguage(t *testing.T) {
	path := writeLocale(t, "name = \"Français\"\n")
	results, err := validator.NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Contains(t, results.Errors, "language is required")
	assert.Contains(t, results.Errors, "missing [major_arcana] section")
	assert.Contains(t, results.Errors, "missing [minor_arcana] section")
}

func writeLocale(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fr.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
