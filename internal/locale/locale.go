package locale

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/tarotsim/internal/card"
)

//go:embed data/*.toml
var bundleFS embed.FS

// Bundle is a language pack for the catalog and the reading output
type Bundle struct {
	Language string `toml:"language"`
	Name     string `toml:"name"`
	Of       string `toml:"of"` // connective in "Queen of Cups"

	Suits       map[string]SuitEntry        `toml:"suits"`
	Ranks       map[string]string           `toml:"ranks"`
	MajorArcana map[string]Entry            `toml:"major_arcana"`
	MinorArcana map[string]map[string]Entry `toml:"minor_arcana"`
	Courts      map[string]Entry            `toml:"courts"`
	Spreads     map[string]SpreadEntry      `toml:"spreads"`
	Labels      Labels                      `toml:"labels"`
	Answers     Answers                     `toml:"answers"`
}

// SuitEntry describes a suit in one language
type SuitEntry struct {
	Name     string `toml:"name"`
	Element  string `toml:"element"`
	Keywords string `toml:"keywords"`
}

// Entry is the content of a single card or court rank
type Entry struct {
	Name     string `toml:"name"`
	Upright  string `toml:"upright"`
	Reversed string `toml:"reversed"`
}

// SpreadEntry localizes a spread layout
type SpreadEntry struct {
	Name      string   `toml:"name"`
	Menu      string   `toml:"menu"`
	Question  string   `toml:"question"`
	Positions []string `toml:"positions"`
}

// Labels holds the user-facing strings of the reading output and the
// interactive session
type Labels struct {
	Question         string `toml:"question"`
	Answer           string `toml:"answer"`
	CardsDrawn       string `toml:"cards_drawn"`
	Reversed         string `toml:"reversed"`
	ExtensiveTitle   string `toml:"extensive_title"`
	Generating       string `toml:"generating"`
	NoAPIKey         string `toml:"no_api_key"`
	GenerationFailed string `toml:"generation_failed"`
	Welcome          string `toml:"welcome"`
	AIAvailable      string `toml:"ai_available"`
	AvailableSpreads string `toml:"available_spreads"`
	ChooseSpread     string `toml:"choose_spread"`
	EnterQuestion    string `toml:"enter_question"`
	AskExtensive     string `toml:"ask_extensive"`
	Shuffling        string `toml:"shuffling"`
	InvalidChoice    string `toml:"invalid_choice"`
	AskAnother       string `toml:"ask_another"`
	Goodbye          string `toml:"goodbye"`
	ErrorOccurred    string `toml:"error_occurred"`
	KeyWarning       string `toml:"key_warning"`
	KeyHint          string `toml:"key_hint"`
	YesWords         string `toml:"yes_words"` // comma separated replies accepted as yes
}

// Answers localizes the yes/no verdict
type Answers struct {
	Yes      string `toml:"yes"`
	No       string `toml:"no"`
	Strong   string `toml:"strong"`
	Moderate string `toml:"moderate"`
	Format   string `toml:"format"` // uses {answer} and {confidence}
}

// Lang returns the bundle language as a card.Lang
func (b *Bundle) Lang() card.Lang {
	return card.Lang(b.Language)
}

// Verdict formats a yes/no verdict in the bundle language
func (b *Bundle) Verdict(yes, strong bool) string {
	answer, confidence := b.Answers.No, b.Answers.Moderate
	if yes {
		answer = b.Answers.Yes
	}
	if strong {
		confidence = b.Answers.Strong
	}
	format := b.Answers.Format
	if format == "" {
		format = "{answer} ({confidence})"
	}
	return strings.NewReplacer("{answer}", answer, "{confidence}", confidence).Replace(format)
}

// IsYes reports whether a y/n prompt reply is one of the bundle's yes words.
// Without a list only "y" counts.
func (b *Bundle) IsYes(reply string) bool {
	reply = strings.ToLower(strings.TrimSpace(reply))
	if reply == "" {
		return false
	}
	words := b.Labels.YesWords
	if words == "" {
		words = "y"
	}
	for _, w := range strings.Split(words, ",") {
		if reply == strings.ToLower(strings.TrimSpace(w)) {
			return true
		}
	}
	return false
}

// Spread returns the localized entry for a spread key
func (b *Bundle) Spread(key string) (SpreadEntry, bool) {
	e, ok := b.Spreads[key]
	return e, ok
}

var (
	embeddedOnce    sync.Once
	embeddedBundles map[card.Lang]*Bundle
	embeddedErr     error
)

func loadEmbedded() {
	entries, err := bundleFS.ReadDir("data")
	if err != nil {
		embeddedErr = fmt.Errorf("error reading embedded locales: %w", err)
		return
	}

	embeddedBundles = make(map[card.Lang]*Bundle, len(entries))
	for _, entry := range entries {
		raw, err := bundleFS.ReadFile("data/" + entry.Name())
		if err != nil {
			embeddedErr = fmt.Errorf("error reading embedded locale %s: %w", entry.Name(), err)
			return
		}
		b, err := Decode(string(raw))
		if err != nil {
			embeddedErr = fmt.Errorf("error parsing embedded locale %s: %w", entry.Name(), err)
			return
		}
		embeddedBundles[b.Lang()] = b
	}
}

// Embedded returns the bundled language pack for lang. The embedded files
// are part of the binary, so a decode failure is a build defect and panics.
func Embedded(lang card.Lang) (*Bundle, bool) {
	embeddedOnce.Do(loadEmbedded)
	if embeddedErr != nil {
		panic(embeddedErr)
	}
	b, ok := embeddedBundles[lang]
	return b, ok
}

// MustEmbedded is like Embedded but falls back to English
func MustEmbedded(lang card.Lang) *Bundle {
	if b, ok := Embedded(lang); ok {
		return b
	}
	b, _ := Embedded(card.English)
	return b
}

// Languages lists the embedded languages, English first
func Languages() []card.Lang {
	embeddedOnce.Do(loadEmbedded)
	if embeddedErr != nil {
		panic(embeddedErr)
	}
	langs := make([]card.Lang, 0, len(embeddedBundles))
	for l := range embeddedBundles {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool {
		if langs[i] == card.English || langs[j] == card.English {
			return langs[i] == card.English
		}
		return langs[i] < langs[j]
	})
	return langs
}

// Decode parses a bundle from TOML text
func Decode(data string) (*Bundle, error) {
	var b Bundle
	if _, err := toml.Decode(data, &b); err != nil {
		return nil, err
	}
	if b.Language == "" {
		return nil, fmt.Errorf("language is required")
	}
	return &b, nil
}

// LoadFile loads a bundle from a TOML file
func LoadFile(path string) (*Bundle, error) {
	var b Bundle
	if _, err := toml.DecodeFile(path, &b); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	if b.Language == "" {
		// Fall back to the file name (e.g., fr.toml)
		b.Language = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &b, nil
}

// LoadDir loads every <lang>.toml bundle in dir. A missing directory is not
// an error.
func LoadDir(dir string) ([]*Bundle, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading locale directory: %w", err)
	}

	var bundles []*Bundle
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		b, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, b)
	}
	return bundles, nil
}

// SpreadName returns the localized spread name or fallback
func (b *Bundle) SpreadName(key, fallback string) string {
	if e, ok := b.Spreads[key]; ok && e.Name != "" {
		return e.Name
	}
	return fallback
}

// SpreadQuestion returns the localized default question or fallback
func (b *Bundle) SpreadQuestion(key, fallback string) string {
	if e, ok := b.Spreads[key]; ok && e.Question != "" {
		return e.Question
	}
	return fallback
}

// Position returns the localized label of the i-th position or fallback
func (b *Bundle) Position(key string, i int, fallback string) string {
	if e, ok := b.Spreads[key]; ok && i >= 0 && i < len(e.Positions) {
		return e.Positions[i]
	}
	return fallback
}

// CardLabel returns the display string of a drawn card, e.g.
// "Queen of Cups (Reversed)"
func (b *Bundle) CardLabel(d card.Drawn) string {
	s := d.Title(b.Lang())
	if d.Reversed {
		reversed := b.Labels.Reversed
		if reversed == "" {
			reversed = "Reversed"
		}
		s += " (" + reversed + ")"
	}
	return s
}

// WithFallback returns a copy of b where empty labels, answer words and
// missing spreads are taken from base
func (b *Bundle) WithFallback(base *Bundle) *Bundle {
	out := *b
	if base == nil {
		return &out
	}
	fillStrings(reflect.ValueOf(&out.Labels).Elem(), reflect.ValueOf(base.Labels))
	fillStrings(reflect.ValueOf(&out.Answers).Elem(), reflect.ValueOf(base.Answers))

	out.Spreads = make(map[string]SpreadEntry, len(base.Spreads))
	for k, v := range base.Spreads {
		out.Spreads[k] = v
	}
	for k, v := range b.Spreads {
		out.Spreads[k] = v
	}
	if out.Of == "" {
		out.Of = base.Of
	}
	return &out
}

// fillStrings copies the string fields of src into the empty string fields
// of dst
func fillStrings(dst, src reflect.Value) {
	for i := 0; i < dst.NumField(); i++ {
		f := dst.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(src.Field(i).String())
		}
	}
}
