package validator

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/arcanaland/tarotsim/internal/card"
	"github.com/arcanaland/tarotsim/internal/catalog"
	"github.com/arcanaland/tarotsim/internal/locale"
	"github.com/arcanaland/tarotsim/internal/spread"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks a language bundle file before it is dropped into the
// locale directory
type Validator struct {
	Path    string
	Results ValidationResults

	bundle locale.Bundle
	meta   toml.MetaData
}

func NewValidator(path string) *Validator {
	return &Validator{
		Path:    path,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateToml(); err != nil {
		return v.Results, err
	}

	v.validateLanguage()
	v.validateSuits()
	v.validateMajorArcana()
	v.validateMinorArcana()
	v.validateCourts()
	v.validateSpreads()
	v.validateLabels()
	v.validateAnswers()
	v.validateUnknownKeys()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateToml() error {
	if _, err := os.Stat(v.Path); os.IsNotExist(err) {
		return fmt.Errorf("locale file not found: %s", v.Path)
	}

	meta, err := toml.DecodeFile(v.Path, &v.bundle)
	if err != nil {
		return fmt.Errorf("error parsing %s: %v", v.Path, err)
	}
	v.meta = meta
	return nil
}

// validateLanguage checks that the language key is a BCP 47 tag
func (v *Validator) validateLanguage() {
	if v.bundle.Language == "" {
		v.errorf("language is required")
		return
	}
	if _, err := language.Parse(v.bundle.Language); err != nil {
		v.errorf("invalid language tag %q: %v", v.bundle.Language, err)
	}
	if v.bundle.Name == "" {
		v.warnf("name is not set")
	}
	if v.bundle.Of == "" {
		v.warnf("of is not set, minor arcana names will use \"of\"")
	}
}

func (v *Validator) validateSuits() {
	for _, suit := range card.Suits {
		e, ok := v.bundle.Suits[suit.Key()]
		if !ok {
			v.errorf("missing [suits.%s] section", suit.Key())
			continue
		}
		if e.Name == "" {
			v.errorf("suits.%s.name is required", suit.Key())
		}
		if e.Keywords == "" {
			v.errorf("suits.%s.keywords is required", suit.Key())
		}
	}

	missing := []string{}
	for rank := 1; rank <= catalog.NumberedPerSuit; rank++ {
		if v.bundle.Ranks[card.RankKeyOf(rank)] == "" {
			missing = append(missing, card.RankKeyOf(rank))
		}
	}
	for _, court := range catalog.Courts {
		if v.bundle.Ranks[court] == "" {
			missing = append(missing, court)
		}
	}
	if len(missing) > 0 {
		v.warnf("missing rank names: %s", strings.Join(missing, ", "))
	}
}

// validateMajorArcana checks all 22 major arcana cards (00-21)
func (v *Validator) validateMajorArcana() {
	if v.bundle.MajorArcana == nil {
		v.errorf("missing [major_arcana] section")
		return
	}

	missingCards := []string{}
	for i := 0; i < catalog.MajorCount; i++ {
		key := fmt.Sprintf("%02d", i)
		e, ok := v.bundle.MajorArcana[key]
		if !ok {
			missingCards = append(missingCards, key)
			continue
		}
		v.checkEntry("major_arcana."+key, e, true)
	}

	if len(missingCards) > 0 {
		v.errorf("missing major arcana cards: %s", strings.Join(missingCards, ", "))
	}
}

// validateMinorArcana checks Ace through 10 for each suit
func (v *Validator) validateMinorArcana() {
	if v.bundle.MinorArcana == nil {
		v.errorf("missing [minor_arcana] section")
		return
	}

	for _, suit := range card.Suits {
		entries, ok := v.bundle.MinorArcana[suit.Key()]
		if !ok {
			v.errorf("missing [minor_arcana.%s] section", suit.Key())
			continue
		}

		missingCards := []string{}
		for rank := 1; rank <= catalog.NumberedPerSuit; rank++ {
			key := card.RankKeyOf(rank)
			e, ok := entries[key]
			if !ok {
				missingCards = append(missingCards, key)
				continue
			}
			v.checkEntry(fmt.Sprintf("minor_arcana.%s.%s", suit.Key(), key), e, false)
		}

		if len(missingCards) > 0 {
			v.errorf("missing cards in %s suit: %s", suit.Key(), strings.Join(missingCards, ", "))
		}
	}
}

func (v *Validator) validateCourts() {
	missing := []string{}
	for _, court := range catalog.Courts {
		e, ok := v.bundle.Courts[court]
		if !ok {
			missing = append(missing, court)
			continue
		}
		v.checkEntry("courts."+court, e, false)
	}
	if len(missing) > 0 {
		v.errorf("missing court meanings: %s", strings.Join(missing, ", "))
	}
}

func (v *Validator) checkEntry(key string, e locale.Entry, needName bool) {
	if needName && e.Name == "" {
		v.errorf("%s.name is required", key)
	}
	if e.Upright == "" {
		v.errorf("%s.upright is required", key)
	}
	if e.Reversed == "" {
		v.errorf("%s.reversed is required", key)
	}
}

// validateSpreads checks that every localized layout lines up with the
// built-in spreads
func (v *Validator) validateSpreads() {
	for _, sp := range spread.All() {
		key := string(sp.Kind)
		e, ok := v.bundle.Spreads[key]
		if !ok {
			v.warnf("missing [spreads.%s] section, English will be used", key)
			continue
		}
		if e.Name == "" {
			v.warnf("spreads.%s.name is not set", key)
		}
		if len(e.Positions) != sp.Count() {
			v.errorf("spreads.%s has %d positions, expected %d", key, len(e.Positions), sp.Count())
		}
	}

	for key := range v.bundle.Spreads {
		if _, err := spread.ParseKind(key); err != nil {
			v.warnf("unknown spread: %s", key)
		}
	}
}

func (v *Validator) validateLabels() {
	missing := emptyFields(reflect.ValueOf(v.bundle.Labels))
	if len(missing) > 0 {
		v.warnf("missing labels, English will be used: %s", strings.Join(missing, ", "))
	}
}

func (v *Validator) validateAnswers() {
	missing := emptyFields(reflect.ValueOf(v.bundle.Answers))
	if len(missing) > 0 {
		v.warnf("missing answer words: %s", strings.Join(missing, ", "))
	}
	if f := v.bundle.Answers.Format; f != "" && !strings.Contains(f, "{answer}") {
		v.errorf("answers.format must contain {answer}")
	}
}

func (v *Validator) validateUnknownKeys() {
	for _, key := range v.meta.Undecoded() {
		v.warnf("unknown key: %s", key.String())
	}
}

// emptyFields returns the toml names of the empty string fields of a struct
func emptyFields(rv reflect.Value) []string {
	var missing []string
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		if rv.Field(i).Kind() == reflect.String && rv.Field(i).String() == "" {
			missing = append(missing, rt.Field(i).Tag.Get("toml"))
		}
	}
	return missing
}
