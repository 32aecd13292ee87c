package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/arcanaland/tarotsim/internal/card"
)

// Match resolves a user supplied language tag (en, it, it-IT, en_US) or
// language name (italian, Italiano, inglese) to the closest language in
// available. Unknown or empty tags resolve to English.
func Match(tag string, available []card.Lang) card.Lang {
	tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if tag == "" || len(available) == 0 {
		return card.English
	}

	// English first so it wins ties and is the matcher's fallback
	tags := []language.Tag{language.English}
	langs := []card.Lang{card.English}
	for _, l := range available {
		if l == card.English {
			continue
		}
		t, err := language.Parse(string(l))
		if err != nil {
			continue
		}
		tags = append(tags, t)
		langs = append(langs, l)
	}

	if i := byName(tag, tags); i >= 0 {
		return langs[i]
	}

	want, err := language.Parse(tag)
	if err != nil {
		return card.English
	}

	_, idx, conf := language.NewMatcher(tags).Match(want)
	if conf == language.No {
		return card.English
	}
	return langs[idx]
}

// byName returns the index of the tag whose English name, own name, or name
// in any of the candidate languages equals name, or -1.
func byName(name string, tags []language.Tag) int {
	namers := []display.Namer{display.English.Languages(), display.Self}
	for _, t := range tags {
		namers = append(namers, display.Languages(t))
	}
	for i, t := range tags {
		for _, n := range namers {
			if strings.EqualFold(n.Name(t), name) {
				return i
			}
		}
	}
	return -1
}
