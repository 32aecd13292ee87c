package oracle

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/arcanaland/tarotsim/internal/card"
	"github.com/arcanaland/tarotsim/internal/locale"
	"github.com/arcanaland/tarotsim/internal/spread"
)

// BuildPrompt renders the reading as the natural-language request for an
// extensive interpretation. Labels, card names and meanings come from b;
// a nil bundle means English.
func BuildPrompt(r spread.Reading, b *locale.Bundle) string {
	if b == nil {
		b = locale.MustEmbedded(card.English)
	}
	lang := b.Lang()
	kind := string(r.Kind())

	question := r.Question()
	if r.DefaultQuestion() {
		question = b.SpreadQuestion(kind, question)
	}

	var lines strings.Builder
	for i, p := range r.Placements() {
		fmt.Fprintf(&lines, "- %s: %s - %s\n",
			b.Position(kind, i, p.Position),
			b.CardLabel(p.Card),
			p.Card.Meaning(lang),
		)
	}

	var sb strings.Builder
	sb.WriteString("You are an experienced and insightful tarot reader. ")
	sb.WriteString("Please provide a comprehensive, detailed tarot reading based on the following information:\n\n")
	fmt.Fprintf(&sb, "Spread: %s\n", b.SpreadName(kind, r.Name()))
	fmt.Fprintf(&sb, "Question: %s\n", question)
	if v, ok := r.Verdict(); ok {
		fmt.Fprintf(&sb, "Answer: %s\n", b.Verdict(v.Yes, v.Strong))
	}
	fmt.Fprintf(&sb, "\nCards drawn:\n%s\n", lines.String())
	sb.WriteString(`Please provide:
1. An overview of the reading's main themes
2. Detailed interpretation of each card in its position
3. How the cards relate to each other and tell a story
4. Practical advice and guidance based on the reading
5. What the querent should focus on or be aware of

Write this as a professional, empathetic, and insightful tarot reading that would be given by an experienced reader. `)
	sb.WriteString("Use a warm, supportive tone while being honest about any challenges indicated. ")
	sb.WriteString("The reading should be approximately 400-600 words.")

	if lang != card.English {
		fmt.Fprintf(&sb, "\n\nRespond entirely in %s.", languageName(lang))
	}
	return sb.String()
}

// languageName returns the English name of a language tag (it -> Italian)
func languageName(lang card.Lang) string {
	tag, err := language.Parse(string(lang))
	if err != nil {
		return string(lang)
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return string(lang)
}
