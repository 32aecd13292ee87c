// Package render prints readings and cards to a terminal.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/tarotsim/internal/card"
	"github.com/arcanaland/tarotsim/internal/locale"
	"github.com/arcanaland/tarotsim/internal/oracle"
	"github.com/arcanaland/tarotsim/internal/spread"
)

const (
	ruleWidth    = 60
	subruleWidth = 40
	indent       = "   "
)

var (
	label = color.New(color.FgCyan)
	value = color.New(color.FgHiWhite)
	fail  = color.New(color.FgRed)
)

// Printer writes localized output for one bundle
type Printer struct {
	w     io.Writer
	b     *locale.Bundle
	width int
}

// New creates a Printer. A width below 20 is replaced by the terminal
// width.
func New(w io.Writer, b *locale.Bundle, width int) *Printer {
	if b == nil {
		b = locale.MustEmbedded(card.English)
	}
	if width < 20 {
		width = TerminalWidth()
	}
	return &Printer{w: w, b: b, width: width}
}

// TerminalWidth returns the width of stdout, or 80 when it is not a
// terminal
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// Bundle returns the language pack used by the printer
func (p *Printer) Bundle() *locale.Bundle {
	return p.b
}

func (p *Printer) rule(ch string, n int) {
	fmt.Fprintln(p.w, strings.Repeat(ch, n))
}

// Reading prints the header, the question, the yes/no answer when there
// is one and every placement in position order
func (p *Printer) Reading(r spread.Reading) {
	kind := string(r.Kind())
	l := p.b.Labels

	question := r.Question()
	if r.DefaultQuestion() {
		question = p.b.SpreadQuestion(kind, question)
	}

	p.rule("=", ruleWidth)
	fmt.Fprintf(p.w, "🔮 %s\n", p.b.SpreadName(kind, r.Name()))
	p.rule("=", ruleWidth)
	fmt.Fprintf(p.w, "%s %s\n", label.Sprintf("%s:", or(l.Question, "Question")), value.Sprint(question))

	if v, ok := r.Verdict(); ok {
		fmt.Fprintf(p.w, "\n%s %s\n", label.Sprintf("%s:", or(l.Answer, "Answer")), value.Sprint(p.b.Verdict(v.Yes, v.Strong)))
	}

	fmt.Fprintf(p.w, "\n%s\n", label.Sprintf("%s:", or(l.CardsDrawn, "Cards drawn")))
	p.rule("-", subruleWidth)

	for i, pl := range r.Placements() {
		fmt.Fprintf(p.w, "\n📍 %s\n", label.Sprintf("%s:", p.b.Position(kind, i, pl.Position)))
		fmt.Fprintf(p.w, "%s🃏 %s\n", indent, value.Sprint(p.b.CardLabel(pl.Card)))
		p.wrapped(indent+"💭 ", indent+"   ", pl.Card.Meaning(p.b.Lang()))
	}

	fmt.Fprintln(p.w)
	p.rule("=", ruleWidth)
}

// Generating announces the call to the text generation service
func (p *Printer) Generating() {
	fmt.Fprintf(p.w, "\n🤖 %s\n", or(p.b.Labels.Generating, "Generating extensive reading with AI..."))
}

// Extensive prints the generated interpretation, or the apology line when
// generation failed
func (p *Printer) Extensive(text string, err error) {
	l := p.b.Labels
	if err != nil {
		if errors.Is(err, oracle.ErrNoAPIKey) {
			fmt.Fprintf(p.w, "\n%s\n", fail.Sprintf("❌ %s", or(l.NoAPIKey, "Extensive reading unavailable: No Gemini API key configured.")))
			return
		}
		fmt.Fprintf(p.w, "\n%s\n", fail.Sprintf("❌ %s: %v", or(l.GenerationFailed, "Error generating extensive reading"), err))
		return
	}

	fmt.Fprintln(p.w)
	p.rule("=", ruleWidth)
	fmt.Fprintf(p.w, "📖 %s\n", label.Sprint(or(l.ExtensiveTitle, "EXTENSIVE READING")))
	p.rule("=", ruleWidth)
	fmt.Fprintln(p.w, text)
	fmt.Fprintln(p.w)
	p.rule("=", ruleWidth)
}

// wrapped prints text wrapped to the printer width, first and rest being
// the prefixes of the first and following lines
func (p *Printer) wrapped(first, rest, text string) {
	for i, line := range wrapText(text, p.width-len(rest)) {
		prefix := rest
		if i == 0 {
			prefix = first
		}
		fmt.Fprintf(p.w, "%s%s\n", prefix, line)
	}
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len([]rune(currentLine))+1+len([]rune(word)) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
