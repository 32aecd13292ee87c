package render

import (
	"fmt"

	"github.com/arcanaland/tarotsim/internal/card"
	"github.com/arcanaland/tarotsim/internal/spread"
)

func getSuitSymbol(suit card.Suit) string {
	switch suit {
	case card.Wands:
		return ""
	case card.Cups:
		return ""
	case card.Swords:
		return "󰞇"
	case card.Pentacles:
		return "󱙧"
	default:
		return "•"
	}
}

// getArcanaSymbol returns a symbol for the arcana type
func getArcanaSymbol(isMinor bool) string {
	if isMinor {
		return "󱀝"
	}
	return ""
}

func (p *Printer) field(name, format string, args ...any) {
	fmt.Fprintf(p.w, "  %s %s\n", label.Sprintf("%-9s", name+":"), value.Sprintf(format, args...))
}

// CardInfo prints the identity and both meanings of a card
func (p *Printer) CardInfo(c card.Card) {
	lang := p.b.Lang()
	m := c.Localized(lang)

	fmt.Fprintln(p.w)
	p.field("Card", "%s", c.Title(lang))
	p.field("ID", "%s", c.ID())

	if c.Major {
		p.field("Type", "Major Arcana · %s", getArcanaSymbol(false))
		p.field("Number", "%d", c.Number)
	} else {
		suit := p.b.Suits[c.Suit.Key()]
		p.field("Type", "Minor Arcana · %s", getArcanaSymbol(true))
		p.field("Suit", "%s · %s", or(suit.Name, c.Suit.String()), getSuitSymbol(c.Suit))
		p.field("Rank", "%s", or(p.b.Ranks[c.RankKey()], c.Name))
		p.field("Element", "%s", or(suit.Element, c.Suit.Element()))
	}

	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "  %s\n", label.Sprint("Upright:"))
	p.wrapped("  ", "  ", m.Upright)
	fmt.Fprintf(p.w, "  %s\n", label.Sprintf("%s:", or(p.b.Labels.Reversed, "Reversed")))
	p.wrapped("  ", "  ", m.Reversed)
	fmt.Fprintln(p.w)
}

// Cards prints one line per card: canonical ID and localized title
func (p *Printer) Cards(cards []card.Card) {
	lang := p.b.Lang()
	for _, c := range cards {
		fmt.Fprintf(p.w, "%s %s\n", label.Sprintf("%-28s", c.ID()), value.Sprint(c.Title(lang)))
	}
}

// Spreads prints the numbered spread menu
func (p *Printer) Spreads(spreads []spread.Spread) {
	fmt.Fprintf(p.w, "\n%s\n", or(p.b.Labels.AvailableSpreads, "Available spreads:"))
	for i, sp := range spreads {
		menu := sp.Name
		if e, ok := p.b.Spread(string(sp.Kind)); ok && e.Menu != "" {
			menu = e.Menu
		}
		fmt.Fprintf(p.w, "%d. %s\n", i+1, menu)
	}
}

// SpreadTable prints each spread with its selector and positions
func (p *Printer) SpreadTable(spreads []spread.Spread) {
	for _, sp := range spreads {
		kind := string(sp.Kind)
		fmt.Fprintf(p.w, "%s %s (%d)\n",
			label.Sprintf("%-13s", kind),
			value.Sprint(p.b.SpreadName(kind, sp.Name)),
			sp.Count(),
		)
		for i, pos := range sp.Positions {
			fmt.Fprintf(p.w, "%s%2d. %s\n", "              ", i+1, p.b.Position(kind, i, pos))
		}
	}
}
