// Package spread binds freshly drawn cards to the positions of a spread
// layout and produces immutable readings.
package spread

import (
	"fmt"
	"strings"
)

// Kind selects a spread layout
type Kind string

const (
	Single       Kind = "single"
	ThreeCard    Kind = "three"
	CelticCross  Kind = "celtic"
	Relationship Kind = "relationship"
	YesNo        Kind = "yesno"
)

// Spread is a declarative layout: the cards drawn equal the positions
type Spread struct {
	Kind            Kind
	Name            string
	DefaultQuestion string
	Positions       []string
}

// Count returns the number of cards the spread draws
func (s Spread) Count() int {
	return len(s.Positions)
}

var spreads = []Spread{
	{
		Kind:            Single,
		Name:            "Single Card Draw",
		DefaultQuestion: "Daily guidance",
		Positions:       []string{"Your Card"},
	},
	{
		Kind:            ThreeCard,
		Name:            "Three Card Spread - Past, Present, Future",
		DefaultQuestion: "General guidance",
		Positions:       []string{"Past", "Present", "Future"},
	},
	{
		Kind:            CelticCross,
		Name:            "Celtic Cross Spread",
		DefaultQuestion: "Comprehensive life guidance",
		Positions: []string{
			"Present Situation",
			"Challenge/Cross",
			"Distant Past/Foundation",
			"Recent Past",
			"Possible Outcome",
			"Near Future",
			"Your Approach",
			"External Influences",
			"Hopes and Fears",
			"Final Outcome",
		},
	},
	{
		Kind:            Relationship,
		Name:            "Relationship Spread",
		DefaultQuestion: "Relationship guidance",
		Positions:       []string{"You", "Your Partner", "The Relationship", "Challenges", "Potential/Outcome"},
	},
	{
		Kind:            YesNo,
		Name:            "Yes/No Spread",
		DefaultQuestion: "Yes or No question",
		Positions:       []string{"Card 1", "Card 2", "Card 3"},
	},
}

// All returns the built-in spreads in menu order
func All() []Spread {
	out := make([]Spread, len(spreads))
	for i, s := range spreads {
		out[i] = s.clone()
	}
	return out
}

// Kinds returns the selector values of the built-in spreads in menu order
func Kinds() []Kind {
	kinds := make([]Kind, len(spreads))
	for i, s := range spreads {
		kinds[i] = s.Kind
	}
	return kinds
}

// Lookup returns the built-in spread for kind
func Lookup(kind Kind) (Spread, error) {
	for _, s := range spreads {
		if s.Kind == kind {
			return s.clone(), nil
		}
	}
	return Spread{}, fmt.Errorf("%w: %q", ErrUnknownSpread, string(kind))
}

// ParseKind parses a spread selector (single, three, celtic, relationship, yesno)
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, err := Lookup(k); err != nil {
		return "", err
	}
	return k, nil
}

func (s Spread) clone() Spread {
	s.Positions = append([]string(nil), s.Positions...)
	return s
}
