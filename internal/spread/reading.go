package spread

import (
	"time"

	"github.com/google/uuid"

	"github.com/arcanaland/tarotsim/internal/card"
)

// Placement is one card bound to a spread position
type Placement struct {
	Position string
	Card     card.Drawn
}

// Reading is the immutable result of one spread. Accessors return deep
// copies, so callers cannot reach the catalog templates through them.
type Reading struct {
	id         uuid.UUID
	spread     Spread
	question   string
	defaulted  bool
	placements []Placement
	verdict    *Verdict
	drawnAt    time.Time
}

// Assemble binds positions to cards in declared order and resolves the
// question, falling back to the spread default when it is empty.
func Assemble(sp Spread, question string, cards []card.Drawn) (Reading, error) {
	if len(cards) != sp.Count() {
		return Reading{}, &InvalidSpreadConfigError{
			Spread:    sp.Name,
			Positions: sp.Count(),
			Cards:     len(cards),
		}
	}

	placements := make([]Placement, len(cards))
	for i, c := range cards {
		placements[i] = Placement{Position: sp.Positions[i], Card: c}
	}

	defaulted := question == ""
	if defaulted {
		question = sp.DefaultQuestion
	}

	r := Reading{
		id:         uuid.New(),
		spread:     sp.clone(),
		question:   question,
		defaulted:  defaulted,
		placements: placements,
		drawnAt:    time.Now(),
	}
	if sp.Kind == YesNo {
		v := Judge(cards)
		r.verdict = &v
	}
	return r, nil
}

// ID uniquely identifies the reading
func (r Reading) ID() uuid.UUID { return r.id }

// Kind returns the spread selector
func (r Reading) Kind() Kind { return r.spread.Kind }

// Name returns the spread display name
func (r Reading) Name() string { return r.spread.Name }

// Question returns the question asked or the spread default
func (r Reading) Question() string { return r.question }

// DefaultQuestion reports whether no question was supplied
func (r Reading) DefaultQuestion() bool { return r.defaulted }

// DrawnAt returns when the cards were assembled
func (r Reading) DrawnAt() time.Time { return r.drawnAt }

// Len returns the number of placed cards
func (r Reading) Len() int { return len(r.placements) }

// Placements returns the position/card pairs in declared order
func (r Reading) Placements() []Placement {
	out := make([]Placement, len(r.placements))
	for i, p := range r.placements {
		out[i] = Placement{Position: p.Position, Card: p.Card.Clone()}
	}
	return out
}

// Cards returns the drawn cards in declared order
func (r Reading) Cards() []card.Drawn {
	cards := make([]card.Drawn, len(r.placements))
	for i, p := range r.placements {
		cards[i] = p.Card.Clone()
	}
	return cards
}

// Card returns the card at a position label
func (r Reading) Card(position string) (card.Drawn, bool) {
	for _, p := range r.placements {
		if p.Position == position {
			return p.Card.Clone(), true
		}
	}
	return card.Drawn{}, false
}

// Verdict returns the yes/no verdict; ok is false for other spreads
func (r Reading) Verdict() (v Verdict, ok bool) {
	if r.verdict == nil {
		return Verdict{}, false
	}
	return *r.verdict, true
}

// Answer returns the verdict string, e.g. "Yes (Strong indication)"
func (r Reading) Answer() (string, bool) {
	v, ok := r.Verdict()
	if !ok {
		return "", false
	}
	return v.String(), true
}
