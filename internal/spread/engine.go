package spread

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/arcanaland/tarotsim/internal/deck"
)

// Engine performs readings against a deck. Every reading resets the deck,
// so no state carries over between calls. The reset and the draw run under
// a lock, which keeps an Engine safe to share between goroutines.
type Engine struct {
	mu            sync.Mutex
	deck          *deck.Deck
	allowReversed bool
	logger        *slog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithReversals toggles reversed cards (enabled by default)
func WithReversals(allow bool) Option {
	return func(e *Engine) { e.allowReversed = allow }
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine creates an engine drawing from d
func NewEngine(d *deck.Deck, opts ...Option) *Engine {
	e := &Engine{
		deck:          d,
		allowReversed: true,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Read performs the spread selected by kind
func (e *Engine) Read(kind Kind, question string) (Reading, error) {
	sp, err := Lookup(kind)
	if err != nil {
		return Reading{}, err
	}
	return e.ReadSpread(sp, question)
}

// ReadSpread performs an arbitrary spread layout: reset, draw one card per
// position, then bind positions to cards in order.
func (e *Engine) ReadSpread(sp Spread, question string) (Reading, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if sp.Count() > e.deck.Size() {
		return Reading{}, &InvalidSpreadConfigError{
			Spread:    sp.Name,
			Positions: sp.Count(),
			Cards:     sp.Count(),
			DeckSize:  e.deck.Size(),
		}
	}

	e.deck.Reset()
	cards, err := e.deck.DrawMany(sp.Count(), e.allowReversed)
	if err != nil {
		return Reading{}, fmt.Errorf("error drawing %s: %w", sp.Name, err)
	}

	r, err := Assemble(sp, question, cards)
	if err != nil {
		return Reading{}, err
	}

	e.logger.Debug("reading assembled",
		"id", r.ID(),
		"spread", string(sp.Kind),
		"cards", r.Len(),
	)
	return r, nil
}

// SingleCardDraw draws one card for daily guidance
func (e *Engine) SingleCardDraw(question string) (Reading, error) {
	return e.Read(Single, question)
}

// ThreeCardSpread draws Past, Present and Future
func (e *Engine) ThreeCardSpread(question string) (Reading, error) {
	return e.Read(ThreeCard, question)
}

// CelticCrossSpread draws the traditional ten-card cross
func (e *Engine) CelticCrossSpread(question string) (Reading, error) {
	return e.Read(CelticCross, question)
}

// RelationshipSpread draws the five-card relationship layout
func (e *Engine) RelationshipSpread(question string) (Reading, error) {
	return e.Read(Relationship, question)
}

// YesNoSpread draws three cards and derives a yes/no verdict
func (e *Engine) YesNoSpread(question string) (Reading, error) {
	return e.Read(YesNo, question)
}
