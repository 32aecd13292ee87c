package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/arcanaland/tarotsim/internal/card"
)

// ReversalProbability is the chance that a drawn card comes out reversed
const ReversalProbability = 0.3

// ErrEmptyDeck is returned when a draw is requested from an exhausted pool
var ErrEmptyDeck = errors.New("no cards left in deck")

// Source is the randomness used for shuffling and orientation.
// *rand.Rand satisfies it.
type Source interface {
	// IntN returns a non-negative random int in [0, n)
	IntN(n int) int
	// Float64 returns a random float in [0.0, 1.0)
	Float64() float64
}

// NewSource returns a deterministic Source for the given seed
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandomSource returns a Source seeded from the clock
func NewRandomSource() *rand.Rand {
	return NewSource(uint64(time.Now().UnixNano()))
}

// Deck is the draw pool for a single reading. A Deck is not safe for
// concurrent use.
type Deck struct {
	catalog []card.Card
	pool    []card.Card
	src     Source
}

// New creates a deck holding its own copy of the catalog. The pool starts
// empty; call Reset before drawing.
func New(catalog []card.Card, src Source) *Deck {
	if src == nil {
		src = NewRandomSource()
	}
	cards := make([]card.Card, len(catalog))
	copy(cards, catalog)
	return &Deck{catalog: cards, src: src}
}

// Reset refills the pool with every catalog card and shuffles it
func (d *Deck) Reset() {
	d.pool = make([]card.Card, len(d.catalog))
	copy(d.pool, d.catalog)

	// Fisher-Yates
	for i := len(d.pool) - 1; i > 0; i-- {
		j := d.src.IntN(i + 1)
		d.pool[i], d.pool[j] = d.pool[j], d.pool[i]
	}
}

// Draw removes the last card of the pool. When allowReversed is set the
// card is reversed with probability ReversalProbability, independently of
// every other draw.
func (d *Deck) Draw(allowReversed bool) (card.Drawn, error) {
	if len(d.pool) == 0 {
		return card.Drawn{}, ErrEmptyDeck
	}

	last := len(d.pool) - 1
	c := d.pool[last]
	d.pool = d.pool[:last]

	drawn := card.Drawn{Card: c}
	if allowReversed && d.src.Float64() < ReversalProbability {
		drawn.Reversed = true
	}
	return drawn, nil
}

// DrawMany draws count cards in order. If the pool runs out the whole
// draw fails and the cards drawn so far are discarded.
func (d *Deck) DrawMany(count int, allowReversed bool) ([]card.Drawn, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid draw count: %d", count)
	}
	if count > len(d.pool) {
		d.pool = d.pool[:0]
		return nil, ErrEmptyDeck
	}
	cards := make([]card.Drawn, 0, count)
	for i := 0; i < count; i++ {
		c, err := d.Draw(allowReversed)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Remaining returns the number of cards left in the pool
func (d *Deck) Remaining() int {
	return len(d.pool)
}

// Size returns the number of cards in the full deck
func (d *Deck) Size() int {
	return len(d.catalog)
}
