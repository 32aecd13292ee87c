package spread

import (
	"errors"
	"fmt"
)

// ErrUnknownSpread is returned for a selector that names no spread
var ErrUnknownSpread = errors.New("unknown spread")

// InvalidSpreadConfigError reports a spread whose declared positions do not
// fit the cards requested or the deck size. It indicates a defect in the
// spread definitions, not a runtime condition.
type InvalidSpreadConfigError struct {
	Spread    string
	Positions int
	Cards     int
	DeckSize  int
}

func (e *InvalidSpreadConfigError) Error() string {
	if e.DeckSize > 0 && e.Positions > e.DeckSize {
		return fmt.Sprintf("invalid spread %q: %d positions exceed deck size %d", e.Spread, e.Positions, e.DeckSize)
	}
	return fmt.Sprintf("invalid spread %q: %d positions but %d cards", e.Spread, e.Positions, e.Cards)
}
