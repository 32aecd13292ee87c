package spread

import "github.com/arcanaland/tarotsim/internal/card"

// Verdict is the derived answer of a Yes/No spread
type Verdict struct {
	Yes    bool
	Strong bool
}

// Judge counts upright cards: two or more upright means yes, and a
// unanimous draw (all upright or all reversed) is a strong indication.
func Judge(cards []card.Drawn) Verdict {
	upright := 0
	for _, c := range cards {
		if !c.Reversed {
			upright++
		}
	}
	return Verdict{
		Yes:    upright >= 2,
		Strong: upright == len(cards) || upright == 0,
	}
}

func (v Verdict) String() string {
	answer := "No"
	if v.Yes {
		answer = "Yes"
	}
	confidence := "Moderate"
	if v.Strong {
		confidence = "Strong"
	}
	return answer + " (" + confidence + " indication)"
}
