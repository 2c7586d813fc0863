package detect

import (
	"fmt"
	"math"
)

// Candidate is a scored signature-placement proposal in page coordinates
// (points, origin at the bottom-left corner of the page).
type Candidate struct {
	// Page is the zero-based page index.
	Page int `json:"page"`

	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Score is the placement confidence in [0,1]; higher ranks first.
	Score float64 `json:"score"`

	// Reason records which detector produced the candidate and what it
	// matched, for diagnostics. It carries no weight in ranking.
	Reason string `json:"reason"`
}

// Validate checks the candidate's numeric invariants.
func (c Candidate) Validate() error {
	if c.Page < 0 {
		return fmt.Errorf("page %d is negative", c.Page)
	}
	for name, v := range map[string]float64{"x": c.X, "y": c.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s is not finite", name)
		}
	}
	if !(c.Width > 0) || !(c.Height > 0) {
		return fmt.Errorf("size %gx%g is not positive", c.Width, c.Height)
	}
	if c.Score < 0 || c.Score > 1 || math.IsNaN(c.Score) {
		return fmt.Errorf("score %g outside [0,1]", c.Score)
	}
	return nil
}

// SignatureBox is a placement region derived purely from text layout, in
// top-left-origin layout units (Top < Bottom). It carries no recognition
// confidence.
type SignatureBox struct {
	// Page is the zero-based page index.
	Page int `json:"page"`

	X0     float64 `json:"x0"`
	X1     float64 `json:"x1"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// ToCandidate converts the box into bottom-origin page coordinates by
// inverting the vertical axis against the page height.
func (b SignatureBox) ToCandidate(pageHeight, score float64, reason string) Candidate {
	return Candidate{
		Page:   b.Page,
		X:      b.X0,
		Y:      pageHeight - b.Bottom,
		Width:  b.X1 - b.X0,
		Height: b.Bottom - b.Top,
		Score:  score,
		Reason: reason,
	}
}
