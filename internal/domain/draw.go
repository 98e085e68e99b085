package domain

// DrawResult is the outcome of resolving a chance. Award is nil when the
// draw produced no winner.
type DrawResult struct {
	Chance *Chance `json:"chance"`
	Award  *Award  `json:"award,omitempty"`
}

// IsWinner reports whether the draw dispatched a prize
func (r *DrawResult) IsWinner() bool {
	return r.Award != nil
}
