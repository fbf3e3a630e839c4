package models

// Worker is a tailoring staff member. The capitalized rate fields mirror the
// pay-rate columns the workers screen edits: one rate per garment family plus
// a generic fallback Rate.
type Worker struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Number string   `json:"number"`
	Rate   *float64 `json:"Rate"`
	Suit   *float64 `json:"Suit"`
	Jacket *float64 `json:"Jacket"`
	Sadri  *float64 `json:"Sadri"`
	Others *float64 `json:"Others"`
}

// RateFor returns the worker's pay rate for a garment type: the dedicated
// rate when the garment has one, the generic Rate otherwise. A missing rate
// counts as zero.
func (w *Worker) RateFor(garmentType string) float64 {
	var rate *float64
	switch garmentType {
	case GarmentSuit:
		rate = w.Suit
	case GarmentJacket:
		rate = w.Jacket
	case GarmentSadri:
		rate = w.Sadri
	default:
		rate = w.Rate
	}
	if rate == nil {
		return 0
	}
	return *rate
}
