package booking

import "roamio/models"

// ComputeTotalPrice derives the authoritative total from the stored pricing
// components. Absent taxes and fees count as zero. Called at every pricing
// write; a client-supplied total is never trusted.
func ComputeTotalPrice(p models.Pricing) float64 {
	return p.BasePrice + p.Taxes + p.Fees
}
