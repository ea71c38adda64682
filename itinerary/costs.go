package itinerary

import "roamio/models"

// ComputeTotalCost sums every cost embedded in the day sequence: the
// accommodation (when present), each transportation leg, and each activity's
// estimate. Absent costs count as zero, so the result is deterministic for a
// given day sequence and zero for an empty one. Every mutation that touches
// days calls this instead of adjusting the stored total incrementally.
func ComputeTotalCost(days []models.Day) float64 {
	var total float64
	for _, day := range days {
		if day.Accommodation != nil {
			total += day.Accommodation.Cost
		}
		for _, leg := range day.Transportation {
			total += leg.Cost
		}
		for _, act := range day.Activities {
			total += act.EstimatedCost
		}
	}
	return total
}
