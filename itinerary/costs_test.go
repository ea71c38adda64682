package itinerary

import (
	"testing"

	"roamio/models"
)

func TestComputeTotalCostEmpty(t *testing.T) {
	if got := ComputeTotalCost(nil); got != 0 {
		t.Fatalf("expected 0 for no days, got %v", got)
	}
	if got := ComputeTotalCost([]models.Day{}); got != 0 {
		t.Fatalf("expected 0 for empty days, got %v", got)
	}
}

func TestComputeTotalCostSumsAllComponents(t *testing.T) {
	days := []models.Day{
		{
			DayNumber: 1,
			Activities: []models.Activity{
				{Activity: "Museum", EstimatedCost: 25},
				{Activity: "Food tour", EstimatedCost: 60},
			},
			Accommodation: &models.Accommodation{Name: "Hotel Sakura", Cost: 140},
			Transportation: []models.TransportLeg{
				{Mode: "train", Cost: 12.50},
			},
		},
		{
			DayNumber: 2,
			Activities: []models.Activity{
				{Activity: "Hike", EstimatedCost: 0},
			},
			Transportation: []models.TransportLeg{
				{Mode: "bus", Cost: 4},
				{Mode: "taxi", Cost: 18},
			},
		},
	}

	want := 25 + 60 + 140 + 12.50 + 0 + 4 + 18.0
	if got := ComputeTotalCost(days); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestComputeTotalCostSkipsNilAccommodation(t *testing.T) {
	days := []models.Day{
		{DayNumber: 1, Activities: []models.Activity{{EstimatedCost: 30}}},
	}
	if got := ComputeTotalCost(days); got != 30 {
		t.Fatalf("expected 30, got %v", got)
	}
}
