package booking

import (
	"testing"

	"roamio/models"
)

func TestComputeTotalPrice(t *testing.T) {
	p := models.Pricing{BasePrice: 800, Taxes: 100, Fees: 50}
	if got := ComputeTotalPrice(p); got != 950 {
		t.Fatalf("expected 950, got %v", got)
	}
}

func TestComputeTotalPriceIgnoresStoredTotal(t *testing.T) {
	// a stale total on the input must not leak into the result
	p := models.Pricing{BasePrice: 100, Taxes: 10, Fees: 5, TotalPrice: 9999}
	if got := ComputeTotalPrice(p); got != 115 {
		t.Fatalf("expected 115, got %v", got)
	}
}

func TestComputeTotalPriceBaseOnly(t *testing.T) {
	p := models.Pricing{BasePrice: 250}
	if got := ComputeTotalPrice(p); got != 250 {
		t.Fatalf("expected 250, got %v", got)
	}
}
