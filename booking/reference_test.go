package booking

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestReferenceCandidateFormat(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	ref := newReferenceCandidate(now)

	if !strings.HasPrefix(ref, "BK") {
		t.Fatalf("expected BK prefix, got %q", ref)
	}

	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if !strings.HasPrefix(ref[2:], millis) {
		t.Fatalf("expected timestamp %s after prefix, got %q", millis, ref)
	}

	suffix := ref[2+len(millis):]
	if len(suffix) != 5 {
		t.Fatalf("expected 5-char suffix, got %q", suffix)
	}
	for _, r := range suffix {
		if !(r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			t.Fatalf("suffix %q contains %q outside [A-Z0-9]", suffix, r)
		}
	}
}

func TestReferenceCandidatesDiffer(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[newReferenceCandidate(now)] = true
	}
	if len(seen) < 2 {
		t.Fatal("expected random suffixes to vary across candidates")
	}
}

func TestValidateCreateBooking(t *testing.T) {
	valid := CreateInput{
		BookingType:   "flight",
		Provider:      providerNamed("Aerolane"),
		Details:       flightDetails(),
		Pricing:       PricingInput{BasePrice: 500, Taxes: 40, Fees: 10},
		PaymentMethod: "credit_card",
	}
	if err := ValidateCreate(valid); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}

	missingType := valid
	missingType.BookingType = ""
	if err := ValidateCreate(missingType); err == nil {
		t.Fatal("expected error for missing booking type")
	}

	missingProvider := valid
	missingProvider.Provider.Name = "  "
	if err := ValidateCreate(missingProvider); err == nil {
		t.Fatal("expected error for blank provider name")
	}

	zeroPrice := valid
	zeroPrice.Pricing.BasePrice = 0
	if err := ValidateCreate(zeroPrice); err == nil {
		t.Fatal("expected error for zero base price")
	}

	badMethod := valid
	badMethod.PaymentMethod = "cowrie_shells"
	if err := ValidateCreate(badMethod); err == nil {
		t.Fatal("expected error for unknown payment method")
	}

	mismatched := valid
	mismatched.BookingType = "hotel"
	if err := ValidateCreate(mismatched); err == nil {
		t.Fatal("expected error for details not matching booking type")
	}
}
