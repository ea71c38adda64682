package booking

import (
	"testing"

	"roamio/models"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{models.BookingPending, models.BookingConfirmed, true},
		{models.BookingPending, models.BookingCancelled, true},
		{models.BookingPending, models.BookingCompleted, false},
		{models.BookingConfirmed, models.BookingCompleted, true},
		{models.BookingConfirmed, models.BookingCancelled, true},
		{models.BookingConfirmed, models.BookingPending, false},
		{models.BookingCompleted, models.BookingCancelled, false},
		{models.BookingCancelled, models.BookingPending, false},
		{models.BookingCancelled, models.BookingConfirmed, false},
		// same-value writes stay idempotent
		{models.BookingPending, models.BookingPending, true},
		{models.BookingCompleted, models.BookingCompleted, true},
		// unknown values never pass
		{"bogus", models.BookingConfirmed, false},
		{models.BookingPending, "bogus", false},
	}

	for _, c := range cases {
		if got := ValidStatusTransition(c.from, c.to); got != c.want {
			t.Errorf("ValidStatusTransition(%q, %q) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestPaymentTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{models.PaymentPending, models.PaymentPaid, true},
		{models.PaymentPending, models.PaymentRefunded, false},
		{models.PaymentPaid, models.PaymentRefunded, true},
		{models.PaymentPaid, models.PaymentPending, false},
		{models.PaymentRefunded, models.PaymentPaid, false},
		{models.PaymentPaid, models.PaymentPaid, true},
	}

	for _, c := range cases {
		if got := ValidPaymentTransition(c.from, c.to); got != c.want {
			t.Errorf("ValidPaymentTransition(%q, %q) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}
