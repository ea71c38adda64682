package booking

import "roamio/models"

// Allowed status transitions. Same-value writes are permitted everywhere so
// a repeated status update stays idempotent; completed and cancelled are
// terminal.
var statusTransitions = map[string][]string{
	models.BookingPending:   {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCompleted, models.BookingCancelled},
	models.BookingCompleted: {},
	models.BookingCancelled: {},
}

var paymentTransitions = map[string][]string{
	models.PaymentPending:  {models.PaymentPaid},
	models.PaymentPaid:     {models.PaymentRefunded},
	models.PaymentRefunded: {},
}

func allowed(table map[string][]string, from, to string) bool {
	if from == to {
		return true
	}
	next, ok := table[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

// ValidStatusTransition reports whether a booking may move between the two
// statuses.
func ValidStatusTransition(from, to string) bool {
	return allowed(statusTransitions, from, to)
}

// ValidPaymentTransition reports whether the payment status may move between
// the two values.
func ValidPaymentTransition(from, to string) bool {
	return allowed(paymentTransitions, from, to)
}
