package models

import "testing"

func TestBookingDetailsVariant(t *testing.T) {
	if v := (BookingDetails{}).Variant(); v != "" {
		t.Fatalf("empty details should have no variant, got %q", v)
	}
	if v := (BookingDetails{Hotel: &HotelDetails{Rooms: 1}}).Variant(); v != BookHotel {
		t.Fatalf("expected %q, got %q", BookHotel, v)
	}
	if v := (BookingDetails{Package: &PackageDetails{}}).Variant(); v != BookPackage {
		t.Fatalf("expected %q, got %q", BookPackage, v)
	}
}

func TestBookingDetailsMatchesType(t *testing.T) {
	flight := BookingDetails{Flight: &FlightDetails{From: "LHR", To: "JFK"}}

	if !flight.MatchesType(BookFlight) {
		t.Fatal("flight details should match the flight type")
	}
	if flight.MatchesType(BookHotel) {
		t.Fatal("flight details must not match the hotel type")
	}

	// an empty bag is acceptable for any type
	if !(BookingDetails{}).MatchesType(BookTransportation) {
		t.Fatal("empty details should match any type")
	}

	// two populated variants is malformed regardless of the type
	both := BookingDetails{
		Flight: &FlightDetails{},
		Hotel:  &HotelDetails{},
	}
	if both.MatchesType(BookFlight) {
		t.Fatal("multi-variant details must never match")
	}
}
