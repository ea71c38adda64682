package models

import "time"

// Booking types
const (
	BookFlight         = "flight"
	BookHotel          = "hotel"
	BookActivity       = "activity"
	BookTransportation = "transportation"
	BookPackage        = "package"
)

// Booking statuses
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Payment statuses
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

var BookingTypes = []string{BookFlight, BookHotel, BookActivity, BookTransportation, BookPackage}

var PaymentMethods = []string{"credit_card", "debit_card", "paypal", "bank_transfer"}

type Provider struct {
	Name    string          `json:"name" bson:"name"`
	Contact ProviderContact `json:"contact" bson:"contact"`
}

type ProviderContact struct {
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	Website string `json:"website,omitempty" bson:"website,omitempty"`
}

type Passenger struct {
	FirstName      string `json:"first_name" bson:"first_name"`
	LastName       string `json:"last_name" bson:"last_name"`
	PassportNumber string `json:"passport_number,omitempty" bson:"passport_number,omitempty"`
	DateOfBirth    string `json:"date_of_birth,omitempty" bson:"date_of_birth,omitempty"`
}

type FlightDetails struct {
	From          string      `json:"from" bson:"from"`
	To            string      `json:"to" bson:"to"`
	DepartureDate string      `json:"departure_date" bson:"departure_date"`
	ReturnDate    string      `json:"return_date,omitempty" bson:"return_date,omitempty"`
	DepartureTime string      `json:"departure_time,omitempty" bson:"departure_time,omitempty"`
	ArrivalTime   string      `json:"arrival_time,omitempty" bson:"arrival_time,omitempty"`
	Duration      string      `json:"duration,omitempty" bson:"duration,omitempty"`
	Passengers    []Passenger `json:"passengers,omitempty" bson:"passengers,omitempty"`
}

type HotelDetails struct {
	RoomType string `json:"room_type,omitempty" bson:"room_type,omitempty"`
	Rooms    int    `json:"rooms" bson:"rooms"`
	Guests   int    `json:"guests" bson:"guests"`
	CheckIn  string `json:"check_in" bson:"check_in"`
	CheckOut string `json:"check_out" bson:"check_out"`
}

type ActivityDetails struct {
	Name     string `json:"name" bson:"name"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`
	Duration string `json:"duration,omitempty" bson:"duration,omitempty"`
	Date     string `json:"date,omitempty" bson:"date,omitempty"`
}

type TransportDetails struct {
	From          string `json:"from" bson:"from"`
	To            string `json:"to" bson:"to"`
	DepartureDate string `json:"departure_date,omitempty" bson:"departure_date,omitempty"`
	DepartureTime string `json:"departure_time,omitempty" bson:"departure_time,omitempty"`
	ArrivalTime   string `json:"arrival_time,omitempty" bson:"arrival_time,omitempty"`
	Duration      string `json:"duration,omitempty" bson:"duration,omitempty"`
}

type PackageDetails struct {
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	From        string `json:"from,omitempty" bson:"from,omitempty"`
	To          string `json:"to,omitempty" bson:"to,omitempty"`
	StartDate   string `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty" bson:"end_date,omitempty"`
}

// BookingDetails is a variant record keyed by the booking type: exactly the
// field matching the type is set, the rest stay nil. One flexible document
// shape in the store, without the all-fields-optional struct.
type BookingDetails struct {
	Flight    *FlightDetails    `json:"flight,omitempty" bson:"flight,omitempty"`
	Hotel     *HotelDetails     `json:"hotel,omitempty" bson:"hotel,omitempty"`
	Activity  *ActivityDetails  `json:"activity,omitempty" bson:"activity,omitempty"`
	Transport *TransportDetails `json:"transport,omitempty" bson:"transport,omitempty"`
	Package   *PackageDetails   `json:"package,omitempty" bson:"package,omitempty"`
}

// Variant reports which variant is populated, or "" when none is.
func (d BookingDetails) Variant() string {
	switch {
	case d.Flight != nil:
		return BookFlight
	case d.Hotel != nil:
		return BookHotel
	case d.Activity != nil:
		return BookActivity
	case d.Transport != nil:
		return BookTransportation
	case d.Package != nil:
		return BookPackage
	}
	return ""
}

// count returns how many variants are set; a well-formed record has at most one.
func (d BookingDetails) count() int {
	n := 0
	for _, set := range []bool{
		d.Flight != nil, d.Hotel != nil, d.Activity != nil,
		d.Transport != nil, d.Package != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// MatchesType reports whether the populated variant agrees with the given
// booking type. An empty details bag is accepted for any type.
func (d BookingDetails) MatchesType(bookingType string) bool {
	if d.count() > 1 {
		return false
	}
	v := d.Variant()
	return v == "" || v == bookingType
}

type Pricing struct {
	BasePrice  float64 `json:"base_price" bson:"base_price"`
	Taxes      float64 `json:"taxes" bson:"taxes"`
	Fees       float64 `json:"fees" bson:"fees"`
	TotalPrice float64 `json:"total_price" bson:"total_price"`
	Currency   string  `json:"currency" bson:"currency"`
}

type Booking struct {
	BookingID   string         `json:"bookingid" bson:"bookingid"`
	UserID      string         `json:"user_id" bson:"user_id"`
	ItineraryID string         `json:"itinerary_id" bson:"itinerary_id"`
	BookingType string         `json:"booking_type" bson:"booking_type"`
	Provider    Provider       `json:"provider" bson:"provider"`
	Details     BookingDetails `json:"details" bson:"details"`
	Pricing     Pricing        `json:"pricing" bson:"pricing"`

	Status        string `json:"status" bson:"status"`
	PaymentStatus string `json:"payment_status" bson:"payment_status"`
	PaymentMethod string `json:"payment_method" bson:"payment_method"`

	// BookingReference is generated once at creation and never changes.
	BookingReference   string `json:"booking_reference" bson:"bookingReference"`
	ConfirmationNumber string `json:"confirmation_number,omitempty" bson:"confirmation_number,omitempty"`

	CancellationPolicy string `json:"cancellation_policy,omitempty" bson:"cancellation_policy,omitempty"`
	RefundPolicy       string `json:"refund_policy,omitempty" bson:"refund_policy,omitempty"`
	SpecialRequests    string `json:"special_requests,omitempty" bson:"special_requests,omitempty"`
	Notes              string `json:"notes,omitempty" bson:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
