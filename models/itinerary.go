package models

import "time"

// Itinerary statuses
const (
	ItineraryDraft     = "draft"
	ItineraryConfirmed = "confirmed"
	ItineraryCompleted = "completed"
	ItineraryCancelled = "cancelled"
)

// Travel styles
const (
	StyleBudget     = "budget"
	StyleLuxury     = "luxury"
	StyleAdventure  = "adventure"
	StyleRelaxation = "relaxation"
	StyleCultural   = "cultural"
)

// Per-item booking statuses inside a day plan.
const (
	ItemPending   = "pending"
	ItemConfirmed = "confirmed"
	ItemCancelled = "cancelled"
)

var TravelStyles = []string{StyleBudget, StyleLuxury, StyleAdventure, StyleRelaxation, StyleCultural}

var ItineraryStatuses = []string{ItineraryDraft, ItineraryConfirmed, ItineraryCompleted, ItineraryCancelled}

var TransportModes = []string{
	"flight", "train", "bus", "car", "walking",
	"public transport", "private car", "taxi", "bicycle", "hiking",
}

// Itinerary is the travel plan aggregate: the record plus its embedded days,
// mutated as one consistency unit. TotalCost is derived and always recomputed
// from the day sequence, never edited directly.
type Itinerary struct {
	ItineraryID string  `json:"itineraryid" bson:"itineraryid"`
	UserID      string  `json:"user_id" bson:"user_id"`
	Title       string  `json:"title" bson:"title"`
	Destination string  `json:"destination" bson:"destination"`
	StartDate   string  `json:"start_date" bson:"start_date"`
	EndDate     string  `json:"end_date" bson:"end_date"`
	Budget      float64 `json:"budget" bson:"budget"`
	TravelStyle string  `json:"travel_style" bson:"travel_style"`
	Status      string  `json:"status" bson:"status"`
	Days        []Day   `json:"days" bson:"days"`
	TotalCost   float64 `json:"total_cost" bson:"total_cost"`
	AIGenerated bool    `json:"ai_generated" bson:"ai_generated"`
	Notes       string  `json:"notes,omitempty" bson:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

type Day struct {
	DayNumber      int            `json:"day_number" bson:"day_number"`
	Date           string         `json:"date" bson:"date"`
	Activities     []Activity     `json:"activities" bson:"activities"`
	Accommodation  *Accommodation `json:"accommodation,omitempty" bson:"accommodation,omitempty"`
	Transportation []TransportLeg `json:"transportation" bson:"transportation"`
}

type Activity struct {
	Time          string  `json:"time" bson:"time"`
	Activity      string  `json:"activity" bson:"activity"`
	Location      string  `json:"location" bson:"location"`
	Description   string  `json:"description,omitempty" bson:"description,omitempty"`
	EstimatedCost float64 `json:"estimated_cost" bson:"estimated_cost"`
	BookingStatus string  `json:"booking_status" bson:"booking_status"`
}

type Accommodation struct {
	Name          string  `json:"name" bson:"name"`
	Location      string  `json:"location" bson:"location"`
	Cost          float64 `json:"cost" bson:"cost"`
	BookingStatus string  `json:"booking_status" bson:"booking_status"`
}

type TransportLeg struct {
	Mode          string  `json:"mode" bson:"mode"`
	From          string  `json:"from" bson:"from"`
	To            string  `json:"to" bson:"to"`
	DepartureTime string  `json:"departure_time,omitempty" bson:"departure_time,omitempty"`
	ArrivalTime   string  `json:"arrival_time,omitempty" bson:"arrival_time,omitempty"`
	Cost          float64 `json:"cost" bson:"cost"`
	BookingStatus string  `json:"booking_status" bson:"booking_status"`
}
