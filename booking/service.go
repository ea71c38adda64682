package booking

import (
	"context"
	"encoding/json"
	"log"
	"slices"
	"strings"
	"time"

	"roamio/apperr"
	"roamio/db"
	"roamio/models"
	"roamio/rdx"
	"roamio/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CreateInput struct {
	ItineraryID     string                `json:"itinerary_id"`
	BookingType     string                `json:"booking_type"`
	Provider        models.Provider       `json:"provider"`
	Details         models.BookingDetails `json:"details"`
	Pricing         PricingInput          `json:"pricing"`
	PaymentMethod   string                `json:"payment_method"`
	SpecialRequests string                `json:"special_requests"`
	Notes           string                `json:"notes"`
}

type PricingInput struct {
	BasePrice float64 `json:"base_price"`
	Taxes     float64 `json:"taxes"`
	Fees      float64 `json:"fees"`
	Currency  string  `json:"currency"`
}

type UpdateInput struct {
	ItineraryID        *string                `json:"itinerary_id"`
	Provider           *models.Provider       `json:"provider"`
	Details            *models.BookingDetails `json:"details"`
	Pricing            *PricingInput          `json:"pricing"`
	PaymentMethod      *string                `json:"payment_method"`
	Status             *string                `json:"status"`
	PaymentStatus      *string                `json:"payment_status"`
	ConfirmationNumber *string                `json:"confirmation_number"`
	CancellationPolicy *string                `json:"cancellation_policy"`
	RefundPolicy       *string                `json:"refund_policy"`
	SpecialRequests    *string                `json:"special_requests"`
	Notes              *string                `json:"notes"`
}

// Stats is the per-owner aggregate over all bookings.
type Stats struct {
	BookingCount int64   `json:"bookingCount" bson:"bookingCount"`
	TotalSpent   float64 `json:"totalSpent" bson:"totalSpent"`
}

// ValidateCreate checks the required booking fields.
func ValidateCreate(in CreateInput) error {
	if !slices.Contains(models.BookingTypes, in.BookingType) {
		return apperr.Validation("booking type is required")
	}
	if strings.TrimSpace(in.Provider.Name) == "" {
		return apperr.Validation("provider name is required")
	}
	if in.Pricing.BasePrice <= 0 {
		return apperr.Validation("base price is required")
	}
	if !slices.Contains(models.PaymentMethods, in.PaymentMethod) {
		return apperr.Validation("payment method is required")
	}
	if !in.Details.MatchesType(in.BookingType) {
		return apperr.Validation("details do not match booking type %q", in.BookingType)
	}
	return nil
}

// Create persists a new booking owned by ownerID. The total price is derived
// from base+taxes+fees server-side and the reference code is generated
// exactly once, here.
func Create(ctx context.Context, ownerID string, in CreateInput) (*models.Booking, error) {
	if ownerID == "" {
		return nil, apperr.Validation("owner is required")
	}
	if err := ValidateCreate(in); err != nil {
		return nil, err
	}

	currency := in.Pricing.Currency
	if currency == "" {
		currency = "USD"
	}
	pricing := models.Pricing{
		BasePrice: in.Pricing.BasePrice,
		Taxes:     in.Pricing.Taxes,
		Fees:      in.Pricing.Fees,
		Currency:  currency,
	}
	pricing.TotalPrice = ComputeTotalPrice(pricing)

	reference, err := generateReference(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	b := models.Booking{
		BookingID:        utils.GenerateRandomString(13),
		UserID:           ownerID,
		ItineraryID:      in.ItineraryID,
		BookingType:      in.BookingType,
		Provider:         in.Provider,
		Details:          in.Details,
		Pricing:          pricing,
		Status:           models.BookingPending,
		PaymentStatus:    models.PaymentPending,
		PaymentMethod:    in.PaymentMethod,
		BookingReference: reference,
		SpecialRequests:  in.SpecialRequests,
		Notes:            in.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := db.BookingsCollection.InsertOne(ctx, b); err != nil {
		return nil, err
	}

	invalidateStats(ownerID)
	return &b, nil
}

// Get returns the booking when the requester owns it or holds the admin role.
func Get(ctx context.Context, id string, req models.Requester) (*models.Booking, error) {
	var b models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingid": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.NotFound("booking")
	} else if err != nil {
		return nil, err
	}

	if b.UserID != req.UserID && !req.IsAdmin() {
		return nil, apperr.Permission("booking")
	}
	return &b, nil
}

// ListForOwner returns the owner's bookings, newest first. A limit of 0 means
// no limit.
func ListForOwner(ctx context.Context, ownerID string, limit int64) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return utils.FindAndDecode[models.Booking](ctx, db.BookingsCollection, bson.M{"user_id": ownerID}, opts)
}

// RecentBooking is the dashboard projection: the booking joined with the
// title and destination of the itinerary it belongs to.
type RecentBooking struct {
	models.Booking       `bson:",inline"`
	ItineraryTitle       string `json:"itinerary_title,omitempty"`
	ItineraryDestination string `json:"itinerary_destination,omitempty"`
}

// Recent returns the owner's newest bookings with itinerary context attached.
func Recent(ctx context.Context, ownerID string, limit int64) ([]RecentBooking, error) {
	bookings, err := ListForOwner(ctx, ownerID, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		if b.ItineraryID != "" {
			ids = append(ids, b.ItineraryID)
		}
	}

	titles := map[string]models.Itinerary{}
	if len(ids) > 0 {
		itins, err := utils.FindAndDecode[models.Itinerary](ctx, db.ItineraryCollection, bson.M{"itineraryid": bson.M{"$in": ids}})
		if err != nil {
			return nil, err
		}
		for _, it := range itins {
			titles[it.ItineraryID] = it
		}
	}

	recent := make([]RecentBooking, 0, len(bookings))
	for _, b := range bookings {
		rb := RecentBooking{Booking: b}
		if it, ok := titles[b.ItineraryID]; ok {
			rb.ItineraryTitle = it.Title
			rb.ItineraryDestination = it.Destination
		}
		recent = append(recent, rb)
	}
	return recent, nil
}

// Update applies an owner-only patch. Whenever the patch carries pricing, the
// total is recomputed from it; the booking reference is never rewritten.
func Update(ctx context.Context, id string, req models.Requester, in UpdateInput) (*models.Booking, error) {
	var existing models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingid": id}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.NotFound("booking")
	} else if err != nil {
		return nil, err
	}
	if existing.UserID != req.UserID {
		return nil, apperr.Permission("booking")
	}

	set := bson.M{"updated_at": time.Now()}

	if in.ItineraryID != nil {
		set["itinerary_id"] = *in.ItineraryID
	}
	if in.Provider != nil {
		if strings.TrimSpace(in.Provider.Name) == "" {
			return nil, apperr.Validation("provider name is required")
		}
		set["provider"] = *in.Provider
	}
	if in.Details != nil {
		if !in.Details.MatchesType(existing.BookingType) {
			return nil, apperr.Validation("details do not match booking type %q", existing.BookingType)
		}
		set["details"] = *in.Details
	}
	if in.Pricing != nil {
		if in.Pricing.BasePrice <= 0 {
			return nil, apperr.Validation("base price is required")
		}
		currency := in.Pricing.Currency
		if currency == "" {
			currency = existing.Pricing.Currency
		}
		pricing := models.Pricing{
			BasePrice: in.Pricing.BasePrice,
			Taxes:     in.Pricing.Taxes,
			Fees:      in.Pricing.Fees,
			Currency:  currency,
		}
		pricing.TotalPrice = ComputeTotalPrice(pricing)
		set["pricing"] = pricing
	}
	if in.PaymentMethod != nil {
		if !slices.Contains(models.PaymentMethods, *in.PaymentMethod) {
			return nil, apperr.Validation("unknown payment method %q", *in.PaymentMethod)
		}
		set["payment_method"] = *in.PaymentMethod
	}
	if in.Status != nil {
		if !ValidStatusTransition(existing.Status, *in.Status) {
			return nil, apperr.Validation("cannot move booking from %q to %q", existing.Status, *in.Status)
		}
		set["status"] = *in.Status
	}
	if in.PaymentStatus != nil {
		if !ValidPaymentTransition(existing.PaymentStatus, *in.PaymentStatus) {
			return nil, apperr.Validation("cannot move payment from %q to %q", existing.PaymentStatus, *in.PaymentStatus)
		}
		set["payment_status"] = *in.PaymentStatus
	}
	if in.ConfirmationNumber != nil {
		set["confirmation_number"] = *in.ConfirmationNumber
	}
	if in.CancellationPolicy != nil {
		set["cancellation_policy"] = *in.CancellationPolicy
	}
	if in.RefundPolicy != nil {
		set["refund_policy"] = *in.RefundPolicy
	}
	if in.SpecialRequests != nil {
		set["special_requests"] = *in.SpecialRequests
	}
	if in.Notes != nil {
		set["notes"] = *in.Notes
	}

	res := db.BookingsCollection.FindOneAndUpdate(ctx,
		bson.M{"bookingid": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Booking
	if err := res.Decode(&updated); err != nil {
		return nil, err
	}

	invalidateStats(existing.UserID)
	return &updated, nil
}

// SetStatus updates exactly the status and payment-status pair, validating
// both against the transition tables.
func SetStatus(ctx context.Context, id string, req models.Requester, status, paymentStatus string) (*models.Booking, error) {
	var existing models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingid": id}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.NotFound("booking")
	} else if err != nil {
		return nil, err
	}
	if existing.UserID != req.UserID {
		return nil, apperr.Permission("booking")
	}

	if status == "" {
		status = existing.Status
	}
	if paymentStatus == "" {
		paymentStatus = existing.PaymentStatus
	}

	if !ValidStatusTransition(existing.Status, status) {
		return nil, apperr.Validation("cannot move booking from %q to %q", existing.Status, status)
	}
	if !ValidPaymentTransition(existing.PaymentStatus, paymentStatus) {
		return nil, apperr.Validation("cannot move payment from %q to %q", existing.PaymentStatus, paymentStatus)
	}

	res := db.BookingsCollection.FindOneAndUpdate(ctx,
		bson.M{"bookingid": id},
		bson.M{"$set": bson.M{
			"status":         status,
			"payment_status": paymentStatus,
			"updated_at":     time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Booking
	if err := res.Decode(&updated); err != nil {
		return nil, err
	}

	invalidateStats(existing.UserID)
	return &updated, nil
}

// Delete removes a booking the requester owns.
func Delete(ctx context.Context, id string, req models.Requester) error {
	var b models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingid": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return apperr.NotFound("booking")
	} else if err != nil {
		return err
	}
	if b.UserID != req.UserID {
		return apperr.Permission("booking")
	}

	if _, err := db.BookingsCollection.DeleteOne(ctx, bson.M{"bookingid": id}); err != nil {
		return err
	}

	invalidateStats(b.UserID)
	return nil
}

const statsCacheTTL = time.Minute

func statsCacheKey(ownerID string) string {
	return "bookingstats:" + ownerID
}

func invalidateStats(ownerID string) {
	rdx.Invalidate(statsCacheKey(ownerID))
}

// AggregateStats sums count and total spend over the owner's bookings with a
// $match/$group pipeline. The result is cached briefly in Redis and the cache
// is dropped on every booking write.
func AggregateStats(ctx context.Context, ownerID string) (Stats, error) {
	if cached, err := rdx.RdxGet(statsCacheKey(ownerID)); err == nil && cached != "" {
		var stats Stats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return stats, nil
		}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": ownerID}}},
		{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"bookingCount": bson.M{"$sum": 1},
			"totalSpent":   bson.M{"$sum": "$pricing.total_price"},
		}}},
	}

	cursor, err := db.BookingsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return Stats{}, err
	}
	defer cursor.Close(ctx)

	var stats Stats
	if cursor.Next(ctx) {
		if err := cursor.Decode(&stats); err != nil {
			return Stats{}, err
		}
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := rdx.SetWithExpiry(statsCacheKey(ownerID), string(payload), statsCacheTTL); err != nil {
			log.Printf("stats cache write: %v", err)
		}
	}

	return stats, nil
}
