package itinerary

import (
	"context"
	"slices"
	"strings"
	"time"

	"roamio/apperr"
	"roamio/db"
	"roamio/models"
	"roamio/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CreateInput struct {
	Title       string       `json:"title"`
	Destination string       `json:"destination"`
	StartDate   string       `json:"start_date"`
	EndDate     string       `json:"end_date"`
	Budget      float64      `json:"budget"`
	TravelStyle string       `json:"travel_style"`
	Days        []models.Day `json:"days"`
	Notes       string       `json:"notes"`
}

type UpdateInput struct {
	Title       string  `json:"title"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Budget      float64 `json:"budget"`
	TravelStyle string  `json:"travel_style"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes"`
}

// ValidateCreate checks the required fields and the date range before any
// store access.
func ValidateCreate(in CreateInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return apperr.Validation("title is required")
	}
	if strings.TrimSpace(in.Destination) == "" {
		return apperr.Validation("destination is required")
	}
	if in.Budget <= 0 {
		return apperr.Validation("budget is required")
	}
	if err := validateDateRange(in.StartDate, in.EndDate); err != nil {
		return err
	}
	if in.TravelStyle != "" && !slices.Contains(models.TravelStyles, in.TravelStyle) {
		return apperr.Validation("unknown travel style %q", in.TravelStyle)
	}
	return nil
}

func validateDateRange(start, end string) error {
	s, ok := utils.ParseDate(start)
	if !ok {
		return apperr.Validation("start date is required (YYYY-MM-DD)")
	}
	e, ok := utils.ParseDate(end)
	if !ok {
		return apperr.Validation("end date is required (YYYY-MM-DD)")
	}
	if s.After(e) {
		return apperr.Validation("start date must not be after end date")
	}
	return nil
}

// Create persists a new itinerary owned by ownerID. A pre-populated day
// sequence marks the itinerary as system-generated, and the stored total cost
// is computed from those days before the insert.
func Create(ctx context.Context, ownerID string, in CreateInput) (*models.Itinerary, error) {
	if ownerID == "" {
		return nil, apperr.Validation("owner is required")
	}
	if err := ValidateCreate(in); err != nil {
		return nil, err
	}

	style := in.TravelStyle
	if style == "" {
		style = models.StyleBudget
	}
	days := in.Days
	if days == nil {
		days = []models.Day{}
	}

	now := time.Now()
	itin := models.Itinerary{
		ItineraryID: utils.GenerateRandomString(13),
		UserID:      ownerID,
		Title:       in.Title,
		Destination: in.Destination,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Budget:      in.Budget,
		TravelStyle: style,
		Status:      models.ItineraryDraft,
		Days:        days,
		TotalCost:   ComputeTotalCost(days),
		AIGenerated: len(days) > 0,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := db.ItineraryCollection.InsertOne(ctx, itin); err != nil {
		return nil, err
	}
	return &itin, nil
}

// Get returns the itinerary when the requester owns it or holds the admin
// role.
func Get(ctx context.Context, id string, req models.Requester) (*models.Itinerary, error) {
	var itin models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": id}).Decode(&itin)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.NotFound("itinerary")
	} else if err != nil {
		return nil, err
	}

	if itin.UserID != req.UserID && !req.IsAdmin() {
		return nil, apperr.Permission("itinerary")
	}
	return &itin, nil
}

// ListForOwner returns the owner's itineraries, newest first. A limit of 0
// means no limit.
func ListForOwner(ctx context.Context, ownerID string, limit int64) ([]models.Itinerary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return utils.FindAndDecode[models.Itinerary](ctx, db.ItineraryCollection, bson.M{"user_id": ownerID}, opts)
}

// Update overwrites the scalar fields of an itinerary the requester owns.
// Days and the derived total are never touched here.
func Update(ctx context.Context, id string, req models.Requester, in UpdateInput) (*models.Itinerary, error) {
	var existing models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": id}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.NotFound("itinerary")
	} else if err != nil {
		return nil, err
	}
	if existing.UserID != req.UserID {
		return nil, apperr.Permission("itinerary")
	}

	if err := validateDateRange(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}
	if in.TravelStyle != "" && !slices.Contains(models.TravelStyles, in.TravelStyle) {
		return nil, apperr.Validation("unknown travel style %q", in.TravelStyle)
	}
	if in.Status != "" && !slices.Contains(models.ItineraryStatuses, in.Status) {
		return nil, apperr.Validation("unknown status %q", in.Status)
	}

	set := bson.M{
		"title":       in.Title,
		"destination": in.Destination,
		"start_date":  in.StartDate,
		"end_date":    in.EndDate,
		"budget":      in.Budget,
		"updated_at":  time.Now(),
	}
	if in.TravelStyle != "" {
		set["travel_style"] = in.TravelStyle
	}
	if in.Status != "" {
		set["status"] = in.Status
	}
	set["notes"] = in.Notes

	res := db.ItineraryCollection.FindOneAndUpdate(ctx,
		bson.M{"itineraryid": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Itinerary
	if err := res.Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// AppendDay adds a day at the end of the sequence and recomputes the stored
// total over the full sequence, so stale or malformed totals written earlier
// are always corrected. Visibility follows the owner-or-admin rule; anything
// else reports not-found.
func AppendDay(ctx context.Context, id string, req models.Requester, day models.Day) (*models.Itinerary, error) {
	var itin models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": id}).Decode(&itin)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.NotFound("itinerary")
	} else if err != nil {
		return nil, err
	}
	if itin.UserID != req.UserID && !req.IsAdmin() {
		return nil, apperr.NotFound("itinerary")
	}

	if day.Activities == nil {
		day.Activities = []models.Activity{}
	}
	if day.Transportation == nil {
		day.Transportation = []models.TransportLeg{}
	}

	itin.Days = append(itin.Days, day)
	itin.TotalCost = ComputeTotalCost(itin.Days)
	itin.UpdatedAt = time.Now()

	_, err = db.ItineraryCollection.UpdateOne(ctx,
		bson.M{"itineraryid": id},
		bson.M{"$set": bson.M{
			"days":       itin.Days,
			"total_cost": itin.TotalCost,
			"updated_at": itin.UpdatedAt,
		}},
	)
	if err != nil {
		return nil, err
	}
	return &itin, nil
}

// Delete removes an itinerary the requester owns. Bookings referencing it are
// left untouched.
func Delete(ctx context.Context, id string, req models.Requester) error {
	var itin models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": id}).Decode(&itin)
	if err == mongo.ErrNoDocuments {
		return apperr.NotFound("itinerary")
	} else if err != nil {
		return err
	}
	if itin.UserID != req.UserID {
		return apperr.Permission("itinerary")
	}

	_, err = db.ItineraryCollection.DeleteOne(ctx, bson.M{"itineraryid": id})
	return err
}
