// booking.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"roamio/apperr"
	"roamio/utils"

	"github.com/julienschmidt/httprouter"
)

// writeDomainError maps a service error onto an HTTP response. Permission
// failures are reported with the not-found message so non-owners cannot tell
// whether a record exists.
func writeDomainError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrPermission):
		utils.RespondWithError(w, http.StatusNotFound, notFoundMsg)
	default:
		log.Printf("booking: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal error")
	}
}

// POST /api/bookings
func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := utils.GetRequesterFromRequest(r)
	if req.UserID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	b, err := Create(ctx, req.UserID, input)
	if err != nil {
		writeDomainError(w, err, "Booking not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, b)
}

// GET /api/bookings
func GetBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := utils.GetRequesterFromRequest(r)
	if req.UserID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bookings, err := ListForOwner(ctx, req.UserID, utils.ParseLimit(r, 0))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching bookings")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, bookings)
}

// GET /api/bookings/recent returns the newest three bookings with itinerary context.
func GetRecentBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := utils.GetRequesterFromRequest(r)
	if req.UserID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	recent, err := Recent(ctx, req.UserID, 3)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching bookings")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "bookings": recent})
}

// GET /api/bookings/stats
func GetBookingStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := utils.GetRequesterFromRequest(r)
	if req.UserID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	stats, err := AggregateStats(ctx, req.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching booking stats")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "stats": stats})
}

// GET /api/bookings/all/:id
func GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	req := utils.GetRequesterFromRequest(r)
	if req.UserID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	b, err := Get(ctx, ps.ByName("id"), req)
	if err != nil {
		writeDomainError(w, err, "Booking not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, b)
}

// PUT /api/bookings/:id
func UpdateBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	req := utils.GetRequesterFromRequest(r)
	if req.UserID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	b, err := Update(ctx, ps.ByName("id"), req, input)
	if err != nil {
		writeDomainError(w, err, "Booking not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, b)
}

// PATCH /api/bookings/:id/status
func UpdateBookingStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	req := utils.GetRequesterFromRequest(r)
	if req.UserID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input struct {
		Status        string `json:"status"`
		PaymentStatus string `json:"payment_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	b, err := SetStatus(ctx, ps.ByName("id"), req, input.Status, input.PaymentStatus)
	if err != nil {
		writeDomainError(w, err, "Booking not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, b)
}

// DELETE /api/bookings/:id
func DeleteBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	req := utils.GetRequesterFromRequest(r)
	if req.UserID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := Delete(ctx, ps.ByName("id"), req); err != nil {
		writeDomainError(w, err, "Booking not found")
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Booking deleted successfully", nil)
}
