// itinerary.go
package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"roamio/apperr"
	"roamio/models"
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
		log.Printf("itinerary: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal error")
	}
}

// POST /api/itineraries
func CreateItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	itin, err := Create(ctx, req.UserID, input)
	if err != nil {
		writeDomainError(w, err, "Itinerary not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, itin)
}

// GET /api/itineraries
func GetItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := utils.GetRequesterFromRequest(r)
	if req.UserID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	itineraries, err := ListForOwner(ctx, req.UserID, utils.ParseLimit(r, 0))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, itineraries)
}

// GET /api/itineraries/recent is the fixed dashboard projection of the three
// newest itineraries.
func GetRecentItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := utils.GetRequesterFromRequest(r)
	if req.UserID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	itineraries, err := ListForOwner(ctx, req.UserID, 3)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "itineraries": itineraries})
}

// GET /api/itineraries/all/:id
func GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	req := utils.GetRequesterFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	itin, err := Get(ctx, ps.ByName("id"), req)
	if err != nil {
		writeDomainError(w, err, "Itinerary not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, itin)
}

// PUT /api/itineraries/:id
func UpdateItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	req := utils.GetRequesterFromRequest(r)

	var input UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	itin, err := Update(ctx, ps.ByName("id"), req, input)
	if err != nil {
		writeDomainError(w, err, "Itinerary not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, itin)
}

// POST /api/itineraries/:id/days
func AddDay(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	req := utils.GetRequesterFromRequest(r)

	var day models.Day
	if err := json.NewDecoder(r.Body).Decode(&day); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	itin, err := AppendDay(ctx, ps.ByName("id"), req, day)
	if err != nil {
		writeDomainError(w, err, "Itinerary not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "itinerary": itin})
}

// DELETE /api/itineraries/:id
func DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	req := utils.GetRequesterFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := Delete(ctx, ps.ByName("id"), req); err != nil {
		writeDomainError(w, err, "Itinerary not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Itinerary deleted successfully"})
}
