package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"roamio/db"
	"roamio/models"
	"roamio/rdx"
	"roamio/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const profileCacheTTL = 5 * time.Minute

func profileCacheKey(userID string) string {
	return "profile:" + userID
}

// InvalidateCachedProfile drops the cached profile after any account write.
func InvalidateCachedProfile(userID string) {
	rdx.Invalidate(profileCacheKey(userID))
}

func fetchProfile(ctx context.Context, userID string) (*models.User, error) {
	if cached, err := rdx.RdxGet(profileCacheKey(userID)); err == nil && cached != "" {
		var user models.User
		if err := json.Unmarshal([]byte(cached), &user); err == nil {
			return &user, nil
		}
	}

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		rdx.SetWithExpiry(profileCacheKey(userID), string(payload), profileCacheTTL)
	}

	return &user, nil
}

// GET /api/profile
func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := utils.GetRequesterFromRequest(r)
	if req.UserID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := fetchProfile(ctx, req.UserID)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		return
	} else if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

// PATCH /api/profile
func EditProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := utils.GetRequesterFromRequest(r)
	if req.UserID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input struct {
		FirstName   *string             `json:"first_name"`
		LastName    *string             `json:"last_name"`
		Preferences *models.Preferences `json:"preferences"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	set := bson.M{"updated_at": time.Now()}
	if input.FirstName != nil {
		set["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		set["last_name"] = *input.LastName
	}
	if input.Preferences != nil {
		if input.Preferences.TravelStyle != "" && !slices.Contains(models.TravelStyles, input.Preferences.TravelStyle) {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown travel style")
			return
		}
		set["preferences"] = *input.Preferences
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res := db.UserCollection.FindOneAndUpdate(ctx,
		bson.M{"userid": req.UserID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.User
	if err := res.Decode(&updated); err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		return
	} else if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating profile")
		return
	}

	InvalidateCachedProfile(req.UserID)

	utils.RespondWithJSON(w, http.StatusOK, updated)
}
