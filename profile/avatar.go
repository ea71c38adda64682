package profile

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"roamio/db"
	"roamio/models"
	"roamio/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const avatarUploadDir = "static/userpic"

func ensureDirExists(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

func processAvatarUpload(file *multipart.FileHeader) (string, string, error) {
	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open avatar file: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return "", "", fmt.Errorf("failed to decode avatar image: %w", err)
	}

	uniqueID := utils.GetUUID()
	fileName := uniqueID + ".jpg"
	thumbName := uniqueID + "_thumb.jpg"

	thumbDir := filepath.Join(avatarUploadDir, "thumb")
	if err := ensureDirExists(avatarUploadDir); err != nil {
		return "", "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := ensureDirExists(thumbDir); err != nil {
		return "", "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	if err := imaging.Save(img, filepath.Join(avatarUploadDir, fileName)); err != nil {
		return "", "", fmt.Errorf("failed to save avatar: %w", err)
	}

	thumbImg := imaging.Resize(img, 128, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, filepath.Join(thumbDir, thumbName)); err != nil {
		return "", "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return "/userpic/" + fileName, "/userpic/thumb/" + thumbName, nil
}

// POST /api/profile/avatar
func EditAvatar(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := utils.GetRequesterFromRequest(r)
	if req.UserID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Avatar file is required")
		return
	}
	file.Close()

	avatarPath, thumbPath, err := processAvatarUpload(header)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update avatar")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res := db.UserCollection.FindOneAndUpdate(ctx,
		bson.M{"userid": req.UserID},
		bson.M{"$set": bson.M{
			"avatar":       avatarPath,
			"avatar_thumb": thumbPath,
			"updated_at":   time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.User
	if err := res.Decode(&updated); err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		return
	} else if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update avatar")
		return
	}

	InvalidateCachedProfile(req.UserID)

	utils.RespondWithJSON(w, http.StatusOK, updated)
}
