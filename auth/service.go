package auth

import (
	"context"
	"strings"
	"time"

	"roamio/apperr"
	"roamio/db"
	"roamio/models"
	"roamio/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ValidateRegistration checks the required registration fields before any
// store access.
func ValidateRegistration(in RegisterInput) error {
	switch {
	case strings.TrimSpace(in.Username) == "":
		return apperr.Validation("username is required")
	case strings.TrimSpace(in.Email) == "":
		return apperr.Validation("email is required")
	case !strings.Contains(in.Email, "@"):
		return apperr.Validation("email is malformed")
	case in.Password == "":
		return apperr.Validation("password is required")
	}
	return nil
}

// RegisterAccount creates a new account with a bcrypt-hashed credential and
// the non-admin default role. Duplicate username or email is a conflict,
// backed by the unique indexes on the users collection.
func RegisterAccount(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := ValidateRegistration(in); err != nil {
		return nil, err
	}

	err := db.UserCollection.FindOne(ctx, bson.M{
		"$or": []bson.M{{"username": in.Username}, {"email": in.Email}},
	}).Err()
	if err == nil {
		return nil, apperr.Conflict("username or email already registered")
	} else if err != mongo.ErrNoDocuments {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := models.User{
		UserID:       "u" + utils.GenerateRandomString(10),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hashed),
		Role:         models.RoleUser,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		// The unique index is the last word on races between the pre-check
		// and the insert.
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Conflict("username or email already registered")
		}
		return nil, err
	}

	return &user, nil
}

// AuthenticateAccount looks an account up by email and checks the credential.
// The failure is uniform whether the account is absent or the password wrong,
// so callers cannot probe which emails are registered.
func AuthenticateAccount(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, apperr.Permission("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Permission("invalid credentials")
	}

	return &user, nil
}
