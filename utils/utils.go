package utils

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"roamio/globals"
	"roamio/models"

	rndm "math/rand"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")
var upperAlnumRunes = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// GenerateUpperAlnum creates a random upper-case alphanumeric string of length n.
func GenerateUpperAlnum(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = upperAlnumRunes[rndm.Intn(len(upperAlnumRunes))]
	}
	return string(b)
}

func GetUUID() string {
	return uuid.New().String()
}

// --- Request context helpers ---

// GetRequesterFromRequest rebuilds the capability token the middleware stored
// in the request context. An empty UserID means the request is unauthenticated.
func GetRequesterFromRequest(r *http.Request) models.Requester {
	ctx := r.Context()
	userID, _ := ctx.Value(globals.UserIDKey).(string)
	role, _ := ctx.Value(globals.RoleKey).(string)
	return models.Requester{UserID: userID, Role: role}
}

// --- Query parsing ---

func ParseLimit(r *http.Request, fallback int64) int64 {
	limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil || limit < 1 {
		return fallback
	}
	return limit
}

func ParseFloat(s string) float64 {
	val, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return val
}

// ParseDate reports whether s is a well-formed YYYY-MM-DD date.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	return t, err == nil
}

// --- Mongo helpers ---

// FindAndDecode runs a Find with the given options and decodes every document.
func FindAndDecode[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []T
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []T{}
	}
	return results, nil
}
