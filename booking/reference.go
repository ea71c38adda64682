package booking

import (
	"context"
	"fmt"
	"time"

	"roamio/db"
	"roamio/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const referenceAttempts = 5

// newReferenceCandidate builds one human-readable reference code: a "BK"
// prefix, the millisecond timestamp, and a short random suffix.
func newReferenceCandidate(now time.Time) string {
	return fmt.Sprintf("BK%d%s", now.UnixMilli(), utils.GenerateUpperAlnum(5))
}

// generateReference produces a reference code that is unused at the time of
// the check. The timestamp+random scheme alone leaves a small collision
// window, so each candidate is verified against the unique index and
// regenerated on a hit; the index itself catches the remaining race at
// insert time.
func generateReference(ctx context.Context) (string, error) {
	for i := 0; i < referenceAttempts; i++ {
		candidate := newReferenceCandidate(time.Now())
		err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingReference": candidate}).Err()
		if err == mongo.ErrNoDocuments {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("could not generate a unique booking reference after %d attempts", referenceAttempts)
}
