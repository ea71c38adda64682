package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection      *mongo.Collection
	ItineraryCollection *mongo.Collection
	BookingsCollection  *mongo.Collection
	Client              *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("traveldb")
	UserCollection = database.Collection("users")
	ItineraryCollection = database.Collection("itineraries")
	BookingsCollection = database.Collection("bookings")

	EnsureIndexes()
}

// EnsureIndexes creates the unique indexes the handlers rely on: account
// username/email and the booking reference code.
func EnsureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := UserCollection.Indexes().CreateMany(ctx, userIndexes); err != nil {
		log.Printf("user index creation: %v", err)
	}

	refIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "bookingReference", Value: 1}},
		Options: options.Index().SetUnique(true).
			SetPartialFilterExpression(bson.M{"bookingReference": bson.M{"$type": "string"}}),
	}
	if _, err := BookingsCollection.Indexes().CreateOne(ctx, refIndex); err != nil {
		log.Printf("booking reference index creation: %v", err)
	}
}
