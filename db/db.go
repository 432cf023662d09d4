package db

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fairway/globals"
)

var (
	UserCollection    *mongo.Collection
	ConfigsCollection *mongo.Collection
	Client            *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := globals.Getenv("MONGODB_URI", "mongodb://localhost:27017")
	clientOptions := options.Client().ApplyURI(uri)

	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	dbName := globals.Getenv("MONGODB_DB", "fairwaydb")
	UserCollection = Client.Database(dbName).Collection("users")
	ConfigsCollection = Client.Database(dbName).Collection("configs")
}
