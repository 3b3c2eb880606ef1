package database

import (
	"context"
	"fmt"
	"time"

	"homescout-listings/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var DB *mongo.Database

// InitDB connects to MongoDB and prepares the indexes the listing queries
// depend on.
func InitDB(uri, dbName string) error {
	if uri == "" || dbName == "" {
		return fmt.Errorf("missing required database settings: uri or dbname")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetMaxPoolSize(100)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	MongoClient = client
	DB = client.Database(dbName)

	// Indexes backing the filter and sort paths
	collection := DB.Collection("properties")
	_, err = collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "propertyId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "price", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "listingDate", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "address.city", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "address.zipCode", Value: 1}},
		},
	})
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to create property indexes: %v", err)
	}

	saved := DB.Collection("saved_properties")
	_, err = saved.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "propertyId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to create saved property indexes: %v", err)
	}

	logger.GlobalLogger.Println("MongoDB connected successfully")
	return nil
}

func CloseDB() {
	if MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := MongoClient.Disconnect(ctx); err != nil {
			logger.GlobalLogger.Errorf("Error closing MongoDB: %v", err)
		} else {
			logger.GlobalLogger.Println("MongoDB connection closed")
		}
	}
}
