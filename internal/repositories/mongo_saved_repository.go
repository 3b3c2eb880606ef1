package repositories

import (
	"context"
	"fmt"
	"time"

	apperrors "homescout-listings/internal/errors"
	"homescout-listings/internal/models"
	"homescout-listings/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoSavedRepository struct {
	collection *mongo.Collection
}

// NewMongoSavedRepository wraps the saved_properties collection. The unique
// index on propertyId enforces the one-bookmark-per-property rule even
// under concurrent saves.
func NewMongoSavedRepository(db *mongo.Database) SavedPropertyRepository {
	return &mongoSavedRepository{
		collection: db.Collection("saved_properties"),
	}
}

func (r *mongoSavedRepository) List(ctx context.Context) ([]models.SavedProperty, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "savedDate", Value: -1}})

	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", "saved_properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "saved_properties").Inc()
		return nil, fmt.Errorf("database query failed: %v", err)
	}
	defer cursor.Close(ctx)

	saved := []models.SavedProperty{}
	if err := cursor.All(ctx, &saved); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "saved_properties").Inc()
		return nil, fmt.Errorf("database query failed: %v", err)
	}
	return saved, nil
}

func (r *mongoSavedRepository) GetByPropertyID(ctx context.Context, propertyID int) (*models.SavedProperty, error) {
	start := time.Now()
	var saved models.SavedProperty
	err := r.collection.FindOne(ctx, bson.M{"propertyId": propertyID}).Decode(&saved)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "saved_properties").Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrNotSaved
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", "saved_properties").Inc()
		return nil, fmt.Errorf("database query failed: %v", err)
	}
	return &saved, nil
}

func (r *mongoSavedRepository) Create(ctx context.Context, saved *models.SavedProperty) error {
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, saved)
	metrics.MongoOperationDuration.WithLabelValues("insert", "saved_properties").Observe(time.Since(start).Seconds())
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrAlreadySaved
		}
		metrics.MongoErrorsTotal.WithLabelValues("insert", "saved_properties").Inc()
		return fmt.Errorf("database query failed: %v", err)
	}
	return nil
}

func (r *mongoSavedRepository) DeleteByPropertyID(ctx context.Context, propertyID int) error {
	start := time.Now()
	result, err := r.collection.DeleteOne(ctx, bson.M{"propertyId": propertyID})
	metrics.MongoOperationDuration.WithLabelValues("delete_one", "saved_properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("delete_one", "saved_properties").Inc()
		return fmt.Errorf("database query failed: %v", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotSaved
	}
	return nil
}
