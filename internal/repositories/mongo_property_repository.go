package repositories

import (
	"context"
	"fmt"
	"time"

	apperrors "homescout-listings/internal/errors"
	"homescout-listings/internal/models"
	"homescout-listings/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoPropertyRepository struct {
	collection *mongo.Collection
}

// NewMongoPropertyRepository wraps the properties collection. The bson
// filter it builds mirrors the query engine's rules exactly; the engine
// still runs over the result, so a stale index can narrow but never skew a
// response.
func NewMongoPropertyRepository(db *mongo.Database) PropertyRepository {
	return &mongoPropertyRepository{
		collection: db.Collection("properties"),
	}
}

func (r *mongoPropertyRepository) GetAll(ctx context.Context, hints *models.FilterSpec) ([]models.Property, error) {
	filter := buildMongoFilter(hints)
	findOptions := options.Find().
		SetSort(bson.D{{Key: "listingDate", Value: -1}})

	start := time.Now()
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "properties").Inc()
		return nil, fmt.Errorf("database query failed: %v", err)
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	start = time.Now()
	err = cursor.All(ctx, &properties)
	metrics.MongoOperationDuration.WithLabelValues("cursor_all", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "properties").Inc()
		return nil, fmt.Errorf("database query failed: %v", err)
	}
	return properties, nil
}

func (r *mongoPropertyRepository) GetByID(ctx context.Context, id int) (*models.Property, error) {
	start := time.Now()
	var property models.Property
	err := r.collection.FindOne(ctx, bson.M{"propertyId": id}).Decode(&property)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrPropertyNotFound
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", "properties").Inc()
		return nil, fmt.Errorf("database query failed: %v", err)
	}
	return &property, nil
}

// buildMongoFilter translates a FilterSpec into bson using the same
// semantics as the in-memory engine: inclusive bounds, minimum beds/baths,
// type membership, and case-insensitive location substring ORed across the
// address fields.
func buildMongoFilter(hints *models.FilterSpec) bson.M {
	filter := bson.M{}
	if hints == nil {
		return filter
	}

	price := bson.M{}
	if hints.PriceMin != nil {
		price["$gte"] = *hints.PriceMin
	}
	if hints.PriceMax != nil {
		price["$lte"] = *hints.PriceMax
	}
	if len(price) > 0 {
		filter["price"] = price
	}
	if hints.Bedrooms != nil {
		filter["bedrooms"] = bson.M{"$gte": *hints.Bedrooms}
	}
	if hints.Bathrooms != nil {
		filter["bathrooms"] = bson.M{"$gte": *hints.Bathrooms}
	}
	if len(hints.PropertyTypes) > 0 {
		// Type matching is case-insensitive, so a plain $in would diverge
		// from the engine on stored casing.
		patterns := make(bson.A, len(hints.PropertyTypes))
		for i, t := range hints.PropertyTypes {
			patterns[i] = primitive.Regex{Pattern: "^" + regexQuoteMeta(t) + "$", Options: "i"}
		}
		filter["propertyType"] = bson.M{"$in": patterns}
	}
	if loc := hints.Location; loc != "" {
		pattern := primitive.Regex{Pattern: regexQuoteMeta(loc), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"address.city": pattern},
			bson.M{"address.state": pattern},
			bson.M{"address.zipCode": pattern},
			bson.M{"address.street": pattern},
		}
	}
	return filter
}

func regexQuoteMeta(s string) string {
	special := `\.+*?()|[]{}^$`
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(special); j++ {
			if s[i] == special[j] {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, s[i])
	}
	return string(out)
}
