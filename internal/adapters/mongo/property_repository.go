package mongo_adapter

import (
	"context"
	"fmt"

	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoPropertyRepository struct {
	storage *MongoStorage
	coll    *mongo.Collection
}

func (r *MongoPropertyRepository) Create(ctx context.Context, property domain.Property) (*domain.Property, error) {
	logger := repoLogger(ctx, "MongoPropertyRepository", "Create")

	id, err := r.storage.nextID(ctx, propertiesCollection)
	if err != nil {
		logger.Error("Failed to allocate property id", err, nil)
		return nil, err
	}
	property.ID = id

	if _, err := r.coll.InsertOne(ctx, newPropertyDoc(property)); err != nil {
		logger.Error("Failed to insert property", err, port.Fields{"property_id": id})
		return nil, translateWriteError(err, "failed to insert property")
	}
	return &property, nil
}

func (r *MongoPropertyRepository) Get(ctx context.Context, id int) (*domain.Property, error) {
	var doc propertyDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrPropertyNotFound
		}
		repoLogger(ctx, "MongoPropertyRepository", "Get").Error("Failed to find property", err, port.Fields{"property_id": id})
		return nil, fmt.Errorf("failed to find property: %w", err)
	}
	p := doc.toDomain()
	return &p, nil
}

func (r *MongoPropertyRepository) GetAll(ctx context.Context) ([]domain.Property, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		repoLogger(ctx, "MongoPropertyRepository", "GetAll").Error("Failed to query properties", err, nil)
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}

	var docs []propertyDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}

	properties := make([]domain.Property, 0, len(docs))
	for _, d := range docs {
		properties = append(properties, d.toDomain())
	}
	return properties, nil
}

func (r *MongoPropertyRepository) Update(ctx context.Context, property domain.Property) (*domain.Property, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": property.ID}, newPropertyDoc(property))
	if err != nil {
		repoLogger(ctx, "MongoPropertyRepository", "Update").Error("Failed to replace property", err, port.Fields{"property_id": property.ID})
		return nil, translateWriteError(err, "failed to replace property")
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPropertyNotFound
	}
	return &property, nil
}

// Delete удаляет объект и затем заявки на него.
func (r *MongoPropertyRepository) Delete(ctx context.Context, id int) (bool, error) {
	logger := repoLogger(ctx, "MongoPropertyRepository", "Delete")

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Error("Failed to delete property", err, port.Fields{"property_id": id})
		return false, fmt.Errorf("failed to delete property: %w", err)
	}
	if res.DeletedCount == 0 {
		return false, nil
	}

	cascade, err := r.storage.requests.coll.DeleteMany(ctx, bson.M{"property_id": id})
	if err != nil {
		logger.Error("Failed to delete property requests", err, port.Fields{"property_id": id})
		return true, fmt.Errorf("property deleted, but its requests were not: %w", err)
	}
	logger.Debug("Property deleted", port.Fields{"property_id": id, "requests_deleted": cascade.DeletedCount})
	return true, nil
}
