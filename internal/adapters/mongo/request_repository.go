package mongo_adapter

import (
	"context"
	"fmt"

	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoRequestRepository struct {
	storage *MongoStorage
	coll    *mongo.Collection
}

// resolvePipeline подтягивает клиента и объект через $lookup.
func resolvePipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         clientsCollection,
			"localField":   "client_id",
			"foreignField": "_id",
			"as":           "client",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         propertiesCollection,
			"localField":   "property_id",
			"foreignField": "_id",
			"as":           "property",
		}}},
	}
}

func (r *MongoRequestRepository) load(ctx context.Context, match bson.M) ([]domain.Request, error) {
	cursor, err := r.coll.Aggregate(ctx, resolvePipeline(match))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate requests: %w", err)
	}

	var views []requestView
	if err := cursor.All(ctx, &views); err != nil {
		return nil, fmt.Errorf("failed to decode requests: %w", err)
	}

	requests := make([]domain.Request, 0, len(views))
	for _, v := range views {
		req, err := v.toDomain()
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (r *MongoRequestRepository) Create(ctx context.Context, input domain.RequestInput) (*domain.Request, error) {
	logger := repoLogger(ctx, "MongoRequestRepository", "Create")

	id, err := r.storage.nextID(ctx, requestsCollection)
	if err != nil {
		logger.Error("Failed to allocate request id", err, nil)
		return nil, err
	}
	doc, err := newRequestDoc(id, input)
	if err != nil {
		return nil, err
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		logger.Error("Failed to insert request", err, port.Fields{"request_id": id})
		return nil, translateWriteError(err, "failed to insert request")
	}
	return r.Get(ctx, id)
}

func (r *MongoRequestRepository) Get(ctx context.Context, id int) (*domain.Request, error) {
	found, err := r.load(ctx, bson.M{"_id": id})
	if err != nil {
		repoLogger(ctx, "MongoRequestRepository", "Get").Error("Failed to load request", err, port.Fields{"request_id": id})
		return nil, err
	}
	if len(found) == 0 {
		return nil, domain.ErrRequestNotFound
	}
	return &found[0], nil
}

func (r *MongoRequestRepository) Update(ctx context.Context, id int, input domain.RequestInput) (*domain.Request, error) {
	doc, err := newRequestDoc(id, input)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		repoLogger(ctx, "MongoRequestRepository", "Update").Error("Failed to replace request", err, port.Fields{"request_id": id})
		return nil, translateWriteError(err, "failed to replace request")
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrRequestNotFound
	}
	return r.Get(ctx, id)
}

func (r *MongoRequestRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		repoLogger(ctx, "MongoRequestRepository", "Delete").Error("Failed to delete request", err, port.Fields{"request_id": id})
		return false, fmt.Errorf("failed to delete request: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRequestRepository) GetRequests(ctx context.Context) ([]domain.Request, error) {
	logger := repoLogger(ctx, "MongoRequestRepository", "GetRequests")

	requests, err := r.load(ctx, bson.M{})
	if err != nil {
		logger.Error("Failed to load requests", err, nil)
		return nil, err
	}
	logger.Debug("Requests loaded", port.Fields{"total": len(requests)})
	return requests, nil
}
