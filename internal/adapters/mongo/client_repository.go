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

type MongoClientRepository struct {
	storage *MongoStorage
	coll    *mongo.Collection
}

func (r *MongoClientRepository) Create(ctx context.Context, client domain.Client) (*domain.Client, error) {
	logger := repoLogger(ctx, "MongoClientRepository", "Create")

	id, err := r.storage.nextID(ctx, clientsCollection)
	if err != nil {
		logger.Error("Failed to allocate client id", err, nil)
		return nil, err
	}
	client.ID = id

	if _, err := r.coll.InsertOne(ctx, newClientDoc(client)); err != nil {
		logger.Error("Failed to insert client", err, port.Fields{"client_id": id})
		return nil, translateWriteError(err, "failed to insert client")
	}
	return &client, nil
}

func (r *MongoClientRepository) Get(ctx context.Context, id int) (*domain.Client, error) {
	var doc clientDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrClientNotFound
		}
		repoLogger(ctx, "MongoClientRepository", "Get").Error("Failed to find client", err, port.Fields{"client_id": id})
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	c := doc.toDomain()
	return &c, nil
}

func (r *MongoClientRepository) GetAll(ctx context.Context) ([]domain.Client, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		repoLogger(ctx, "MongoClientRepository", "GetAll").Error("Failed to query clients", err, nil)
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}

	var docs []clientDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode clients: %w", err)
	}

	clients := make([]domain.Client, 0, len(docs))
	for _, d := range docs {
		clients = append(clients, d.toDomain())
	}
	return clients, nil
}

func (r *MongoClientRepository) Update(ctx context.Context, client domain.Client) (*domain.Client, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": client.ID}, newClientDoc(client))
	if err != nil {
		repoLogger(ctx, "MongoClientRepository", "Update").Error("Failed to replace client", err, port.Fields{"client_id": client.ID})
		return nil, translateWriteError(err, "failed to replace client")
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrClientNotFound
	}
	return &client, nil
}

// Delete удаляет клиента и затем его заявки.
func (r *MongoClientRepository) Delete(ctx context.Context, id int) (bool, error) {
	logger := repoLogger(ctx, "MongoClientRepository", "Delete")

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Error("Failed to delete client", err, port.Fields{"client_id": id})
		return false, fmt.Errorf("failed to delete client: %w", err)
	}
	if res.DeletedCount == 0 {
		return false, nil
	}

	cascade, err := r.storage.requests.coll.DeleteMany(ctx, bson.M{"client_id": id})
	if err != nil {
		logger.Error("Failed to delete client requests", err, port.Fields{"client_id": id})
		return true, fmt.Errorf("client deleted, but its requests were not: %w", err)
	}
	logger.Debug("Client deleted", port.Fields{"client_id": id, "requests_deleted": cascade.DeletedCount})
	return true, nil
}
