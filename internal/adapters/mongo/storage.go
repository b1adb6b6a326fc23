package mongo_adapter

import (
	"context"
	"errors"
	"fmt"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	clientsCollection    = "clients"
	propertiesCollection = "properties"
	requestsCollection   = "requests"
	countersCollection   = "counters"
)

// MongoStorage - документное хранилище. Целочисленные ID выдаются
// атомарным $inc в коллекции counters.
type MongoStorage struct {
	client *mongo.Client
	db     *mongo.Database

	clients    *MongoClientRepository
	properties *MongoPropertyRepository
	requests   *MongoRequestRepository
}

func NewMongoStorage(client *mongo.Client, database string) (*MongoStorage, error) {
	if client == nil {
		return nil, fmt.Errorf("mongo.Client cannot be nil")
	}
	if database == "" {
		return nil, fmt.Errorf("database name cannot be empty")
	}

	db := client.Database(database)
	s := &MongoStorage{client: client, db: db}
	s.clients = &MongoClientRepository{storage: s, coll: db.Collection(clientsCollection)}
	s.properties = &MongoPropertyRepository{storage: s, coll: db.Collection(propertiesCollection)}
	s.requests = &MongoRequestRepository{storage: s, coll: db.Collection(requestsCollection)}
	return s, nil
}

// EnsureIndexes создает уникальные индексы и индексы по ссылкам заявок.
func (s *MongoStorage) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		clientsCollection: {
			{Keys: bson.D{{Key: "passport_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		propertiesCollection: {
			{Keys: bson.D{{Key: "cadastral_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		requestsCollection: {
			{Keys: bson.D{{Key: "client_id", Value: 1}}},
			{Keys: bson.D{{Key: "property_id", Value: 1}}},
		},
	}
	for coll, models := range indexes {
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", coll, err)
		}
	}
	return nil
}

func (s *MongoStorage) Clients() port.ClientRepositoryPort       { return s.clients }
func (s *MongoStorage) Properties() port.PropertyRepositoryPort { return s.properties }
func (s *MongoStorage) Requests() port.RequestRepositoryPort     { return s.requests }

func (s *MongoStorage) IsEmpty(ctx context.Context) (bool, error) {
	for _, name := range []string{clientsCollection, propertiesCollection, requestsCollection} {
		n, err := s.db.Collection(name).CountDocuments(ctx, bson.D{}, options.Count().SetLimit(1))
		if err != nil {
			contextkeys.LoggerFromContext(ctx).Error("Failed to count documents", err, port.Fields{
				"component":  "MongoStorage",
				"collection": name,
			})
			return false, fmt.Errorf("failed to count %s: %w", name, err)
		}
		if n > 0 {
			return false, nil
		}
	}
	return true, nil
}

func (s *MongoStorage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// nextID атомарно увеличивает счетчик коллекции и возвращает новое значение.
func (s *MongoStorage) nextID(ctx context.Context, collection string) (int, error) {
	var counter struct {
		Seq int `bson:"seq"`
	}
	err := s.db.Collection(countersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": collection},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate id for %s: %w", collection, err)
	}
	return counter.Seq, nil
}

func translateWriteError(err error, op string) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

func repoLogger(ctx context.Context, component, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": component,
		"method":    method,
	})
}
