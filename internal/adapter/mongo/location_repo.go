package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Glassyflute/adboard/internal/entity"
	"github.com/Glassyflute/adboard/internal/port/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type LocationRepository struct {
	db *mongo.Database
}

func NewLocationRepository(client *mongo.Client, dbName string) *LocationRepository {
	return &LocationRepository{db: client.Database(dbName)}
}

func (r *LocationRepository) collection() *mongo.Collection {
	return r.db.Collection(locationsCollection)
}

func (r *LocationRepository) GetOrCreateByName(ctx context.Context, name string) (*entity.Location, error) {
	var doc locationDocument
	err := r.collection().FindOne(ctx, bson.M{"name": name}).Decode(&doc)
	if err == nil {
		return toLocationEntity(&doc), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to look up location by name in mongo: %w", err)
	}

	id, err := nextID(ctx, r.db, locationsCollection)
	if err != nil {
		return nil, err
	}
	location := &entity.Location{ID: id, Name: &name}
	if _, err := r.collection().InsertOne(ctx, toLocationDocument(location)); err != nil {
		return nil, fmt.Errorf("failed to create location in mongo: %w", err)
	}
	return location, nil
}

func (r *LocationRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Location, error) {
	result := make(map[int64]*entity.Location, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	cursor, err := r.collection().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to get locations by ids from mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []locationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode locations from mongo: %w", err)
	}
	for i := range docs {
		result[docs[i].ID] = toLocationEntity(&docs[i])
	}
	return result, nil
}

var _ repository.LocationRepository = (*LocationRepository)(nil)
