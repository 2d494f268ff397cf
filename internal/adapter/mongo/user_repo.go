package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Glassyflute/adboard/internal/entity"
	"github.com/Glassyflute/adboard/internal/pagination"
	"github.com/Glassyflute/adboard/internal/port/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AdUserRepository struct {
	db *mongo.Database
}

func NewAdUserRepository(client *mongo.Client, dbName string) *AdUserRepository {
	return &AdUserRepository{db: client.Database(dbName)}
}

func (r *AdUserRepository) collection() *mongo.Collection {
	return r.db.Collection(usersCollection)
}

func (r *AdUserRepository) Create(ctx context.Context, user *entity.AdUser) (int64, error) {
	id, err := nextID(ctx, r.db, usersCollection)
	if err != nil {
		return 0, err
	}
	user.ID = id
	if _, err := r.collection().InsertOne(ctx, toUserDocument(user)); err != nil {
		return 0, fmt.Errorf("failed to create user in mongo: %w", err)
	}
	return id, nil
}

func (r *AdUserRepository) GetByID(ctx context.Context, id int64) (*entity.AdUser, error) {
	var doc userDocument
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id from mongo: %w", err)
	}
	return toUserEntity(&doc), nil
}

func (r *AdUserRepository) GetByUsername(ctx context.Context, username string) (*entity.AdUser, error) {
	var doc userDocument
	err := r.collection().FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username from mongo: %w", err)
	}
	return toUserEntity(&doc), nil
}

func (r *AdUserRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*entity.AdUser, error) {
	result := make(map[int64]*entity.AdUser, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	cursor, err := r.collection().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to get users by ids from mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode users from mongo: %w", err)
	}
	for i := range docs {
		result[docs[i].ID] = toUserEntity(&docs[i])
	}
	return result, nil
}

func (r *AdUserRepository) Update(ctx context.Context, user *entity.AdUser) error {
	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{
		"$set": bson.M{
			"first_name":   user.FirstName,
			"last_name":    user.LastName,
			"username":     user.Username,
			"password":     user.Password,
			"role":         string(user.Role),
			"age":          user.Age,
			"location_ids": user.LocationIDs,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to update user in mongo: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AdUserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user from mongo: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AdUserRepository) List(ctx context.Context, page, pageSize int) ([]*entity.AdUser, int64, error) {
	total, err := r.collection().CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users in mongo: %w", err)
	}

	page = pagination.Clamp(page, pagination.NumPages(total, pageSize))
	findOptions := options.Find().
		SetSort(bson.D{{Key: "username", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(pagination.Offset(page, pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.collection().Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users from mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode user list from mongo: %w", err)
	}
	users := make([]*entity.AdUser, len(docs))
	for i := range docs {
		users[i] = toUserEntity(&docs[i])
	}
	return users, total, nil
}

var _ repository.AdUserRepository = (*AdUserRepository)(nil)
