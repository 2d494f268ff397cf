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

type CategoryRepository struct {
	db *mongo.Database
}

func NewCategoryRepository(client *mongo.Client, dbName string) *CategoryRepository {
	return &CategoryRepository{db: client.Database(dbName)}
}

func (r *CategoryRepository) collection() *mongo.Collection {
	return r.db.Collection(categoriesCollection)
}

func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) (int64, error) {
	id, err := nextID(ctx, r.db, categoriesCollection)
	if err != nil {
		return 0, err
	}
	category.ID = id
	if _, err := r.collection().InsertOne(ctx, toCategoryDocument(category)); err != nil {
		return 0, fmt.Errorf("failed to create category in mongo: %w", err)
	}
	return id, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var doc categoryDocument
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category by id from mongo: %w", err)
	}
	return toCategoryEntity(&doc), nil
}

func (r *CategoryRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Category, error) {
	result := make(map[int64]*entity.Category, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	cursor, err := r.collection().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to get categories by ids from mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []categoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode categories from mongo: %w", err)
	}
	for i := range docs {
		result[docs[i].ID] = toCategoryEntity(&docs[i])
	}
	return result, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": category.ID}, bson.M{
		"$set": bson.M{
			"name":      category.Name,
			"is_active": category.IsActive,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to update category in mongo: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete category from mongo: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) List(ctx context.Context, page, pageSize int) ([]*entity.Category, int64, error) {
	total, err := r.collection().CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count categories in mongo: %w", err)
	}

	page = pagination.Clamp(page, pagination.NumPages(total, pageSize))
	findOptions := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(pagination.Offset(page, pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.collection().Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list categories from mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []categoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode category list from mongo: %w", err)
	}
	categories := make([]*entity.Category, len(docs))
	for i := range docs {
		categories[i] = toCategoryEntity(&docs[i])
	}
	return categories, total, nil
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
