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

type AdRepository struct {
	db *mongo.Database
}

func NewAdRepository(client *mongo.Client, dbName string) *AdRepository {
	return &AdRepository{db: client.Database(dbName)}
}

func (r *AdRepository) collection() *mongo.Collection {
	return r.db.Collection(adsCollection)
}

func (r *AdRepository) Create(ctx context.Context, ad *entity.Ad) (int64, error) {
	id, err := nextID(ctx, r.db, adsCollection)
	if err != nil {
		return 0, err
	}
	ad.ID = id
	if _, err := r.collection().InsertOne(ctx, toAdDocument(ad)); err != nil {
		return 0, fmt.Errorf("failed to create ad in mongo: %w", err)
	}
	return id, nil
}

func (r *AdRepository) GetByID(ctx context.Context, id int64) (*entity.Ad, error) {
	var doc adDocument
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ad by id from mongo: %w", err)
	}
	return toAdEntity(&doc), nil
}

func (r *AdRepository) Update(ctx context.Context, ad *entity.Ad) error {
	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": ad.ID}, bson.M{
		"$set": bson.M{
			"name":         ad.Name,
			"price":        ad.Price,
			"description":  ad.Description,
			"image_url":    ad.ImageURL,
			"is_published": ad.IsPublished,
			"author_id":    ad.AuthorID,
			"category_id":  ad.CategoryID,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to update ad in mongo: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AdRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete ad from mongo: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AdRepository) List(ctx context.Context, filter entity.AdFilter, page, pageSize int) ([]*entity.Ad, int64, error) {
	query := adQuery(filter)
	if filter.Location != "" {
		authorIDs, err := r.authorIDsByLocation(ctx, filter.Location)
		if err != nil {
			return nil, 0, err
		}
		query["author_id"] = bson.M{"$in": authorIDs}
	}

	total, err := r.collection().CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count ads in mongo: %w", err)
	}

	page = pagination.Clamp(page, pagination.NumPages(total, pageSize))
	findOptions := options.Find().
		SetSort(adSort()).
		SetSkip(pagination.Offset(page, pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.collection().Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list ads from mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []adDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode ad list from mongo: %w", err)
	}
	ads := make([]*entity.Ad, len(docs))
	for i := range docs {
		ads[i] = toAdEntity(&docs[i])
	}
	return ads, total, nil
}

// authorIDsByLocation resolves the location parameter into the set of author
// ids whose location set contains a matching name. An empty result is a
// valid predicate that matches no ads.
func (r *AdRepository) authorIDsByLocation(ctx context.Context, substr string) ([]int64, error) {
	locCursor, err := r.db.Collection(locationsCollection).Find(ctx,
		bson.M{"name": containsInsensitive(substr)},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to search locations by name in mongo: %w", err)
	}
	defer locCursor.Close(ctx)

	var locDocs []struct {
		ID int64 `bson:"_id"`
	}
	if err := locCursor.All(ctx, &locDocs); err != nil {
		return nil, fmt.Errorf("failed to decode location search from mongo: %w", err)
	}
	locationIDs := make([]int64, len(locDocs))
	for i := range locDocs {
		locationIDs[i] = locDocs[i].ID
	}

	authorIDs := []int64{}
	if len(locationIDs) == 0 {
		return authorIDs, nil
	}

	userCursor, err := r.db.Collection(usersCollection).Find(ctx,
		bson.M{"location_ids": bson.M{"$in": locationIDs}},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to search users by location in mongo: %w", err)
	}
	defer userCursor.Close(ctx)

	var userDocs []struct {
		ID int64 `bson:"_id"`
	}
	if err := userCursor.All(ctx, &userDocs); err != nil {
		return nil, fmt.Errorf("failed to decode user search from mongo: %w", err)
	}
	for i := range userDocs {
		authorIDs = append(authorIDs, userDocs[i].ID)
	}
	return authorIDs, nil
}

func (r *AdRepository) DeleteByCategory(ctx context.Context, categoryID int64) (int64, error) {
	res, err := r.collection().DeleteMany(ctx, bson.M{"category_id": categoryID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete ads by category from mongo: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *AdRepository) DeleteByAuthor(ctx context.Context, authorID int64) (int64, error) {
	res, err := r.collection().DeleteMany(ctx, bson.M{"author_id": authorID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete ads by author from mongo: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *AdRepository) CountPublishedByAuthors(ctx context.Context, authorIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(authorIDs))
	if len(authorIDs) == 0 {
		return result, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"author_id":    bson.M{"$in": authorIDs},
			"is_published": true,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$author_id",
			"total": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to count published ads by author in mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		AuthorID int64 `bson:"_id"`
		Total    int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode published ad counts from mongo: %w", err)
	}
	for _, row := range rows {
		result[row.AuthorID] = row.Total
	}
	return result, nil
}

var _ repository.AdRepository = (*AdRepository)(nil)
