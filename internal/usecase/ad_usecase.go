package usecase

import (
	"context"
	"fmt"

	"github.com/Glassyflute/adboard/internal/entity"
	"github.com/Glassyflute/adboard/internal/pagination"
	"github.com/Glassyflute/adboard/internal/platform/metrics"
	"github.com/Glassyflute/adboard/internal/port/repository"
	"go.uber.org/zap"
)

// Storage keeps uploaded image blobs and returns their public URL.
type Storage interface {
	Upload(ctx context.Context, fileName string, data []byte) (string, error)
}

type AdUsecase struct {
	ads        repository.AdRepository
	users      repository.AdUserRepository
	categories repository.CategoryRepository
	locations  repository.LocationRepository
	storage    Storage
	publisher  EventPublisher
	metrics    *metrics.MetricsManager
	logger     *zap.Logger
	pageSize   int
}

func NewAdUsecase(
	ads repository.AdRepository,
	users repository.AdUserRepository,
	categories repository.CategoryRepository,
	locations repository.LocationRepository,
	storage Storage,
	publisher EventPublisher,
	mm *metrics.MetricsManager,
	logger *zap.Logger,
	pageSize int,
) *AdUsecase {
	return &AdUsecase{
		ads:        ads,
		users:      users,
		categories: categories,
		locations:  locations,
		storage:    storage,
		publisher:  publisher,
		metrics:    mm,
		logger:     logger,
		pageSize:   pageSize,
	}
}

func (uc *AdUsecase) ListAds(ctx context.Context, filter entity.AdFilter, page int) (*AdPage, error) {
	ads, total, err := uc.ads.List(ctx, filter, page, uc.pageSize)
	if err != nil {
		uc.logger.Error("failed to list ads", zap.Error(err))
		return nil, fmt.Errorf("AdUsecase.ListAds: %w", err)
	}

	items, err := uc.buildAdViews(ctx, ads)
	if err != nil {
		return nil, fmt.Errorf("AdUsecase.ListAds: %w", err)
	}
	return &AdPage{
		Items:    items,
		NumPages: pagination.NumPages(total, uc.pageSize),
		Total:    total,
	}, nil
}

func (uc *AdUsecase) GetAd(ctx context.Context, id int64) (*AdView, error) {
	ad, err := uc.ads.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("AdUsecase.GetAd: %w", err)
	}
	views, err := uc.buildAdViews(ctx, []*entity.Ad{ad})
	if err != nil {
		return nil, fmt.Errorf("AdUsecase.GetAd: %w", err)
	}
	return &views[0], nil
}

type CreateAdInput struct {
	Name           string
	Price          int64
	Description    *string
	IsPublished    *bool
	AuthorUsername string
	CategoryID     int64
}

func (uc *AdUsecase) CreateAd(ctx context.Context, input CreateAdInput) (*AdView, error) {
	author, err := uc.users.GetByUsername(ctx, input.AuthorUsername)
	if err != nil {
		return nil, fmt.Errorf("AdUsecase.CreateAd: author %q: %w", input.AuthorUsername, err)
	}
	if _, err := uc.categories.GetByID(ctx, input.CategoryID); err != nil {
		return nil, fmt.Errorf("AdUsecase.CreateAd: category %d: %w", input.CategoryID, err)
	}

	ad := &entity.Ad{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		AuthorID:    &author.ID,
		CategoryID:  input.CategoryID,
	}
	if input.IsPublished != nil {
		ad.IsPublished = *input.IsPublished
	}
	if err := ad.Validate(); err != nil {
		return nil, err
	}

	if _, err := uc.ads.Create(ctx, ad); err != nil {
		uc.logger.Error("failed to create ad", zap.Error(err))
		return nil, fmt.Errorf("AdUsecase.CreateAd: %w", err)
	}

	if uc.metrics != nil {
		uc.metrics.AdsCreatedTotal.Inc()
	}
	if uc.publisher != nil {
		if pubErr := uc.publisher.PublishAdCreated(ctx, ad.ID); pubErr != nil {
			uc.logger.Warn("failed to publish ad created event",
				zap.Int64("ad_id", ad.ID), zap.Error(pubErr))
		}
	}

	views, err := uc.buildAdViews(ctx, []*entity.Ad{ad})
	if err != nil {
		return nil, fmt.Errorf("AdUsecase.CreateAd: %w", err)
	}
	return &views[0], nil
}

type UpdateAdInput struct {
	Name        *string
	Price       *int64
	Description *string
	IsPublished *bool
	AuthorID    *int64
	CategoryID  *int64
}

// UpdateAd applies only the supplied fields to a working copy, validates the
// whole record, and persists. A rejected update has no effect.
func (uc *AdUsecase) UpdateAd(ctx context.Context, id int64, input UpdateAdInput) (*AdView, error) {
	ad, err := uc.ads.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("AdUsecase.UpdateAd: %w", err)
	}

	if input.Name != nil {
		ad.Name = *input.Name
	}
	if input.Price != nil {
		ad.Price = *input.Price
	}
	if input.Description != nil {
		ad.Description = input.Description
	}
	if input.IsPublished != nil {
		ad.IsPublished = *input.IsPublished
	}
	if input.CategoryID != nil {
		if _, err := uc.categories.GetByID(ctx, *input.CategoryID); err != nil {
			return nil, fmt.Errorf("AdUsecase.UpdateAd: category %d: %w", *input.CategoryID, err)
		}
		ad.CategoryID = *input.CategoryID
	}
	if input.AuthorID != nil {
		if _, err := uc.users.GetByID(ctx, *input.AuthorID); err != nil {
			return nil, fmt.Errorf("AdUsecase.UpdateAd: author %d: %w", *input.AuthorID, err)
		}
		ad.AuthorID = input.AuthorID
	}

	if err := ad.Validate(); err != nil {
		return nil, err
	}
	if err := uc.ads.Update(ctx, ad); err != nil {
		uc.logger.Error("failed to update ad", zap.Int64("ad_id", id), zap.Error(err))
		return nil, fmt.Errorf("AdUsecase.UpdateAd: %w", err)
	}

	if uc.metrics != nil {
		uc.metrics.AdUpdatesTotal.Inc()
	}
	if uc.publisher != nil {
		if pubErr := uc.publisher.PublishAdUpdated(ctx, id); pubErr != nil {
			uc.logger.Warn("failed to publish ad updated event",
				zap.Int64("ad_id", id), zap.Error(pubErr))
		}
	}

	views, err := uc.buildAdViews(ctx, []*entity.Ad{ad})
	if err != nil {
		return nil, fmt.Errorf("AdUsecase.UpdateAd: %w", err)
	}
	return &views[0], nil
}

// UploadAdImage stores the blob and replaces the ad's image reference.
func (uc *AdUsecase) UploadAdImage(ctx context.Context, id int64, fileName string, data []byte) (*AdImageView, error) {
	ad, err := uc.ads.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("AdUsecase.UploadAdImage: %w", err)
	}

	url, err := uc.storage.Upload(ctx, fileName, data)
	if err != nil {
		uc.logger.Error("failed to upload ad image", zap.Int64("ad_id", id), zap.Error(err))
		return nil, fmt.Errorf("AdUsecase.UploadAdImage: %w", err)
	}

	ad.ImageURL = &url
	if err := uc.ads.Update(ctx, ad); err != nil {
		return nil, fmt.Errorf("AdUsecase.UploadAdImage: %w", err)
	}

	if uc.metrics != nil {
		uc.metrics.AdUpdatesTotal.Inc()
	}
	if uc.publisher != nil {
		if pubErr := uc.publisher.PublishAdUpdated(ctx, id); pubErr != nil {
			uc.logger.Warn("failed to publish ad updated event",
				zap.Int64("ad_id", id), zap.Error(pubErr))
		}
	}
	return &AdImageView{ID: ad.ID, Name: ad.Name, Image: ad.ImageURL}, nil
}

func (uc *AdUsecase) DeleteAd(ctx context.Context, id int64) error {
	if _, err := uc.ads.GetByID(ctx, id); err != nil {
		return fmt.Errorf("AdUsecase.DeleteAd: %w", err)
	}
	if err := uc.ads.Delete(ctx, id); err != nil {
		uc.logger.Error("failed to delete ad", zap.Int64("ad_id", id), zap.Error(err))
		return fmt.Errorf("AdUsecase.DeleteAd: %w", err)
	}

	if uc.metrics != nil {
		uc.metrics.AdDeletesTotal.Inc()
	}
	if uc.publisher != nil {
		if pubErr := uc.publisher.PublishAdDeleted(ctx, id); pubErr != nil {
			uc.logger.Warn("failed to publish ad deleted event",
				zap.Int64("ad_id", id), zap.Error(pubErr))
		}
	}
	return nil
}

// buildAdViews denormalizes one page of ads: authors, categories and the
// union of author location sets are each fetched in a single batched call.
func (uc *AdUsecase) buildAdViews(ctx context.Context, ads []*entity.Ad) ([]AdView, error) {
	categoryIDs := make([]int64, 0, len(ads))
	authorIDs := make([]int64, 0, len(ads))
	seenCategory := make(map[int64]bool)
	seenAuthor := make(map[int64]bool)
	for _, ad := range ads {
		if !seenCategory[ad.CategoryID] {
			seenCategory[ad.CategoryID] = true
			categoryIDs = append(categoryIDs, ad.CategoryID)
		}
		if ad.AuthorID != nil && !seenAuthor[*ad.AuthorID] {
			seenAuthor[*ad.AuthorID] = true
			authorIDs = append(authorIDs, *ad.AuthorID)
		}
	}

	categories, err := uc.categories.GetByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}
	authors, err := uc.users.GetByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	locationIDs := make([]int64, 0)
	seenLocation := make(map[int64]bool)
	for _, author := range authors {
		for _, locID := range author.LocationIDs {
			if !seenLocation[locID] {
				seenLocation[locID] = true
				locationIDs = append(locationIDs, locID)
			}
		}
	}
	locations, err := uc.locations.GetByIDs(ctx, locationIDs)
	if err != nil {
		return nil, err
	}

	views := make([]AdView, len(ads))
	for i, ad := range ads {
		view := AdView{
			ID:            ad.ID,
			Name:          ad.Name,
			Price:         ad.Price,
			Description:   ad.Description,
			Image:         ad.ImageURL,
			IsPublished:   ad.IsPublished,
			LocationNames: []string{},
		}
		if category, ok := categories[ad.CategoryID]; ok {
			view.Category = category.Name
		}
		if ad.AuthorID != nil {
			if author, ok := authors[*ad.AuthorID]; ok {
				view.Author = &author.Username
				view.LocationNames = locationNames(author, locations)
			}
		}
		views[i] = view
	}
	return views, nil
}

// locationNames resolves a user's location ids into names, preserving the
// association order.
func locationNames(user *entity.AdUser, locations map[int64]*entity.Location) []string {
	names := make([]string, 0, len(user.LocationIDs))
	for _, locID := range user.LocationIDs {
		if loc, ok := locations[locID]; ok && loc.Name != nil {
			names = append(names, *loc.Name)
		}
	}
	return names
}
