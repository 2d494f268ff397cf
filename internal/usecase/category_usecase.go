package usecase

import (
	"context"
	"fmt"

	"github.com/Glassyflute/adboard/internal/entity"
	"github.com/Glassyflute/adboard/internal/pagination"
	"github.com/Glassyflute/adboard/internal/port/repository"
	"go.uber.org/zap"
)

type CategoryUsecase struct {
	categories repository.CategoryRepository
	ads        repository.AdRepository
	publisher  EventPublisher
	logger     *zap.Logger
	pageSize   int
}

func NewCategoryUsecase(
	categories repository.CategoryRepository,
	ads repository.AdRepository,
	publisher EventPublisher,
	logger *zap.Logger,
	pageSize int,
) *CategoryUsecase {
	return &CategoryUsecase{
		categories: categories,
		ads:        ads,
		publisher:  publisher,
		logger:     logger,
		pageSize:   pageSize,
	}
}

func (uc *CategoryUsecase) ListCategories(ctx context.Context, page int) (*CategoryPage, error) {
	categories, total, err := uc.categories.List(ctx, page, uc.pageSize)
	if err != nil {
		uc.logger.Error("failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("CategoryUsecase.ListCategories: %w", err)
	}

	items := make([]CategoryView, len(categories))
	for i, category := range categories {
		items[i] = CategoryView{ID: category.ID, Name: category.Name}
	}
	return &CategoryPage{
		Items:    items,
		NumPages: pagination.NumPages(total, uc.pageSize),
		Total:    total,
	}, nil
}

func (uc *CategoryUsecase) GetCategory(ctx context.Context, id int64) (*CategoryView, error) {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("CategoryUsecase.GetCategory: %w", err)
	}
	return &CategoryView{ID: category.ID, Name: category.Name}, nil
}

type CreateCategoryInput struct {
	Name     string
	IsActive *bool
}

func (uc *CategoryUsecase) CreateCategory(ctx context.Context, input CreateCategoryInput) (*CategoryView, error) {
	category := &entity.Category{Name: input.Name, IsActive: true}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	if _, err := uc.categories.Create(ctx, category); err != nil {
		uc.logger.Error("failed to create category", zap.Error(err))
		return nil, fmt.Errorf("CategoryUsecase.CreateCategory: %w", err)
	}
	return &CategoryView{ID: category.ID, Name: category.Name}, nil
}

type UpdateCategoryInput struct {
	Name     *string
	IsActive *bool
}

func (uc *CategoryUsecase) UpdateCategory(ctx context.Context, id int64, input UpdateCategoryInput) (*CategoryStatusView, error) {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("CategoryUsecase.UpdateCategory: %w", err)
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := uc.categories.Update(ctx, category); err != nil {
		uc.logger.Error("failed to update category", zap.Int64("category_id", id), zap.Error(err))
		return nil, fmt.Errorf("CategoryUsecase.UpdateCategory: %w", err)
	}
	return &CategoryStatusView{ID: category.ID, Name: category.Name, IsActive: category.IsActive}, nil
}

// DeleteCategory removes the category and cascades to every ad referencing it.
func (uc *CategoryUsecase) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := uc.categories.GetByID(ctx, id); err != nil {
		return fmt.Errorf("CategoryUsecase.DeleteCategory: %w", err)
	}

	adsRemoved, err := uc.ads.DeleteByCategory(ctx, id)
	if err != nil {
		uc.logger.Error("failed to cascade-delete ads of category",
			zap.Int64("category_id", id), zap.Error(err))
		return fmt.Errorf("CategoryUsecase.DeleteCategory: %w", err)
	}
	if err := uc.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("CategoryUsecase.DeleteCategory: %w", err)
	}

	uc.logger.Info("category deleted",
		zap.Int64("category_id", id), zap.Int64("ads_removed", adsRemoved))
	if uc.publisher != nil {
		if pubErr := uc.publisher.PublishCategoryDeleted(ctx, id, adsRemoved); pubErr != nil {
			uc.logger.Warn("failed to publish category deleted event",
				zap.Int64("category_id", id), zap.Error(pubErr))
		}
	}
	return nil
}
