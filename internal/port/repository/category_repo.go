package repository

import (
	"context"

	"github.com/Glassyflute/adboard/internal/entity"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
	// List returns one page sorted by name ascending, plus the total count.
	List(ctx context.Context, page, pageSize int) ([]*entity.Category, int64, error)
}
