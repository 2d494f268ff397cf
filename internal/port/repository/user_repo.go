package repository

import (
	"context"

	"github.com/Glassyflute/adboard/internal/entity"
)

type AdUserRepository interface {
	Create(ctx context.Context, user *entity.AdUser) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.AdUser, error)
	GetByUsername(ctx context.Context, username string) (*entity.AdUser, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*entity.AdUser, error)
	Update(ctx context.Context, user *entity.AdUser) error
	Delete(ctx context.Context, id int64) error
	// List returns one page sorted by username ascending, plus the total count.
	List(ctx context.Context, page, pageSize int) ([]*entity.AdUser, int64, error)
}
