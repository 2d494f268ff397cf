package repository

import (
	"context"

	"github.com/Glassyflute/adboard/internal/entity"
)

type LocationRepository interface {
	// GetOrCreateByName reuses an existing location with the exact name or
	// inserts a new row. Names are matched verbatim, not case-folded.
	GetOrCreateByName(ctx context.Context, name string) (*entity.Location, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Location, error)
}
