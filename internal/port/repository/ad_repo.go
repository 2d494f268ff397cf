package repository

import (
	"context"

	"github.com/Glassyflute/adboard/internal/entity"
)

type AdRepository interface {
	Create(ctx context.Context, ad *entity.Ad) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Ad, error)
	Update(ctx context.Context, ad *entity.Ad) error
	Delete(ctx context.Context, id int64) error
	// List evaluates the filter, sorts by price descending (ties by id
	// ascending), clamps page into range, and returns the page slice plus
	// the total matching count.
	List(ctx context.Context, filter entity.AdFilter, page, pageSize int) ([]*entity.Ad, int64, error)
	// DeleteByCategory removes every ad of a category and reports how many
	// were removed. Used by the category cascade.
	DeleteByCategory(ctx context.Context, categoryID int64) (int64, error)
	// DeleteByAuthor removes every ad of an author. Used by the user cascade.
	DeleteByAuthor(ctx context.Context, authorID int64) (int64, error)
	// CountPublishedByAuthors returns, per author id, the number of that
	// author's ads with is_published=true. One aggregate call per page of
	// users, never a per-row query.
	CountPublishedByAuthors(ctx context.Context, authorIDs []int64) (map[int64]int64, error)
}
