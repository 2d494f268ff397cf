package usecase

import (
	"context"

	"github.com/Glassyflute/adboard/internal/entity"
	"github.com/stretchr/testify/mock"
)

type MockAdRepository struct{ mock.Mock }

func (m *MockAdRepository) Create(ctx context.Context, ad *entity.Ad) (int64, error) {
	args := m.Called(ctx, ad)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAdRepository) GetByID(ctx context.Context, id int64) (*entity.Ad, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Ad), args.Error(1)
}
func (m *MockAdRepository) Update(ctx context.Context, ad *entity.Ad) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}
func (m *MockAdRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAdRepository) List(ctx context.Context, filter entity.AdFilter, page, pageSize int) ([]*entity.Ad, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entity.Ad), args.Get(1).(int64), args.Error(2)
}
func (m *MockAdRepository) DeleteByCategory(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAdRepository) DeleteByAuthor(ctx context.Context, authorID int64) (int64, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAdRepository) CountPublishedByAuthors(ctx context.Context, authorIDs []int64) (map[int64]int64, error) {
	args := m.Called(ctx, authorIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int64), args.Error(1)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) (int64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}
func (m *MockCategoryRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Category, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*entity.Category), args.Error(1)
}
func (m *MockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}
func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCategoryRepository) List(ctx context.Context, page, pageSize int) ([]*entity.Category, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entity.Category), args.Get(1).(int64), args.Error(2)
}

type MockAdUserRepository struct{ mock.Mock }

func (m *MockAdUserRepository) Create(ctx context.Context, user *entity.AdUser) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAdUserRepository) GetByID(ctx context.Context, id int64) (*entity.AdUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdUser), args.Error(1)
}
func (m *MockAdUserRepository) GetByUsername(ctx context.Context, username string) (*entity.AdUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdUser), args.Error(1)
}
func (m *MockAdUserRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*entity.AdUser, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*entity.AdUser), args.Error(1)
}
func (m *MockAdUserRepository) Update(ctx context.Context, user *entity.AdUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockAdUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAdUserRepository) List(ctx context.Context, page, pageSize int) ([]*entity.AdUser, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entity.AdUser), args.Get(1).(int64), args.Error(2)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) GetOrCreateByName(ctx context.Context, name string) (*entity.Location, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Location), args.Error(1)
}
func (m *MockLocationRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Location, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*entity.Location), args.Error(1)
}

type MockStorage struct{ mock.Mock }

func (m *MockStorage) Upload(ctx context.Context, fileName string, data []byte) (string, error) {
	args := m.Called(ctx, fileName, data)
	return args.String(0), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishAdCreated(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEventPublisher) PublishAdUpdated(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEventPublisher) PublishAdDeleted(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEventPublisher) PublishCategoryDeleted(ctx context.Context, id, adsRemoved int64) error {
	args := m.Called(ctx, id, adsRemoved)
	return args.Error(0)
}
func (m *MockEventPublisher) PublishUserDeleted(ctx context.Context, id, adsRemoved int64) error {
	args := m.Called(ctx, id, adsRemoved)
	return args.Error(0)
}

func strp(s string) *string { return &s }
func int64p(n int64) *int64 { return &n }
func boolp(b bool) *bool { return &b }
