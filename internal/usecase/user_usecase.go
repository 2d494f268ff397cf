package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Glassyflute/adboard/internal/entity"
	"github.com/Glassyflute/adboard/internal/pagination"
	"github.com/Glassyflute/adboard/internal/port/repository"
	"go.uber.org/zap"
)

type UserUsecase struct {
	users     repository.AdUserRepository
	ads       repository.AdRepository
	locations repository.LocationRepository
	publisher EventPublisher
	logger    *zap.Logger
	pageSize  int
}

func NewUserUsecase(
	users repository.AdUserRepository,
	ads repository.AdRepository,
	locations repository.LocationRepository,
	publisher EventPublisher,
	logger *zap.Logger,
	pageSize int,
) *UserUsecase {
	return &UserUsecase{
		users:     users,
		ads:       ads,
		locations: locations,
		publisher: publisher,
		logger:    logger,
		pageSize:  pageSize,
	}
}

// ListUsers returns one page sorted by username. total_ads is computed with
// a single aggregate over the page's author ids, not per row.
func (uc *UserUsecase) ListUsers(ctx context.Context, page int) (*UserPage, error) {
	users, total, err := uc.users.List(ctx, page, uc.pageSize)
	if err != nil {
		uc.logger.Error("failed to list users", zap.Error(err))
		return nil, fmt.Errorf("UserUsecase.ListUsers: %w", err)
	}

	userIDs := make([]int64, len(users))
	for i, user := range users {
		userIDs[i] = user.ID
	}
	totalAds, err := uc.ads.CountPublishedByAuthors(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("UserUsecase.ListUsers: %w", err)
	}
	locations, err := uc.locationsForUsers(ctx, users)
	if err != nil {
		return nil, fmt.Errorf("UserUsecase.ListUsers: %w", err)
	}

	items := make([]UserListView, len(users))
	for i, user := range users {
		items[i] = UserListView{
			UserView: userView(user, locations),
			TotalAds: totalAds[user.ID],
		}
	}
	return &UserPage{
		Items:    items,
		NumPages: pagination.NumPages(total, uc.pageSize),
		Total:    total,
	}, nil
}

func (uc *UserUsecase) GetUser(ctx context.Context, id int64) (*UserView, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("UserUsecase.GetUser: %w", err)
	}
	locations, err := uc.locations.GetByIDs(ctx, user.LocationIDs)
	if err != nil {
		return nil, fmt.Errorf("UserUsecase.GetUser: %w", err)
	}
	view := userView(user, locations)
	return &view, nil
}

type CreateUserInput struct {
	FirstName     string
	LastName      *string
	Username      string
	Password      string
	Role          *string
	Age           uint16
	LocationNames []string
}

func (uc *UserUsecase) CreateUser(ctx context.Context, input CreateUserInput) (*UserView, error) {
	if err := uc.checkUsernameFree(ctx, input.Username, 0); err != nil {
		return nil, err
	}

	user := &entity.AdUser{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Username:  input.Username,
		Password:  input.Password,
		Role:      entity.RoleMember,
		Age:       input.Age,
	}
	if input.Role != nil {
		user.Role = entity.Role(*input.Role)
	}
	// Validate before resolving location names: a rejected create must not
	// have get-or-created Location rows. Location ids do not participate in
	// validation, so the order is safe.
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := uc.attachLocations(ctx, user, input.LocationNames); err != nil {
		return nil, err
	}

	if _, err := uc.users.Create(ctx, user); err != nil {
		uc.logger.Error("failed to create user", zap.Error(err))
		return nil, fmt.Errorf("UserUsecase.CreateUser: %w", err)
	}

	locations, err := uc.locations.GetByIDs(ctx, user.LocationIDs)
	if err != nil {
		return nil, fmt.Errorf("UserUsecase.CreateUser: %w", err)
	}
	view := userView(user, locations)
	return &view, nil
}

type UpdateUserInput struct {
	FirstName     *string
	LastName      *string
	Username      *string
	Password      *string
	Role          *string
	Age           *uint16
	LocationNames []string
}

// UpdateUser applies supplied fields to a working copy and validates the
// whole record before persisting. Location names are additive: existing
// associations are kept, new names are get-or-created and linked.
func (uc *UserUsecase) UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*UserView, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("UserUsecase.UpdateUser: %w", err)
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = input.LastName
	}
	if input.Username != nil && *input.Username != user.Username {
		if err := uc.checkUsernameFree(ctx, *input.Username, user.ID); err != nil {
			return nil, err
		}
		user.Username = *input.Username
	}
	if input.Password != nil {
		user.Password = *input.Password
	}
	if input.Role != nil {
		user.Role = entity.Role(*input.Role)
	}
	if input.Age != nil {
		user.Age = *input.Age
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := uc.attachLocations(ctx, user, input.LocationNames); err != nil {
		return nil, err
	}

	if err := uc.users.Update(ctx, user); err != nil {
		uc.logger.Error("failed to update user", zap.Int64("user_id", id), zap.Error(err))
		return nil, fmt.Errorf("UserUsecase.UpdateUser: %w", err)
	}

	locations, err := uc.locations.GetByIDs(ctx, user.LocationIDs)
	if err != nil {
		return nil, fmt.Errorf("UserUsecase.UpdateUser: %w", err)
	}
	view := userView(user, locations)
	return &view, nil
}

// DeleteUser removes the user and cascades to every ad they authored.
func (uc *UserUsecase) DeleteUser(ctx context.Context, id int64) error {
	if _, err := uc.users.GetByID(ctx, id); err != nil {
		return fmt.Errorf("UserUsecase.DeleteUser: %w", err)
	}

	adsRemoved, err := uc.ads.DeleteByAuthor(ctx, id)
	if err != nil {
		uc.logger.Error("failed to cascade-delete ads of user",
			zap.Int64("user_id", id), zap.Error(err))
		return fmt.Errorf("UserUsecase.DeleteUser: %w", err)
	}
	if err := uc.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("UserUsecase.DeleteUser: %w", err)
	}

	uc.logger.Info("user deleted",
		zap.Int64("user_id", id), zap.Int64("ads_removed", adsRemoved))
	if uc.publisher != nil {
		if pubErr := uc.publisher.PublishUserDeleted(ctx, id, adsRemoved); pubErr != nil {
			uc.logger.Warn("failed to publish user deleted event",
				zap.Int64("user_id", id), zap.Error(pubErr))
		}
	}
	return nil
}

// attachLocations get-or-creates each named location and links it to the
// user unless already linked, so repeated names never duplicate rows or
// associations.
func (uc *UserUsecase) attachLocations(ctx context.Context, user *entity.AdUser, names []string) error {
	if len(names) == 0 {
		return nil
	}
	linked := make(map[int64]bool, len(user.LocationIDs))
	for _, locID := range user.LocationIDs {
		linked[locID] = true
	}
	for _, name := range names {
		location, err := uc.locations.GetOrCreateByName(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to resolve location %q: %w", name, err)
		}
		if !linked[location.ID] {
			linked[location.ID] = true
			user.LocationIDs = append(user.LocationIDs, location.ID)
		}
	}
	return nil
}

// checkUsernameFree enforces global username uniqueness as a validation
// failure, not a store error. selfID exempts the record being updated.
func (uc *UserUsecase) checkUsernameFree(ctx context.Context, username string, selfID int64) error {
	existing, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check username uniqueness: %w", err)
	}
	if existing.ID == selfID {
		return nil
	}
	return entity.ValidationErrors{
		"username": {"ad user with this username already exists"},
	}
}

// locationsForUsers batches the location fetch for one page of users.
func (uc *UserUsecase) locationsForUsers(ctx context.Context, users []*entity.AdUser) (map[int64]*entity.Location, error) {
	locationIDs := make([]int64, 0)
	seen := make(map[int64]bool)
	for _, user := range users {
		for _, locID := range user.LocationIDs {
			if !seen[locID] {
				seen[locID] = true
				locationIDs = append(locationIDs, locID)
			}
		}
	}
	return uc.locations.GetByIDs(ctx, locationIDs)
}

// userView projects a user without the password field.
func userView(user *entity.AdUser, locations map[int64]*entity.Location) UserView {
	return UserView{
		ID:            user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Username:      user.Username,
		Role:          string(user.Role),
		Age:           user.Age,
		LocationNames: locationNames(user, locations),
	}
}
