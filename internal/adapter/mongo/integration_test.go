//go:build integration

package mongo

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/Glassyflute/adboard/internal/entity"
	"github.com/Glassyflute/adboard/internal/port/repository"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const testDatabase = "adboard_test"

var testClient *mongo.Client

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	if err := pool.Client.Ping(); err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "6.0",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start MongoDB resource: %s", err)
	}

	uri := fmt.Sprintf("mongodb://%s", resource.GetHostPort("27017/tcp"))
	if err := pool.Retry(func() error {
		var errRetry error
		testClient, errRetry = mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
		if errRetry != nil {
			return errRetry
		}
		return testClient.Ping(context.Background(), nil)
	}); err != nil {
		log.Fatalf("Could not connect to MongoDB: %s", err)
	}

	if err := EnsureIndexes(context.Background(), testClient.Database(testDatabase)); err != nil {
		log.Fatalf("Could not ensure indexes: %s", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Printf("Could not purge MongoDB resource: %s", err)
	}
	os.Exit(code)
}

func resetDatabase(t *testing.T) {
	t.Helper()
	require.NoError(t, testClient.Database(testDatabase).Drop(context.Background()))
	require.NoError(t, EnsureIndexes(context.Background(), testClient.Database(testDatabase)))
}

func TestSequenceAllocatesDistinctIDs(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := NewCategoryRepository(testClient, testDatabase)

	first, err := repo.Create(ctx, &entity.Category{Name: "books", IsActive: true})
	require.NoError(t, err)
	second, err := repo.Create(ctx, &entity.Category{Name: "pets", IsActive: true})
	require.NoError(t, err)

	assert.Equal(t, first+1, second)
}

func TestCategoryRepositoryCRUD(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := NewCategoryRepository(testClient, testDatabase)

	id, err := repo.Create(ctx, &entity.Category{Name: "books", IsActive: true})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "books", got.Name)
	assert.True(t, got.IsActive)

	got.IsActive = false
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLocationGetOrCreateByName(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := NewLocationRepository(testClient, testDatabase)

	first, err := repo.GetOrCreateByName(ctx, "Moscow")
	require.NoError(t, err)
	second, err := repo.GetOrCreateByName(ctx, "Moscow")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other, err := repo.GetOrCreateByName(ctx, "moscow")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestAdUserRepositoryUsernameLookup(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := NewAdUserRepository(testClient, testDatabase)

	_, err := repo.Create(ctx, &entity.AdUser{
		FirstName: "Anna", Username: "anna", Password: "secret-pass",
		Role: entity.RoleMember, Age: 25,
	})
	require.NoError(t, err)

	got, err := repo.GetByUsername(ctx, "anna")
	require.NoError(t, err)
	assert.Equal(t, "Anna", got.FirstName)

	_, err = repo.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func seedAdListFixture(t *testing.T) (*AdRepository, []int64) {
	t.Helper()
	ctx := context.Background()
	users := NewAdUserRepository(testClient, testDatabase)
	locations := NewLocationRepository(testClient, testDatabase)
	ads := NewAdRepository(testClient, testDatabase)

	moscow, err := locations.GetOrCreateByName(ctx, "Moscow")
	require.NoError(t, err)
	kazan, err := locations.GetOrCreateByName(ctx, "Kazan")
	require.NoError(t, err)

	annaID, err := users.Create(ctx, &entity.AdUser{
		FirstName: "Anna", Username: "anna", Password: "secret-pass",
		Role: entity.RoleMember, LocationIDs: []int64{moscow.ID},
	})
	require.NoError(t, err)
	borisID, err := users.Create(ctx, &entity.AdUser{
		FirstName: "Boris", Username: "boris", Password: "secret-pass",
		Role: entity.RoleMember, LocationIDs: []int64{kazan.ID},
	})
	require.NoError(t, err)

	fixtures := []entity.Ad{
		{Name: "Mountain bike", Price: 500, IsPublished: true, AuthorID: &annaID, CategoryID: 1},
		{Name: "City bike", Price: 300, IsPublished: true, AuthorID: &borisID, CategoryID: 1},
		{Name: "Guitar", Price: 500, IsPublished: true, AuthorID: &annaID, CategoryID: 2},
		{Name: "Piano", Price: 900, IsPublished: false, AuthorID: &borisID, CategoryID: 2},
	}
	var ids []int64
	for i := range fixtures {
		id, err := ads.Create(ctx, &fixtures[i])
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ads, ids
}

func TestAdRepositoryList(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	ads, ids := seedAdListFixture(t)

	t.Run("SortsByPriceDescThenIDAsc", func(t *testing.T) {
		page, total, err := ads.List(ctx, entity.AdFilter{}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		require.Len(t, page, 4)
		// 900, then the two 500s in insertion order, then 300.
		assert.Equal(t, ids[3], page[0].ID)
		assert.Equal(t, ids[0], page[1].ID)
		assert.Equal(t, ids[2], page[2].ID)
		assert.Equal(t, ids[1], page[3].ID)
	})

	t.Run("TextFilterIsCaseInsensitive", func(t *testing.T) {
		page, total, err := ads.List(ctx, entity.AdFilter{Text: "BIKE"}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, page, 2)
	})

	t.Run("CategoryFilter", func(t *testing.T) {
		_, total, err := ads.List(ctx, entity.AdFilter{CategoryIDs: []int64{2}}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("PriceRange", func(t *testing.T) {
		from, to := int64(301), int64(899)
		page, total, err := ads.List(ctx, entity.AdFilter{PriceFrom: &from, PriceTo: &to}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, ad := range page {
			assert.GreaterOrEqual(t, ad.Price, from)
			assert.LessOrEqual(t, ad.Price, to)
		}
	})

	t.Run("LocationFilterJoinsThroughAuthors", func(t *testing.T) {
		page, total, err := ads.List(ctx, entity.AdFilter{Location: "mos"}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, ad := range page {
			require.NotNil(t, ad.AuthorID)
		}

		_, total, err = ads.List(ctx, entity.AdFilter{Location: "Nowhere"}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("OutOfRangePageClampsToLast", func(t *testing.T) {
		page, total, err := ads.List(ctx, entity.AdFilter{}, 99, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		// 4 ads at page size 3 leave one ad on the last page.
		require.Len(t, page, 1)
		assert.Equal(t, ids[1], page[0].ID)
	})

	t.Run("PagesCoverAllRows", func(t *testing.T) {
		seen := make(map[int64]bool)
		for p := 1; p <= 2; p++ {
			page, _, err := ads.List(ctx, entity.AdFilter{}, p, 3)
			require.NoError(t, err)
			for _, ad := range page {
				assert.False(t, seen[ad.ID], "ad %d appeared on two pages", ad.ID)
				seen[ad.ID] = true
			}
		}
		assert.Len(t, seen, 4)
	})
}

func TestAdRepositoryCascades(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	ads, _ := seedAdListFixture(t)

	removed, err := ads.DeleteByCategory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, total, err := ads.List(ctx, entity.AdFilter{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestCountPublishedByAuthors(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	_, _ = seedAdListFixture(t)
	ads := NewAdRepository(testClient, testDatabase)
	users := NewAdUserRepository(testClient, testDatabase)

	anna, err := users.GetByUsername(ctx, "anna")
	require.NoError(t, err)
	boris, err := users.GetByUsername(ctx, "boris")
	require.NoError(t, err)

	counts, err := ads.CountPublishedByAuthors(ctx, []int64{anna.ID, boris.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[anna.ID])
	// Boris's piano is unpublished and must not count.
	assert.Equal(t, int64(1), counts[boris.ID])
}
