package repository

import (
	"context"
	"testing"
	"time"

	"github.com/karinaconstandache/PhotoBooker/internal/models"
	"github.com/karinaconstandache/PhotoBooker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPhotographer(t *testing.T, users UserRepository, username string) *models.User {
	t.Helper()
	u := &models.User{
		Username:     username,
		PasswordHash: "hash",
		FirstName:    "Alice",
		LastName:     "Smith",
		Role:         models.RolePhotographer,
	}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func seedPortfolio(t *testing.T, portfolios PortfolioRepository, ownerID uint, title string, created time.Time) *models.Portfolio {
	t.Helper()
	p := &models.Portfolio{
		Title:          title,
		Description:    "desc",
		Category:       models.CategoryWedding,
		CreatedDate:    created,
		PhotographerID: ownerID,
	}
	require.NoError(t, portfolios.Create(context.Background(), p))
	return p
}

func TestUserRepository_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(testutil.SetupDB(t))
	alice := seedPhotographer(t, users, "alice")

	got, err := users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)
	assert.Equal(t, models.RolePhotographer, got.Role)

	_, err = users.GetByUsername(ctx, "Alice")
	assert.ErrorIs(t, err, ErrNotFound)

	exists, err := users.UsernameExists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = users.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	users := NewUserRepository(testutil.SetupDB(t))
	seedPhotographer(t, users, "alice")

	err := users.Create(context.Background(), &models.User{
		Username: "alice", PasswordHash: "x", FirstName: "A", LastName: "B", Role: models.RoleClient,
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserRepository_ListByRoleAndUpdate(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(testutil.SetupDB(t))
	alice := seedPhotographer(t, users, "alice")
	require.NoError(t, users.Create(ctx, &models.User{
		Username: "bob", PasswordHash: "x", FirstName: "Bob", LastName: "Client", Role: models.RoleClient,
	}))

	photographers, err := users.ListByRole(ctx, models.RolePhotographer)
	require.NoError(t, err)
	require.Len(t, photographers, 1)
	assert.Equal(t, "alice", photographers[0].Username)

	bio := "Wedding photographer"
	alice.Bio = &bio
	require.NoError(t, users.Update(ctx, alice))

	got, err := users.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Bio)
	assert.Equal(t, bio, *got.Bio)

	assert.ErrorIs(t, users.Update(ctx, &models.User{ID: 999}), ErrNotFound)
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupDB(t)
	users := NewUserRepository(db)
	portfolios := NewPortfolioRepository(db)

	alice := seedPhotographer(t, users, "alice")
	p := seedPortfolio(t, portfolios, alice.ID, "Weddings", time.Now())
	require.NoError(t, portfolios.CreateImage(ctx, &models.PortfolioImage{
		ImageURL: "http://x/a.jpg", StorageKey: "a.jpg", ThumbnailKey: "thumbs/a.jpg", PortfolioID: p.ID,
	}))

	keys, err := portfolios.ListImageKeysByPhotographer(ctx, alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.jpg", "thumbs/a.jpg"}, keys)

	require.NoError(t, users.Delete(ctx, alice.ID))

	list, err := portfolios.ListByPhotographer(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = portfolios.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var imageCount int64
	require.NoError(t, db.Model(&models.PortfolioImage{}).Count(&imageCount).Error)
	assert.Zero(t, imageCount)

	assert.ErrorIs(t, users.Delete(ctx, alice.ID), ErrNotFound)
}

func TestPortfolioRepository_ImagesOrdered(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupDB(t)
	users := NewUserRepository(db)
	portfolios := NewPortfolioRepository(db)

	alice := seedPhotographer(t, users, "alice")
	p := seedPortfolio(t, portfolios, alice.ID, "Weddings", time.Now())
	for _, order := range []int{3, 1, 2, 1} {
		require.NoError(t, portfolios.CreateImage(ctx, &models.PortfolioImage{
			ImageURL: "http://x", DisplayOrder: order, PortfolioID: p.ID,
		}))
	}

	got, err := portfolios.GetByIDWithImages(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Images, 4)

	var orders []int
	for _, img := range got.Images {
		orders = append(orders, img.DisplayOrder)
	}
	assert.Equal(t, []int{1, 1, 2, 3}, orders)
	assert.Less(t, got.Images[0].ID, got.Images[1].ID)
	assert.Equal(t, "Alice Smith", got.Photographer.FullName())
}

func TestPortfolioRepository_ListOrderAndUpdate(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupDB(t)
	users := NewUserRepository(db)
	portfolios := NewPortfolioRepository(db)

	alice := seedPhotographer(t, users, "alice")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	older := seedPortfolio(t, portfolios, alice.ID, "Older", base)
	seedPortfolio(t, portfolios, alice.ID, "Newer", base.Add(time.Hour))

	all, err := portfolios.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Newer", all[0].Title)

	older.Title = "Portraits now"
	older.Category = models.CategoryPortraits
	require.NoError(t, portfolios.Update(ctx, older))

	got, err := portfolios.GetByID(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, "Portraits now", got.Title)
	assert.Equal(t, models.CategoryPortraits, got.Category)
}

func TestPortfolioRepository_DeleteReturnsImages(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupDB(t)
	users := NewUserRepository(db)
	portfolios := NewPortfolioRepository(db)

	alice := seedPhotographer(t, users, "alice")
	p := seedPortfolio(t, portfolios, alice.ID, "Weddings", time.Now())
	require.NoError(t, portfolios.CreateImage(ctx, &models.PortfolioImage{
		ImageURL: "http://x", StorageKey: "k.jpg", PortfolioID: p.ID,
	}))

	removed, err := portfolios.Delete(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.Equal(t, "k.jpg", removed[0].StorageKey)

	_, err = portfolios.Delete(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, portfolios.DeleteImage(ctx, removed[0].ID), ErrNotFound)
}
