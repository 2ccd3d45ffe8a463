package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/karinaconstandache/PhotoBooker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAndGetPhotographers(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	alice := e.register(t, "alice", models.RolePhotographer)
	bob := e.register(t, "bob", models.RoleClient)

	list, err := e.photographers.ListPhotographers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "alice", list[0].Username)
	assert.Equal(t, "First Last", list[0].Name)

	got, err := e.photographers.GetPhotographer(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, got.ID)

	_, err = e.photographers.GetPhotographer(ctx, bob.UserID)
	assert.True(t, IsCode(err, ErrorCodeNotFound))

	_, err = e.photographers.GetPhotographer(ctx, 9999)
	assert.True(t, IsCode(err, ErrorCodeNotFound))
}

func TestUpdateOwnProfile(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	alice := e.register(t, "alice", models.RolePhotographer)
	bob := e.register(t, "bob", models.RoleClient)

	bio := "I shoot weddings"
	got, err := e.photographers.UpdateOwnProfile(ctx, alice.UserID, models.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	require.NotNil(t, got.Bio)
	assert.Equal(t, bio, *got.Bio)

	stored, err := e.photographers.GetPhotographer(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, bio, *stored.Bio)

	_, err = e.photographers.UpdateOwnProfile(ctx, bob.UserID, models.UpdateProfileRequest{Bio: &bio})
	assert.True(t, IsCode(err, ErrorCodeNotFound))

	long := strings.Repeat("x", 1001)
	_, err = e.photographers.UpdateOwnProfile(ctx, alice.UserID, models.UpdateProfileRequest{Bio: &long})
	assert.True(t, IsCode(err, ErrorCodeValidation))
}

func TestDeleteOwnAccount_Cascades(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	alice := e.register(t, "alice", models.RolePhotographer)
	p := e.createPortfolio(t, alice.UserID, "Weddings")

	_, err := e.catalog.UploadImage(ctx, p.ID, alice.UserID, upload("a.jpg", jpegBytes(t, 600, 300), 0))
	require.NoError(t, err)
	require.NotEmpty(t, e.store.Keys())

	require.NoError(t, e.photographers.DeleteOwnAccount(ctx, alice.UserID))

	list, err := e.catalog.ListByPhotographer(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = e.catalog.GetPortfolio(ctx, p.ID)
	assert.True(t, IsCode(err, ErrorCodeNotFound))
	assert.Empty(t, e.store.Keys())

	err = e.photographers.DeleteOwnAccount(ctx, alice.UserID)
	assert.True(t, IsCode(err, ErrorCodeNotFound))
}

func TestProfileQRCode(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	alice := e.register(t, "alice", models.RolePhotographer)
	bob := e.register(t, "bob", models.RoleClient)

	png, err := e.photographers.ProfileQRCode(ctx, alice.UserID, 256)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = e.photographers.ProfileQRCode(ctx, bob.UserID, 256)
	assert.True(t, IsCode(err, ErrorCodeNotFound))

	_, err = e.photographers.ProfileQRCode(ctx, alice.UserID, 10)
	assert.True(t, IsCode(err, ErrorCodeValidation))
}
