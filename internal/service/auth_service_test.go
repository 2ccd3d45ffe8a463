package service

import (
	"context"
	"errors"
	"testing"

	"github.com/karinaconstandache/PhotoBooker/internal/models"
	"github.com/karinaconstandache/PhotoBooker/pkg/bcrypt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_IssuesTokenWithRole(t *testing.T) {
	e := newEnv(t)

	resp := e.register(t, "alice", models.RolePhotographer)
	assert.NotZero(t, resp.UserID)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, models.RolePhotographer, resp.Role)

	claims, err := e.tokens.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "Photographer", claims.Role)
	assert.Equal(t, "alice", claims.Name)
	assert.Equal(t, "First", claims.GivenName)
	assert.Equal(t, "Last", claims.FamilyName)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, id)

	stored, err := e.users.GetByID(context.Background(), resp.UserID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	e := newEnv(t)
	first := e.register(t, "alice", models.RolePhotographer)

	_, err := e.auth.Register(context.Background(), models.RegisterRequest{
		Username: "alice", Password: "another1", FirstName: "Evil", LastName: "Twin", Role: models.RoleClient,
	})
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrorCodeConflict))

	stored, err := e.users.GetByID(context.Background(), first.UserID)
	require.NoError(t, err)
	assert.Equal(t, "First", stored.FirstName)
	assert.Equal(t, models.RolePhotographer, stored.Role)

	_, err = e.auth.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "secret123"})
	assert.NoError(t, err)
}

func TestRegister_UniqueConstraintRace(t *testing.T) {
	e := newEnv(t)
	e.register(t, "alice", models.RoleClient)

	e.users = racingUsers{e.users}
	e.rebuild()

	_, err := e.auth.Register(context.Background(), models.RegisterRequest{
		Username: "alice", Password: "secret123", FirstName: "A", LastName: "B", Role: models.RoleClient,
	})
	assert.True(t, IsCode(err, ErrorCodeConflict))
}

func TestRegister_Validation(t *testing.T) {
	e := newEnv(t)
	cases := []models.RegisterRequest{
		{Username: "al", Password: "secret123", FirstName: "A", LastName: "B", Role: models.RoleClient},
		{Username: "alice", Password: "123", FirstName: "A", LastName: "B", Role: models.RoleClient},
		{Username: "alice", Password: "secret123", LastName: "B", Role: models.RoleClient},
		{Username: "alice", Password: "secret123", FirstName: "A", LastName: "B"},
	}
	for _, req := range cases {
		_, err := e.auth.Register(context.Background(), req)
		assert.True(t, IsCode(err, ErrorCodeValidation), "%+v", req)
	}
}

func TestLogin_GenericFailure(t *testing.T) {
	e := newEnv(t)
	e.register(t, "alice", models.RolePhotographer)

	_, wrongPassword := e.auth.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "nope-nope"})
	_, unknownUser := e.auth.Login(context.Background(), models.LoginRequest{Username: "mallory", Password: "secret123"})

	a, ok := AsError(wrongPassword)
	require.True(t, ok)
	b, ok := AsError(unknownUser)
	require.True(t, ok)

	assert.Equal(t, ErrorCodeAuthentication, a.Code)
	assert.Equal(t, *a, *b)
}

func TestLogin_UnknownUserStillComparesHash(t *testing.T) {
	e := newEnv(t)
	e.register(t, "alice", models.RolePhotographer)

	var hashes []string
	e.auth.compare = func(hash, password string) error {
		hashes = append(hashes, hash)
		return bcrypt.ComparePassword(hash, password)
	}

	_, err := e.auth.Login(context.Background(), models.LoginRequest{Username: "mallory", Password: "secret123"})
	assert.True(t, IsCode(err, ErrorCodeAuthentication))
	require.Len(t, hashes, 1)
	assert.True(t, bcrypt.VerifyHash(hashes[0]))

	_, err = e.auth.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "nope-nope"})
	assert.True(t, IsCode(err, ErrorCodeAuthentication))
	require.Len(t, hashes, 2)
	assert.NotEqual(t, hashes[0], hashes[1])
}

func TestLogin_MalformedStoredHash(t *testing.T) {
	e := newEnv(t)
	resp := e.register(t, "alice", models.RolePhotographer)

	require.NoError(t, e.db.Model(&models.User{}).Where("id = ?", resp.UserID).Update("password_hash", "secret123").Error)

	_, err := e.auth.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "secret123"})
	assert.True(t, IsCode(err, ErrorCodeAuthentication))
}

func TestLogin_ReturnsRegisteredRole(t *testing.T) {
	e := newEnv(t)
	e.register(t, "bob", models.RoleClient)

	resp, err := e.auth.Login(context.Background(), models.LoginRequest{Username: "bob", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleClient, resp.Role)

	claims, err := e.tokens.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "Client", claims.Role)
}

func TestRegister_WelcomeEmail(t *testing.T) {
	e := newEnv(t)

	e.register(t, "plainname", models.RoleClient)
	assert.Empty(t, e.mailer.sent)

	e.register(t, "alice@example.com", models.RolePhotographer)
	assert.Equal(t, []string{"alice@example.com"}, e.mailer.sent)

	// Delivery failures never fail the registration.
	e.mailer.err = errors.New("provider down")
	e.register(t, "bob@example.com", models.RoleClient)
}
