package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nvoronova/bookshelf-backend/internal/auth"
	"github.com/nvoronova/bookshelf-backend/internal/models"
)

func newUserService() (*UserService, *fakeUsers, *fakeRoles) {
	users := newFakeUsers()
	roles := newFakeRoles()
	return NewUserService(users, roles, auth.DefaultPasswordHash()), users, roles
}

func TestUserCreateHashesPassword(t *testing.T) {
	svc, users, _ := newUserService()

	u, err := svc.Create(context.Background(), models.CreateUserInput{
		Username: "  alice  ", Password: "s3cret",
	})
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.True(t, u.IsActive)

	stored := users.rows[u.ID]
	require.NotEqual(t, "s3cret", stored.HashedPassword)
	require.True(t, strings.HasPrefix(stored.HashedPassword, "$argon2id$"))
}

func TestUserCreateRejectsBlankFields(t *testing.T) {
	svc, users, _ := newUserService()

	_, err := svc.Create(context.Background(), models.CreateUserInput{Username: "  ", Password: "x"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = svc.Create(context.Background(), models.CreateUserInput{Username: "alice", Password: ""})
	require.ErrorAs(t, err, &ve)
	require.Zero(t, users.createCalls)
}

func TestAuthenticate(t *testing.T) {
	svc, _, _ := newUserService()

	_, err := svc.Create(context.Background(), models.CreateUserInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	u, err := svc.Authenticate(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)

	_, err = svc.Authenticate(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, ErrBadCredentials)

	// an unknown username reads the same as a wrong password
	_, err = svc.Authenticate(context.Background(), "nobody", "s3cret")
	require.ErrorIs(t, err, ErrBadCredentials)
}

func TestAuthenticateUpgradesLegacyHash(t *testing.T) {
	svc, users, _ := newUserService()

	legacy, err := auth.NewBcryptHasher().Hash("s3cret")
	require.NoError(t, err)
	u, err := users.Create(context.Background(), "alice", legacy)
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	upgraded := users.rows[u.ID].HashedPassword
	require.NotEqual(t, legacy, upgraded, "stored hash is replaced after a legacy match")
	require.True(t, strings.HasPrefix(upgraded, "$argon2id$"))

	// and the upgraded hash keeps authenticating
	_, err = svc.Authenticate(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	require.Equal(t, upgraded, users.rows[u.ID].HashedPassword, "no second rewrite")
}

func TestAuthenticateInactiveUser(t *testing.T) {
	svc, _, _ := newUserService()

	u, err := svc.Create(context.Background(), models.CreateUserInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	inactive := false
	_, err = svc.Update(context.Background(), u.ID, models.UpdateUserInput{IsActive: &inactive})
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "alice", "s3cret")
	require.ErrorIs(t, err, ErrInactiveUser)
}

func TestResolveDistinguishesMissingAndInactive(t *testing.T) {
	svc, _, roles := newUserService()

	_, err := svc.Resolve(context.Background(), "nope")
	require.ErrorIs(t, err, ErrUserNotFound)

	u, err := svc.Create(context.Background(), models.CreateUserInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	role, err := roles.Create(context.Background(), string(models.RoleUser), nil)
	require.NoError(t, err)
	require.NoError(t, roles.EnsureLink(context.Background(), u.ID, role.ID))

	resolved, err := svc.Resolve(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"user"}, resolved.Roles)

	inactive := false
	_, err = svc.Update(context.Background(), u.ID, models.UpdateUserInput{IsActive: &inactive})
	require.NoError(t, err)

	_, err = svc.Resolve(context.Background(), u.ID)
	require.ErrorIs(t, err, ErrInactiveUser)
}
