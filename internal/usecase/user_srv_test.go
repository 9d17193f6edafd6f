package usecase

import (
	"context"
	"testing"

	"naija-barter/internal/dto/request"
	"naija-barter/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() *request.RegisterRequest {
	return &request.RegisterRequest{
		Email:    "new@example.com",
		Name:     "New User",
		Phone:    "08011122233",
		Username: "newuser",
		Password: "Passw0rd",
	}
}

func TestRegisterSuccess(t *testing.T) {
	f := newFixture()

	resp, err := f.user.Register(context.Background(), validRegisterRequest(), nil)
	require.NoError(t, err)

	assert.Len(t, resp.ID, 6)
	assert.True(t, resp.IsActive)
	assert.False(t, resp.EmailConfirmed)

	stored := f.users.get(resp.ID)
	require.NotNil(t, stored)
	assert.NotEqual(t, "Passw0rd", stored.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("Passw0rd", stored.PasswordHash))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture()
	f.seedUser("aaa111", "new@example.com", "Passw0rd")

	_, err := f.user.Register(context.Background(), validRegisterRequest(), nil)
	require.Error(t, err)
	assert.EqualError(t, err, "email already registered")
}

func TestRegisterWeakPassword(t *testing.T) {
	f := newFixture()

	req := validRegisterRequest()
	req.Password = "short1"

	_, err := f.user.Register(context.Background(), req, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password must")
}

func TestRegisterBusinessRequiresBusinessFields(t *testing.T) {
	f := newFixture()

	req := validRegisterRequest()
	req.IsBusiness = true

	_, err := f.user.Register(context.Background(), req, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "business must have")
}

func TestRegisterBusinessWithAllFields(t *testing.T) {
	f := newFixture()

	name := "Acme Trades"
	regNo := "RC-12345"
	location := "Lagos"
	req := validRegisterRequest()
	req.IsBusiness = true
	req.BusinessName = &name
	req.RegistrationNo = &regNo
	req.Location = &location

	resp, err := f.user.Register(context.Background(), req, nil)
	require.NoError(t, err)
	assert.True(t, resp.IsBusiness)
	assert.Equal(t, &name, resp.BusinessName)
}

func TestRegisterInvalidEmail(t *testing.T) {
	f := newFixture()

	req := validRegisterRequest()
	req.Email = "not-an-email"

	_, err := f.user.Register(context.Background(), req, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestUpdateUserPartial(t *testing.T) {
	f := newFixture()
	f.seedUser("aaa111", "user@example.com", "Passw0rd")

	newName := "Renamed"
	resp, err := f.user.UpdateUser(context.Background(), "aaa111", &request.UserUpdateRequest{
		Name: &newName,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", resp.Name)

	// Untouched fields survive
	stored := f.users.get("aaa111")
	assert.Equal(t, "user@example.com", stored.Email)
	assert.Equal(t, "08012345678", stored.Phone)
}

func TestUpdateUserNotFound(t *testing.T) {
	f := newFixture()

	name := "Ghost"
	_, err := f.user.UpdateUser(context.Background(), "zzz999", &request.UserUpdateRequest{
		Name: &name,
	}, nil)
	require.Error(t, err)
	assert.EqualError(t, err, "user not found")
}

func TestDeactivateUser(t *testing.T) {
	f := newFixture()
	f.seedUser("aaa111", "user@example.com", "Passw0rd")

	require.NoError(t, f.user.DeactivateUser(context.Background(), "aaa111"))
	assert.False(t, f.users.get("aaa111").IsActive)
}

func TestListUsersSkipsInactiveAndSuspended(t *testing.T) {
	f := newFixture()
	f.seedUser("aaa111", "a@example.com", "Passw0rd")

	inactive := f.seedUser("bbb222", "b@example.com", "Passw0rd")
	inactive.IsActive = false
	f.users.put(inactive)

	suspended := f.seedUser("ccc333", "c@example.com", "Passw0rd")
	suspended.IsSuspended = true
	f.users.put(suspended)

	resp, err := f.user.ListUsers(context.Background(), &request.ListRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "aaa111", resp.Data[0].ID)
	assert.Equal(t, int64(1), resp.Pagination.Total)
}
