package services

import (
	"errors"
	"testing"

	"case_desk_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientLifecycle(t *testing.T) {
	db := setupServiceTestDB(t)

	client, err := CreateClient(db, models.ClientInput{
		Name:    "Acme Corporation",
		Email:   "legal@acme.example",
		Address: "<b>1 Main St</b>",
	})
	require.NoError(t, err)
	require.NotNil(t, client.Email)
	assert.Equal(t, "legal@acme.example", *client.Email)
	require.NotNil(t, client.Address)
	assert.Equal(t, "1 Main St", *client.Address)
	assert.Nil(t, client.Phone)

	fetched, err := GetClient(db, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corporation", fetched.Name)

	updated, err := UpdateClient(db, client.ID, models.ClientInput{Name: "Acme Corp", Phone: "555-0200"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated.Name)
	assert.Nil(t, updated.Email)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "555-0200", *updated.Phone)

	clients, err := ListClients(db)
	require.NoError(t, err)
	assert.Len(t, clients, 1)

	require.NoError(t, DeleteClient(db, client.ID))
	_, err = GetClient(db, client.ID)
	assert.True(t, errors.Is(err, ErrClientNotFound))
	assert.True(t, errors.Is(DeleteClient(db, client.ID), ErrClientNotFound))
}

func TestCreateClient_KeepsAddressVerbatim(t *testing.T) {
	db := setupServiceTestDB(t)
	const address = `O'Brien & Sons, Suite "B" (rear entrance)`
	client, err := CreateClient(db, models.ClientInput{Name: "O'Brien & Sons", Address: address})
	require.NoError(t, err)
	require.NotNil(t, client.Address)
	assert.Equal(t, address, *client.Address)

	stored, err := GetClient(db, client.ID)
	require.NoError(t, err)
	assert.Equal(t, address, *stored.Address)
}

func TestCreateClient_RequiresName(t *testing.T) {
	db := setupServiceTestDB(t)
	_, err := CreateClient(db, models.ClientInput{Email: "x@example.com"})
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "name", vErr.Field)
}

func TestUpdateClient_NotFound(t *testing.T) {
	db := setupServiceTestDB(t)
	_, err := UpdateClient(db, "missing", models.ClientInput{Name: "x"})
	assert.True(t, errors.Is(err, ErrClientNotFound))
}

func TestUserService(t *testing.T) {
	db := setupServiceTestDB(t)

	user, err := CreateUser(db, models.UserInput{Name: " John Smith ", Email: "john@firm.test", Role: models.RoleAttorney})
	require.NoError(t, err)
	assert.Equal(t, "John Smith", user.Name)
	assert.True(t, user.IsAttorney())

	_, err = CreateUser(db, models.UserInput{Name: "Jane Doe", Email: "jane@firm.test", Role: "partner"})
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "role", vErr.Field)

	_, err = CreateUser(db, models.UserInput{Name: "Jane Doe", Role: models.RoleClerk})
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "email", vErr.Field)

	users, err := ListUsers(db)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	fetched, err := GetUser(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, fetched.Email)

	_, err = GetUser(db, "missing")
	assert.True(t, errors.Is(err, ErrUserNotFound))
}
