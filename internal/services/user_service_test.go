package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaunMarin423/CrudUsers/internal/models"
	"github.com/JaunMarin423/CrudUsers/internal/utils"
	"github.com/JaunMarin423/CrudUsers/internal/validation"
)

func TestUserCreate_AdminMayAssignRole(t *testing.T) {
	svc := NewUserService(&fakeStore{}, NewHasher())

	in := registerInput()
	in.Role = models.RoleAdmin

	user, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestUserCreate_DefaultsRole(t *testing.T) {
	svc := NewUserService(&fakeStore{}, NewHasher())

	user, err := svc.Create(context.Background(), registerInput())
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestUserUpdate_PartialValidation(t *testing.T) {
	called := false
	svc := NewUserService(&fakeStore{
		updateFunc: func(ctx context.Context, id string, patch validation.UserPatch) (*models.User, error) {
			called = true
			return activeUser("hash"), nil
		},
	}, NewHasher())

	name := "Nuevo"
	_, err := svc.Update(context.Background(), "user-1", validation.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.True(t, called)

	bad := "X1"
	_, err = svc.Update(context.Background(), "user-1", validation.UserPatch{Name: &bad})
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestUserUpdate_Missing(t *testing.T) {
	svc := NewUserService(&fakeStore{}, NewHasher())

	_, err := svc.Update(context.Background(), "ghost", validation.UserPatch{})
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestUserDelete_MissingIsNotFound(t *testing.T) {
	svc := NewUserService(&fakeStore{
		deleteFunc: func(ctx context.Context, id string) (bool, error) {
			return false, nil
		},
	}, NewHasher())

	err := svc.Delete(context.Background(), "ghost")
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestUserGet_Missing(t *testing.T) {
	svc := NewUserService(&fakeStore{}, NewHasher())

	_, err := svc.Get(context.Background(), "ghost")
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}
