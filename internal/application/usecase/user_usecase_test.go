package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-orders-api/internal/application/dto"
	"github.com/jhoicas/inventory-orders-api/internal/application/usecase"
	"github.com/jhoicas/inventory-orders-api/internal/domain"
	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
	"github.com/jhoicas/inventory-orders-api/internal/testutil/memstore"
)

func TestUserCreate_GuardaHashBcrypt(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	uc := usecase.NewUserUseCase(s.Users(), bcrypt.MinCost)

	out, err := uc.Create(ctx, dto.CreateUserRequest{Username: "ana", Email: "ana@example.com", Password: "s3creta"})
	require.NoError(t, err)
	assert.Equal(t, "U001", out.ID)
	assert.Equal(t, entity.RoleEmployee, out.Role)

	u, err := s.Users().GetByUsername(ctx, "ana")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotEqual(t, "s3creta", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3creta")))

	_, err = uc.Create(ctx, dto.CreateUserRequest{Username: "ana", Email: "otra@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	_, err = uc.Create(ctx, dto.CreateUserRequest{Username: "luis", Email: "luis@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdate_PasswordVacioConservaHash(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	uc := usecase.NewUserUseCase(s.Users(), bcrypt.MinCost)
	created, err := uc.Create(ctx, dto.CreateUserRequest{Username: "ana", Email: "ana@example.com", Password: "uno"})
	require.NoError(t, err)
	before, err := s.Users().GetByID(ctx, created.UserID)
	require.NoError(t, err)

	_, err = uc.Update(ctx, created.UserID, dto.UpdateUserRequest{Role: ptr(entity.RoleAdmin)})
	require.NoError(t, err)
	after, err := s.Users().GetByID(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
	assert.Equal(t, entity.RoleAdmin, after.Role)

	_, err = uc.Update(ctx, created.UserID, dto.UpdateUserRequest{Password: "dos"})
	require.NoError(t, err)
	after, err = s.Users().GetByID(ctx, created.UserID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(after.PasswordHash), []byte("dos")))

	require.NoError(t, uc.Delete(ctx, created.UserID))
	err = uc.Delete(ctx, created.UserID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "User not found", err.Error())
}
