package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-orders-api/internal/application/auth"
	"github.com/jhoicas/inventory-orders-api/internal/application/dto"
	"github.com/jhoicas/inventory-orders-api/internal/domain"
	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
	"github.com/jhoicas/inventory-orders-api/internal/testutil/memstore"
	"github.com/jhoicas/inventory-orders-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-jwt-signing"

func seedUser(t *testing.T, s *memstore.Store, username, password, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{Username: username, Email: username + "@example.com", PasswordHash: string(hash), Role: role}
	require.NoError(t, s.Users().Create(context.Background(), u))
	return u
}

func TestLogin_OK_FirmaToken(t *testing.T) {
	s := memstore.New()
	u := seedUser(t, s, "admin", "clave", entity.RoleAdmin)
	uc := auth.NewAuthUseCase(s.Users(), auth.JWTConfig{Secret: testSecret, ExpMinutes: 30, Issuer: "test"})

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "clave"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, u.ID, resp.User.UserID)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)
	require.NotEmpty(t, resp.Token)

	claims, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, "test", claims.Issuer)
}

func TestLogin_SinSecretNoEmiteToken(t *testing.T) {
	s := memstore.New()
	seedUser(t, s, "ana", "clave", entity.RoleEmployee)
	uc := auth.NewAuthUseCase(s.Users(), auth.JWTConfig{})

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "clave"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Token)
}

// Usuario inexistente y contraseña errónea son indistinguibles.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	s := memstore.New()
	seedUser(t, s, "ana", "clave", entity.RoleEmployee)
	uc := auth.NewAuthUseCase(s.Users(), auth.JWTConfig{Secret: testSecret})

	_, errPwd := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "otra"})
	_, errUser := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "clave"})
	require.ErrorIs(t, errPwd, domain.ErrInvalidCredentials)
	require.ErrorIs(t, errUser, domain.ErrInvalidCredentials)
	assert.Equal(t, errPwd.Error(), errUser.Error())
	assert.Equal(t, "Invalid username or password", errPwd.Error())
}

func TestLogin_CamposVacios(t *testing.T) {
	uc := auth.NewAuthUseCase(memstore.New().Users(), auth.JWTConfig{})

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: " ", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "ana"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
