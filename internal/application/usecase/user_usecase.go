package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-orders-api/internal/application/dto"
	"github.com/jhoicas/inventory-orders-api/internal/domain"
	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
	"github.com/jhoicas/inventory-orders-api/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios. Las contraseñas se guardan con bcrypt.
type UserUseCase struct {
	repo repository.UserRepository
	cost int
}

// NewUserUseCase construye el caso de uso. cost <= 0 usa bcrypt.DefaultCost.
func NewUserUseCase(repo repository.UserRepository, cost int) *UserUseCase {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &UserUseCase{repo: repo, cost: cost}
}

// Create crea un usuario; rol por defecto Employee. Username repetido -> ErrDuplicate.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if strings.TrimSpace(in.Username) == "" {
		return nil, domain.Invalid("username", "username is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, domain.Invalid("email", "email is required")
	}
	if in.Password == "" {
		return nil, domain.Invalid("password", "password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, err
	}
	role := entity.RoleEmployee
	if in.Role != nil && *in.Role != "" {
		role = *in.Role
	}
	u := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return dto.UserFromEntity(u), nil
}

func (uc *UserUseCase) List(ctx context.Context) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *dto.UserFromEntity(u))
	}
	return &dto.UserListResponse{Users: items}, nil
}

// Update reemplaza los campos presentes; un password no vacío se vuelve a hashear.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NotFound("User")
	}
	if in.Username != nil {
		if strings.TrimSpace(*in.Username) == "" {
			return nil, domain.Invalid("username", "username cannot be empty")
		}
		u.Username = *in.Username
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, notFoundAs(err, "User")
	}
	return dto.UserFromEntity(u), nil
}

func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	return notFoundAs(uc.repo.Delete(ctx, id), "User")
}
