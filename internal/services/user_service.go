package services

import (
	"context"
	"errors"

	"github.com/JaunMarin423/CrudUsers/internal/models"
	"github.com/JaunMarin423/CrudUsers/internal/utils"
	"github.com/JaunMarin423/CrudUsers/internal/validation"
)

type UserService struct {
	users  UserStore
	hasher *Hasher
}

func NewUserService(users UserStore, hasher *Hasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, utils.NotFound("Usuario no encontrado")
		}
		return nil, err
	}
	return user, nil
}

// Create is the admin path; unlike registration it may assign a role.
func (s *UserService) Create(ctx context.Context, in validation.UserInput) (*models.User, error) {
	if errs := validation.Full(in); len(errs) > 0 {
		return nil, utils.ValidationFailed(errs)
	}

	if err := checkUniqueness(ctx, s.users, in.Email, in.Username, in.PhoneNumber); err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, &models.User{
		Name:           in.Name,
		LastName:       in.LastName,
		MotherLastName: in.MotherLastName,
		PhoneNumber:    in.PhoneNumber,
		Email:          in.Email,
		Username:       in.Username,
		PasswordHash:   hash,
		Role:           role,
		IsActive:       true,
	})
}

// Update applies only the fields present in the patch. Password changes are
// not accepted here. Uniqueness on changed fields is enforced by the unique
// indexes and surfaced through the error normalizer.
func (s *UserService) Update(ctx context.Context, id string, patch validation.UserPatch) (*models.User, error) {
	if errs := validation.Partial(patch); len(errs) > 0 {
		return nil, utils.ValidationFailed(errs)
	}

	user, err := s.users.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, utils.NotFound("Usuario no encontrado")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFound("Usuario no encontrado")
	}
	return nil
}
