package services

import (
	"context"
	"errors"
	"time"

	"github.com/JaunMarin423/CrudUsers/internal/models"
	"github.com/JaunMarin423/CrudUsers/internal/utils"
	"github.com/JaunMarin423/CrudUsers/internal/validation"
)

type AuthService struct {
	users  UserStore
	hasher *Hasher
	tokens *TokenService
}

func NewAuthService(users UserStore, hasher *Hasher, tokens *TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Register validates the full field set, enforces uniqueness, hashes the
// password, persists the user, and issues a token. The role is always "user";
// only the admin create path may assign roles.
func (s *AuthService) Register(ctx context.Context, in validation.UserInput) (*models.User, string, error) {
	if errs := validation.Full(in); len(errs) > 0 {
		return nil, "", utils.ValidationFailed(errs)
	}

	if err := checkUniqueness(ctx, s.users, in.Email, in.Username, in.PhoneNumber); err != nil {
		return nil, "", err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:           in.Name,
		LastName:       in.LastName,
		MotherLastName: in.MotherLastName,
		PhoneNumber:    in.PhoneNumber,
		Email:          in.Email,
		Username:       in.Username,
		PasswordHash:   hash,
		Role:           models.RoleUser,
		IsActive:       true,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

// Login resolves the identifier (email or username) and verifies the
// password. Both failure modes yield the same generic message so the response
// never reveals whether the identifier exists.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*models.User, string, error) {
	if errs := validation.Login(identifier, password); len(errs) > 0 {
		return nil, "", utils.ValidationFailed(errs)
	}

	user, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, "", utils.Unauthorized("Credenciales inválidas")
		}
		return nil, "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", utils.Unauthorized("Credenciales inválidas")
	}

	now := time.Now()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, "", err
	}
	user.LastLogin = &now

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// checkUniqueness pre-checks the three unique fields so the caller gets a
// named conflict. The unique indexes remain the backstop for the gap between
// this check and the insert.
func checkUniqueness(ctx context.Context, users UserStore, email, username, phone string) error {
	if email != "" {
		exists, err := users.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return utils.Conflict("El campo email ya existe. Por favor, utiliza un valor diferente.")
		}
	}
	if username != "" {
		exists, err := users.ExistsByUsername(ctx, username)
		if err != nil {
			return err
		}
		if exists {
			return utils.Conflict("El campo username ya existe. Por favor, utiliza un valor diferente.")
		}
	}
	if phone != "" {
		exists, err := users.ExistsByPhone(ctx, phone)
		if err != nil {
			return err
		}
		if exists {
			return utils.Conflict("El campo phoneNumber ya existe. Por favor, utiliza un valor diferente.")
		}
	}
	return nil
}
