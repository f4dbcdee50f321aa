package services

import (
	"context"
	"time"

	"github.com/JaunMarin423/CrudUsers/internal/models"
	"github.com/JaunMarin423/CrudUsers/internal/validation"
)

// UserStore is the persistence surface the services need. The pgx-backed repo
// implements it in production; tests substitute fakes.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id string, patch validation.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id string) (bool, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
