package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdminUser creates the initial admin account when no admin exists yet.
// A blank password disables seeding so production deployments can opt out.
func EnsureAdminUser(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration, password string) error {
	if password == "" {
		return nil
	}

	exists, err := adminExists(ctx, pool, timeout)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	ctxInsert, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	_, err = pool.Exec(ctxInsert, `
		INSERT INTO users (id, name, last_name, phone_number, email, username, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'admin', TRUE)
	`, uuid.NewString(), "Admin", "Admin", "0000000000", "admin@localhost.local", "admin", string(hash))
	if err != nil {
		return fmt.Errorf("insert seed admin: %w", err)
	}
	return nil
}

func adminExists(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration) (bool, error) {
	ctxCheck, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	row := pool.QueryRow(ctxCheck, "SELECT EXISTS(SELECT 1 FROM users WHERE role = 'admin')")
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("check admin exists: %w", err)
	}
	return exists, nil
}
