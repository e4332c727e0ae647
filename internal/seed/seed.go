package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultAdminEmail    = "admin@campushub.app"
	defaultAdminPassword = "admin123"
	defaultAdminName     = "System Administrator"
)

// CreateDefaultData seeds the default admin account so a fresh database is
// immediately usable. Existing accounts are left untouched.
func CreateDefaultData(ctx context.Context, db *pgxpool.Pool, lgr zerolog.Logger) error {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, defaultAdminEmail,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for admin account: %w", err)
	}
	if exists {
		lgr.Debug().Str("email", defaultAdminEmail).Msg("Admin account already exists, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO users (email, password_hash, name, role, is_active)
		VALUES ($1, $2, $3, 'admin', TRUE)`,
		defaultAdminEmail, string(hash), defaultAdminName)
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}
