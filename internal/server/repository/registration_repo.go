package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/yolked/yolked/internal/server/models"
)

// DB is a DBTX that can also open transactions. *pgxpool.Pool satisfies it.
type DB interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

type RegistrationRepository struct {
	db DB
}

func NewRegistrationRepository(db DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// CreateUserWithProfile inserts the user and its profile row in one
// transaction, so a registered account always has a profile row for the
// onboarding UPDATE to hit. Empty names stay NULL until onboarding.
func (r *RegistrationRepository) CreateUserWithProfile(ctx context.Context, user *models.User, firstName, lastName string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := NewUserRepository(tx).CreateUser(ctx, user); err != nil {
		return err
	}
	query := `
		INSERT INTO profiles (user_id, first_name, last_name)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
	`
	if _, err := tx.Exec(ctx, query, user.ID, firstName, lastName); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
