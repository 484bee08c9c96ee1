package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// AdminRepository is the sqlx path used by hubctl for account bootstrap.
type AdminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db}
}

// FindUser returns nil when the username is free.
func (r *AdminRepository) FindUser(ctx context.Context, username string) (*entities.UserRow, error) {
	var user entities.UserRow
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(constants.GetUserByUsername), username).StructScan(&user)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AdminRepository) InsertAdmin(ctx context.Context, username, passwordHash, fullName string) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, r.db.Rebind(constants.InsertAdminUser), username, passwordHash, fullName, now, now)
	return err
}
