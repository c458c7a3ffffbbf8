package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/MohammadDaleen/HomeEase/internal/domain"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, house_id, first_name, last_name, email, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user domain.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) ListByHouseID(ctx context.Context, houseID uuid.UUID) ([]*domain.User, error) {
	query := `
		SELECT id, house_id, first_name, last_name, email, created_at, updated_at
		FROM users
		WHERE house_id = $1
		ORDER BY first_name, last_name
	`

	var users []*domain.User
	err := r.db.SelectContext(ctx, &users, query, houseID)
	if err != nil {
		return nil, err
	}

	return users, nil
}
