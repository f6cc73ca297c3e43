package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// UserRepo provides methods for user operations.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetOrCreateByEmail gets an existing user by email, or creates one.
func (r *UserRepo) GetOrCreateByEmail(ctx context.Context, name, email string) (User, error) {
	var user User
	var createdAtStr string
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, email, created_at FROM users WHERE email = ?",
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &createdAtStr)

	if err == nil {
		if user.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
			return User{}, fmt.Errorf("failed to parse created_at timestamp: %w", err)
		}
		return user, nil
	}
	if err != sql.ErrNoRows {
		return User{}, fmt.Errorf("failed to query user: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO users (name, email) VALUES (?, ?)",
		name, email,
	)
	if err != nil {
		return User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return User{}, fmt.Errorf("failed to get inserted user id: %w", err)
	}

	err = r.db.QueryRowContext(ctx,
		"SELECT id, name, email, created_at FROM users WHERE id = ?",
		id,
	).Scan(&user.ID, &user.Name, &user.Email, &createdAtStr)
	if err != nil {
		return User{}, fmt.Errorf("failed to query created user: %w", err)
	}
	if user.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return User{}, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}

	return user, nil
}
