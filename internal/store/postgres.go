package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/colinjeanne/mealplan/internal/auth"
	"github.com/colinjeanne/mealplan/internal/db"
	"github.com/colinjeanne/mealplan/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = pq.ErrorCode("23505")

// Postgres persists users and claims. This is the canonical claim store.
type Postgres struct {
	db *db.DB
}

func NewPostgres(db *db.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) FindClaim(
	ctx context.Context,
	key string,
) (string, bool, error) {

	var userID uuid.UUID
	err := s.db.QueryRowContext(ctx, `
		SELECT user_id
		FROM claims
		WHERE id = $1
	`, key).Scan(&userID)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: find claim: %v", auth.ErrStorageUnavailable, err)
	}

	return userID.String(), true, nil
}

func (s *Postgres) CreateUserAndClaim(
	ctx context.Context,
	key string,
) (string, error) {

	userID, err := s.createUserAndClaim(ctx, key)
	if err == nil {
		return userID, nil
	}

	// A concurrent resolution of the same never-seen key may have won the
	// insert race. The claims primary key makes the loser observable as a
	// uniqueness violation; converge on the winner's user.
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		logger.Info("concurrent claim creation, reading winner", map[string]any{
			"claim": key,
		})

		winnerID, found, findErr := s.FindClaim(ctx, key)
		if findErr != nil {
			return "", findErr
		}
		if found {
			return winnerID, nil
		}
	}

	return "", fmt.Errorf("%w: create user and claim: %v", auth.ErrStorageUnavailable, err)
}

func (s *Postgres) createUserAndClaim(
	ctx context.Context,
	key string,
) (string, error) {

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var userID uuid.UUID
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO users DEFAULT VALUES
		RETURNING id
	`).Scan(&userID); err != nil {
		return "", err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO claims (id, user_id)
		VALUES ($1, $2)
	`, key, userID); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	return userID.String(), nil
}

// DeleteUser removes a user; the claims FK cascades, so every claim owned
// by the user goes with it.
func (s *Postgres) DeleteUser(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM users
		WHERE id = $1
	`, userID)

	if err != nil {
		return fmt.Errorf("%w: delete user: %v", auth.ErrStorageUnavailable, err)
	}
	return nil
}
