package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/Hack4Good/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const uniqueViolation = "23505"

type SignupRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSignupRepo(db *dbpg.DB) *SignupRepository {
	return &SignupRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *SignupRepository) Create(ctx context.Context, s *domain.Signup) error {
	query := `INSERT INTO signups (id, event_id, user_id, role, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	// no retry: a replayed insert would surface as a duplicate
	_, err := r.db.Master.ExecContext(ctx, query, s.ID, s.EventID, s.UserID, s.Role, s.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert signup: %w", err)
	}

	return nil
}

func (r *SignupRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM signups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete signup: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("signup rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSignupNotFound
	}

	return nil
}

func (r *SignupRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Signup, error) {
	query := `SELECT id, event_id, user_id, role, created_at
			  FROM signups
			  WHERE event_id = $1 AND user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("get signup: %w", err)
	}

	var s domain.Signup
	if err = row.Scan(&s.ID, &s.EventID, &s.UserID, &s.Role, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSignupNotFound
		}
		return nil, fmt.Errorf("scan signup: %w", err)
	}

	return &s, nil
}

func (r *SignupRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Signup, error) {
	query := `SELECT id, event_id, user_id, role, created_at
              FROM signups
              WHERE event_id = $1
              ORDER BY created_at, id`

	return r.list(ctx, query, eventID)
}

func (r *SignupRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Signup, error) {
	query := `SELECT id, event_id, user_id, role, created_at
              FROM signups
              WHERE user_id = $1
              ORDER BY created_at, id`

	return r.list(ctx, query, userID)
}

func (r *SignupRepository) list(ctx context.Context, query string, arg string) ([]*domain.Signup, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list signups: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Signup, 0)
	for rows.Next() {
		var s domain.Signup
		if err = rows.Scan(&s.ID, &s.EventID, &s.UserID, &s.Role, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan signup: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}
