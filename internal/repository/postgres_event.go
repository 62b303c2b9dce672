package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/Hack4Good/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

const eventColumns = `id, title, description, to_char(event_date, 'YYYY-MM-DD'),
	to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), location,
	image_url, capacity, volunteer_quota, volunteer_event_type, questions,
	created_by, created_at`

// id breaks ties between events created in the same statement.
const listEventsQuery = `SELECT ` + eventColumns + ` FROM events ORDER BY created_at DESC, id`

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, event_date, start_time, end_time, location,
			  	image_url, capacity, volunteer_quota, volunteer_event_type, questions, created_by, created_at)
			  VALUES ($1, $2, $3, $4::date, $5::time, $6::time, $7, $8, $9, $10, $11, $12, $13, $14)`

	var quota sql.NullInt64
	if e.VolunteerQuota != nil {
		quota = sql.NullInt64{Int64: int64(*e.VolunteerQuota), Valid: true}
	}
	kind := sql.NullString{String: string(e.VolunteerEventType), Valid: e.VolunteerEventType != ""}

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Date, e.StartTime, e.EndTime, e.Location,
		e.ImageURL, e.Capacity, quota, kind, pq.Array(e.Questions), e.CreatedBy, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, listEventsQuery)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*domain.Event, error) {
	var (
		e         domain.Event
		imageURL  sql.NullString
		quota     sql.NullInt64
		kind      sql.NullString
		questions pq.StringArray
	)

	if err := s.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.StartTime, &e.EndTime, &e.Location,
		&imageURL, &e.Capacity, &quota, &kind, &questions, &e.CreatedBy, &e.CreatedAt,
	); err != nil {
		return nil, err
	}

	e.ImageURL = imageURL.String
	if quota.Valid {
		q := int(quota.Int64)
		e.VolunteerQuota = &q
	}
	e.VolunteerEventType = domain.VolunteerEventType(kind.String)
	e.Questions = []string(questions)
	if e.Questions == nil {
		e.Questions = []string{}
	}

	return &e, nil
}
