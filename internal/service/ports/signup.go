package ports

import (
	"context"

	"github.com/stpnv0/Hack4Good/internal/domain"
)

type SignupRepo interface {
	Create(ctx context.Context, s *domain.Signup) error
	Delete(ctx context.Context, id string) error
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Signup, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Signup, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Signup, error)
}
