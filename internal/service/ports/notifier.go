package ports

import (
	"context"

	"github.com/stpnv0/Hack4Good/internal/domain"
)

type SignupNotifier interface {
	NotifySignupAdmitted(ctx context.Context, user *domain.User, event *domain.Event, role domain.Role)
	NotifySignupWithdrawn(ctx context.Context, user *domain.User, event *domain.Event)
}

type ActivityPublisher interface {
	Publish(activity domain.Activity)
}
