package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/Hack4Good/internal/domain"
	"github.com/stpnv0/Hack4Good/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// SignupService is the registration engine. Mutations are serialised so the
// capacity and quota checks see a stable count.
type SignupService struct {
	mu sync.Mutex

	signupRepo ports.SignupRepo
	eventRepo  ports.EventRepo
	userRepo   ports.UserRepo
	roster     *RosterService
	notifier   ports.SignupNotifier
	logger     logger.Logger
}

func NewSignupService(
	signupRepo ports.SignupRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	roster *RosterService,
	notifier ports.SignupNotifier,
	logger logger.Logger,
) *SignupService {
	return &SignupService{
		signupRepo: signupRepo,
		eventRepo:  eventRepo,
		userRepo:   userRepo,
		roster:     roster,
		notifier:   notifier,
		logger:     logger,
	}
}

// Toggle withdraws an existing signup or tries to create one. Capacity and
// quota rejections are reported through the outcome, not as errors.
func (s *SignupService) Toggle(ctx context.Context, in domain.SignupInput) (*domain.ToggleResult, error) {
	return s.apply(ctx, in, true)
}

// Register is Toggle without the withdraw branch.
func (s *SignupService) Register(ctx context.Context, in domain.SignupInput) (*domain.ToggleResult, error) {
	return s.apply(ctx, in, false)
}

func (s *SignupService) Withdraw(ctx context.Context, in domain.SignupInput) (*domain.ToggleResult, error) {
	s.mu.Lock()
	event, err := s.eventRepo.GetByID(ctx, in.EventID)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("get event: %w", err)
	}

	existing, err := s.signupRepo.GetByEventAndUser(ctx, in.EventID, in.UserID)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("get signup: %w", err)
	}
	res, err := s.withdraw(ctx, existing)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.afterWithdraw(ctx, in, existing, event)
	return res, nil
}

// apply checks the role only when a signup would be created: a withdraw
// ignores it.
func (s *SignupService) apply(ctx context.Context, in domain.SignupInput, toggle bool) (*domain.ToggleResult, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	}
	if !toggle && !in.Role.Valid() {
		return nil, invalidRole(in.Role)
	}

	s.mu.Lock()
	event, err := s.eventRepo.GetByID(ctx, in.EventID)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("get event: %w", err)
	}

	existing, err := s.signupRepo.GetByEventAndUser(ctx, in.EventID, in.UserID)
	if err != nil && !errors.Is(err, domain.ErrSignupNotFound) {
		s.mu.Unlock()
		return nil, fmt.Errorf("get signup: %w", err)
	}

	if existing != nil {
		if !toggle {
			res, err := s.result(ctx, domain.OutcomeAlreadyRegistered, existing, in.UserID)
			s.mu.Unlock()
			return res, err
		}

		res, err := s.withdraw(ctx, existing)
		s.mu.Unlock()
		if err != nil {
			return nil, err
		}
		s.afterWithdraw(ctx, in, existing, event)
		return res, nil
	}

	if !in.Role.Valid() {
		s.mu.Unlock()
		return nil, invalidRole(in.Role)
	}

	res, err := s.admit(ctx, event, in)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if res.Outcome == domain.OutcomeAdmitted {
		s.afterAdmit(ctx, in, event)
	} else {
		s.logger.Info("signup rejected",
			logger.String("event_id", in.EventID),
			logger.String("user_id", in.UserID),
			logger.String("role", string(in.Role)),
			logger.String("outcome", string(res.Outcome)),
		)
	}

	return res, nil
}

func invalidRole(role domain.Role) error {
	return fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
}

func (s *SignupService) admit(ctx context.Context, event *domain.Event, in domain.SignupInput) (*domain.ToggleResult, error) {
	current, err := s.signupRepo.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list event signups: %w", err)
	}
	participants, volunteers := domain.CountByRole(current)

	outcome := domain.Admit(event, in.Role, participants, volunteers)
	if outcome != domain.OutcomeAdmitted {
		return s.result(ctx, outcome, nil, in.UserID)
	}

	signup := &domain.Signup{
		ID:        uuid.New().String(),
		EventID:   event.ID,
		UserID:    in.UserID,
		Role:      in.Role,
		CreatedAt: time.Now().UTC(),
	}
	if err = s.signupRepo.Create(ctx, signup); err != nil {
		return nil, fmt.Errorf("create signup: %w", err)
	}

	s.logger.Info("signup created",
		logger.String("signup_id", signup.ID),
		logger.String("event_id", event.ID),
		logger.String("user_id", in.UserID),
		logger.String("role", string(in.Role)),
	)

	return s.result(ctx, outcome, signup, in.UserID)
}

func (s *SignupService) withdraw(ctx context.Context, existing *domain.Signup) (*domain.ToggleResult, error) {
	if err := s.signupRepo.Delete(ctx, existing.ID); err != nil {
		return nil, fmt.Errorf("delete signup: %w", err)
	}

	s.logger.Info("signup withdrawn",
		logger.String("signup_id", existing.ID),
		logger.String("event_id", existing.EventID),
		logger.String("user_id", existing.UserID),
	)

	return s.result(ctx, domain.OutcomeWithdrawn, existing, existing.UserID)
}

func (s *SignupService) result(ctx context.Context, outcome domain.ToggleOutcome, signup *domain.Signup, userID string) (*domain.ToggleResult, error) {
	signups, err := s.signupRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user signups: %w", err)
	}
	if signups == nil {
		signups = []*domain.Signup{}
	}

	return &domain.ToggleResult{
		Outcome: outcome,
		Signup:  signup,
		Signups: signups,
	}, nil
}

func (s *SignupService) afterAdmit(ctx context.Context, in domain.SignupInput, event *domain.Event) {
	if in.Role == domain.RoleVolunteer && in.DisplayName != "" {
		if _, err := s.roster.Add(ctx, event.ID, in.DisplayName); err != nil {
			s.logger.Warn("volunteer name not added to roster",
				logger.String("event_id", event.ID),
				logger.String("error", err.Error()),
			)
		}
	}
	s.roster.announce(ctx, event.ID, domain.ActivitySignupAdmitted)

	if user := s.lookupUser(ctx, in.UserID); user != nil {
		go s.notifier.NotifySignupAdmitted(context.WithoutCancel(ctx), user, event, in.Role)
	}
}

func (s *SignupService) afterWithdraw(ctx context.Context, in domain.SignupInput, existing *domain.Signup, event *domain.Event) {
	if existing.Role == domain.RoleVolunteer && in.DisplayName != "" {
		s.roster.Remove(ctx, event.ID, in.DisplayName)
	}
	s.roster.announce(ctx, event.ID, domain.ActivitySignupWithdrawn)

	if user := s.lookupUser(ctx, existing.UserID); user != nil {
		go s.notifier.NotifySignupWithdrawn(context.WithoutCancel(ctx), user, event)
	}
}

// lookupUser returns nil for users the store does not know; signups do not
// require a registered user.
func (s *SignupService) lookupUser(ctx context.Context, userID string) *domain.User {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Error("failed to get user for notification",
				logger.String("user_id", userID),
				logger.String("error", err.Error()),
			)
		}
		return nil
	}
	return user
}

func (s *SignupService) ListByUser(ctx context.Context, userID string) ([]*domain.Signup, error) {
	return s.signupRepo.ListByUser(ctx, userID)
}

func (s *SignupService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Signup, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return s.signupRepo.ListByEvent(ctx, eventID)
}
