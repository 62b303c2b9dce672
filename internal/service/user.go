package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/Hack4Good/internal/domain"
	"github.com/stpnv0/Hack4Good/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// RoleKey holds the role override for the session user.
const RoleKey = "hack4good_role"

type UserService struct {
	repo          ports.UserRepo
	store         ports.KVStore
	sessionUserID string
	logger        logger.Logger
}

func NewUserService(repo ports.UserRepo, store ports.KVStore, sessionUserID string, logger logger.Logger) *UserService {
	return &UserService{
		repo:          repo,
		store:         store,
		sessionUserID: sessionUserID,
		logger:        logger,
	}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	role := input.Role
	if role == "" {
		role = domain.RoleParticipant
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Name:           name,
		Role:           role,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Update(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
		}
		user.Name = name
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, *input.Role)
		}
		user.Role = *input.Role
	}

	if err = s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

// Current returns the session user with the stored role override applied.
func (s *UserService) Current(ctx context.Context) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, s.sessionUserID)
	if err != nil {
		return nil, fmt.Errorf("get session user: %w", err)
	}

	stored := s.storedRole(ctx)
	if stored == "" || stored == user.Role {
		return user, nil
	}

	user.Role = stored
	if err = s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("apply stored role: %w", err)
	}

	return user, nil
}

func (s *UserService) SetCurrentRole(ctx context.Context, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	user, err := s.Update(ctx, s.sessionUserID, domain.UpdateUserInput{Role: &role})
	if err != nil {
		return nil, err
	}

	if err = s.store.Set(ctx, RoleKey, []byte(role)); err != nil {
		s.logger.Warn("role override not persisted",
			logger.String("role", string(role)),
			logger.String("error", err.Error()),
		)
	}

	return user, nil
}

func (s *UserService) storedRole(ctx context.Context) domain.Role {
	raw, err := s.store.Get(ctx, RoleKey)
	if err != nil {
		s.logger.Warn("role override unavailable", logger.String("error", err.Error()))
		return ""
	}

	role := domain.Role(raw)
	if !role.Valid() {
		return ""
	}
	return role
}
