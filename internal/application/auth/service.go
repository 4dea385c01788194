package auth

import (
	"context"
	"errors"
	"strings"

	"prreview-service/internal/domain/models"
	"prreview-service/internal/domain/ports/input"
	ports "prreview-service/internal/domain/ports/output"
	uow "prreview-service/internal/domain/ports/output/uow"
	"prreview-service/internal/domain/services"
	"prreview-service/internal/utils"

	"github.com/google/uuid"
)

const minPasswordLength = 6

type Service struct {
	uow    uow.UnitOfWork
	tokens services.TokenManager
	hasher services.PasswordHasher
	log    ports.Logger
}

func NewService(uow uow.UnitOfWork, tokens services.TokenManager, hasher services.PasswordHasher, log ports.Logger) input.AuthInputPort {
	return &Service{uow: uow, tokens: tokens, hasher: hasher, log: log}
}

func (s *Service) Register(ctx context.Context, name, email, password string, role models.Role) (*models.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" {
		return nil, "", utils.ErrInvalidArgument
	}
	if len(password) < minPasswordLength {
		return nil, "", utils.ErrInvalidArgument
	}
	if role == "" {
		role = models.RoleDeveloper
	}
	if !role.Valid() {
		return nil, "", utils.ErrInvalidArgument
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.log.Error("Register hash failed", "err", err)
		return nil, "", err
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Register begin tx failed", "err", err)
		return nil, "", err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()

	repo := tx.UserRepository()
	u := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := repo.CreateUser(ctx, u); err != nil {
		if !errors.Is(err, utils.ErrEmailExists) {
			s.log.Error("Register repo failed", "err", err)
		}
		return nil, "", err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Register commit failed", "err", err)
		return nil, "", err
	}
	commit = true

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		s.log.Error("Register token issue failed", "user_id", u.ID, "err", err)
		return nil, "", err
	}
	return u, token, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", utils.ErrInvalidArgument
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	u, err := tx.UserRepository().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			// Same answer for unknown email and wrong password.
			return nil, "", utils.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, "", utils.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		s.log.Error("Login token issue failed", "user_id", u.ID, "err", err)
		return nil, "", err
	}
	return u, token, nil
}

func (s *Service) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, utils.ErrUnauthenticated
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	u, err := tx.UserRepository().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			return nil, utils.ErrUnauthenticated
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return tx.UserRepository().GetUserByID(ctx, userID)
}
