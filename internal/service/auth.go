package service

import (
	"context"
	"database/sql"
	"errors"

	"arena-backend/internal/domain"
	"arena-backend/internal/repository"
	"arena-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*domain.User, string, error) {
	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", domain.E(domain.ErrConflict, "email is already registered")
	}
	if existing, err := s.userRepo.GetByUsername(ctx, username); err == nil && existing != nil {
		return nil, "", domain.E(domain.ErrConflict, "username is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", domain.Wrap(domain.ErrInternal, "failed to hash password", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.UserRolePlayer,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", domain.Wrap(domain.ErrWriteFailure, "failed to create user", err)
	}

	token, err := s.tokens.GenerateSessionToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, "", domain.Wrap(domain.ErrInternal, "failed to issue session token", err)
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", domain.E(domain.ErrUnauthorized, "invalid email or password")
		}
		return nil, "", domain.Wrap(domain.ErrInternal, "failed to load user", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.E(domain.ErrUnauthorized, "invalid email or password")
	}

	token, err := s.tokens.GenerateSessionToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, "", domain.Wrap(domain.ErrInternal, "failed to issue session token", err)
	}
	return user, token, nil
}

func (s *authService) AdminLogin(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, token, err := s.Login(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	if user.Role != domain.UserRoleAdmin {
		return nil, "", domain.E(domain.ErrUnauthorized, "account does not have admin access")
	}
	return user, token, nil
}

// SetupAdmin bootstraps the first admin account. It refuses to run once
// any admin exists.
func (s *authService) SetupAdmin(ctx context.Context, username, email, password string) (*domain.User, error) {
	hasAdmin, err := s.userRepo.HasAdmin(ctx)
	if err != nil {
		return nil, domain.Wrap(domain.ErrInternal, "failed to check for existing admin", err)
	}
	if hasAdmin {
		return nil, domain.E(domain.ErrConflict, "admin account already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.Wrap(domain.ErrInternal, "failed to hash password", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.UserRoleAdmin,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, domain.Wrap(domain.ErrWriteFailure, "failed to create admin user", err)
	}
	return user, nil
}
