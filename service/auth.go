package service

import (
	"context"
	"errors"
	"luxefurnish/domain"
	"luxefurnish/utils"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo    domain.UserRepository
	accessToken *utils.JWTManager
	bcryptCost  int
	// compared against when the email is unknown so both signin failures cost the same
	dummyHash []byte
}

func NewAuthService(userRepo domain.UserRepository, secret string, tokenTTL time.Duration, bcryptCost int) domain.AuthUseCase {
	if bcryptCost < bcrypt.DefaultCost {
		bcryptCost = bcrypt.DefaultCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcryptCost)
	return &authService{
		userRepo:    userRepo,
		accessToken: utils.NewJWTManager(secret, tokenTTL),
		bcryptCost:  bcryptCost,
		dummyHash:   dummy,
	}
}

func (s *authService) GetAccessTokenManager() *utils.JWTManager {
	return s.accessToken
}

func (s *authService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, domain.NewError(domain.ErrValidation, "All fields are required")
	}

	if _, err := s.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     domain.RoleCustomer,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	log.Info().Str("email", email).Msg("user registered")
	return user, nil
}

func (s *authService) Signin(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.NewError(domain.ErrValidation, "Email and password are required")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.accessToken.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}
