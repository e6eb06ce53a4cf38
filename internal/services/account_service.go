package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/propertyhub/listings-api/internal/dtos"
	"github.com/propertyhub/listings-api/internal/models"
	"github.com/propertyhub/listings-api/internal/repositories"
	"github.com/propertyhub/listings-api/internal/utils"
)

type AccountService interface {
	Register(ctx context.Context, req *dtos.RegisterRequest) (*dtos.NewUserResponse, error)
	Login(ctx context.Context, req *dtos.LoginRequest) (*dtos.NewUserResponse, error)
	ForgotPassword(ctx context.Context, req *dtos.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *dtos.ResetPasswordRequest) error
}

type accountService struct {
	userRepo repositories.UserRepository
	jwtSvc   JWTService
	mailer   MailerService
}

func NewAccountService(userRepo repositories.UserRepository, jwtSvc JWTService, mailer MailerService) AccountService {
	return &accountService{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		mailer:   mailer,
	}
}

func (s *accountService) Register(ctx context.Context, req *dtos.RegisterRequest) (*dtos.NewUserResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if strings.ContainsFunc(username, unicode.IsSpace) {
		return nil, &utils.AppError{
			StatusCode: http.StatusUnprocessableEntity,
			Code:       utils.ErrCodeValidation,
			Message:    "Username must not contain spaces",
		}
	}

	taken, err := s.userRepo.UsernameExists(ctx, username)
	if err != nil {
		return nil, s.internal("failed to check username", err)
	}
	if taken {
		return nil, &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "Username is already taken",
			Err:        utils.ErrUsernameExists,
		}
	}

	taken, err = s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, s.internal("failed to check email", err)
	}
	if taken {
		return nil, &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "Email is already registered",
			Err:        utils.ErrEmailExists,
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, s.internal("failed to hash password", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, s.internal("failed to create user", err)
	}

	utils.Logger.WithField("username", user.Username).Info("registered new user")
	return s.respondWithToken(user)
}

func (s *accountService) Login(ctx context.Context, req *dtos.LoginRequest) (*dtos.NewUserResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, s.internal("failed to fetch user", err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, &utils.AppError{
			StatusCode: http.StatusUnauthorized,
			Code:       utils.ErrCodeInvalidCredentials,
			Message:    "Invalid username or password",
		}
	}
	return s.respondWithToken(user)
}

// ForgotPassword is deliberately silent about unknown addresses so the
// endpoint cannot be used to probe which emails are registered.
func (s *accountService) ForgotPassword(ctx context.Context, req *dtos.ForgotPasswordRequest) error {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return s.internal("failed to fetch user", err)
	}
	if user == nil {
		utils.Logger.WithField("email", req.Email).Info("password reset requested for unknown email")
		return nil
	}

	token, err := generateResetToken()
	if err != nil {
		return s.internal("failed to generate reset token", err)
	}
	if err := s.userRepo.SetResetToken(ctx, user.ID, &token); err != nil {
		return s.internal("failed to store reset token", err)
	}
	if err := s.mailer.SendPasswordReset(user.Email, user.Username, token); err != nil {
		return s.internal("failed to send reset email", err)
	}
	return nil
}

func (s *accountService) ResetPassword(ctx context.Context, req *dtos.ResetPasswordRequest) error {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return s.internal("failed to fetch user", err)
	}
	if user == nil || user.ResetToken == nil || *user.ResetToken != req.Token {
		return &utils.AppError{
			StatusCode: http.StatusUnauthorized,
			Code:       utils.ErrCodeUnauthorized,
			Message:    "Invalid or expired reset token",
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return s.internal("failed to hash password", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return s.internal("failed to update password", err)
	}

	utils.Logger.WithField("username", user.Username).Info("password reset completed")
	return nil
}

func (s *accountService) respondWithToken(user *models.User) (*dtos.NewUserResponse, error) {
	token, err := s.jwtSvc.GenerateToken(user)
	if err != nil {
		return nil, s.internal("failed to sign token", err)
	}
	return &dtos.NewUserResponse{
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	}, nil
}

func (s *accountService) internal(msg string, err error) *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusInternalServerError,
		Code:       utils.ErrCodeInternal,
		Message:    msg,
		Err:        err,
	}
}

func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
