package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/auth"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/db/repositories"
	"dare/enterprisehub/internal/logging"
	"dare/enterprisehub/internal/metrics"
	"dare/enterprisehub/internal/models/dtos/requests"
	"dare/enterprisehub/internal/models/dtos/responses"
	gormModels "dare/enterprisehub/internal/models/gorm"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// HashPassword returns a bcrypt hash at the default cost.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

type UserService struct {
	repo    *repositories.UserRepository
	tokens  *auth.TokenService
	rbac    *RBACService
	metrics *metrics.MetricsRegistry
}

func NewUserService(db *gorm.DB, tokens *auth.TokenService, rbac *RBACService, m *metrics.MetricsRegistry) *UserService {
	return &UserService{
		repo:    repositories.NewUserRepository(db),
		tokens:  tokens,
		rbac:    rbac,
		metrics: m,
	}
}

// Login checks the password and issues a session token. Unknown users and
// wrong passwords produce the same error.
func (s *UserService) Login(ctx context.Context, req *requests.LoginRequest) (*responses.LoginResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		var nf *apperr.NotFoundError
		if errors.As(err, &nf) {
			s.metrics.LoginAttempt("unknown_user")
			return nil, &apperr.AuthError{Message: constants.MsgInvalidLogin}
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		s.metrics.LoginAttempt("bad_password")
		return nil, &apperr.AuthError{Message: constants.MsgInvalidLogin}
	}
	if !user.IsActive {
		s.metrics.LoginAttempt("inactive")
		return nil, &apperr.AuthError{Message: constants.MsgInactiveAccount}
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.repo.TouchLogin(ctx, user.ID, now); err != nil {
		logging.Warn("Failed to record login time", "user_id", user.ID, "error", err)
	} else {
		user.LastLoginAt = &now
	}

	s.metrics.LoginAttempt("success")
	logging.Info("User logged in", "user_id", user.ID, "role", user.Role)
	return &responses.LoginResponse{Token: token, ExpiresAt: expiresAt, User: *user}, nil
}

// Authenticate resolves a bearer token to the current account. The role is
// read from the database so demotions apply before the token expires.
func (s *UserService) Authenticate(ctx context.Context, rawToken string) (*auth.Claims, error) {
	claims, err := s.tokens.Parse(rawToken)
	if err != nil {
		return nil, &apperr.AuthError{Message: constants.MsgUnauthorized}
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		var nf *apperr.NotFoundError
		if errors.As(err, &nf) {
			return nil, &apperr.AuthError{Message: constants.MsgUnauthorized}
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, &apperr.AuthError{Message: constants.MsgInactiveAccount}
	}

	claims.Username = user.Username
	claims.Role = user.Role
	return claims, nil
}

func (s *UserService) Me(ctx context.Context, userID uint) (*responses.MeResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	perms, err := s.rbac.PermissionsFor(ctx, user.Role)
	if err != nil {
		return nil, err
	}
	return &responses.MeResponse{User: *user, Permissions: perms}, nil
}

func (s *UserService) Create(ctx context.Context, req *requests.CreateUserRequest) (*gormModels.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Storage("hash password", err)
	}

	user := &gormModels.User{
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         req.Role,
		IsActive:     true,
	}
	if req.Email != "" {
		user.Email = &req.Email
	}
	if req.District != "" {
		d := string(req.District)
		user.District = &d
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	logging.Info("User created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*gormModels.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, includeInactive bool, limit, offset int) (*responses.Page[gormModels.User], error) {
	users, total, err := s.repo.List(ctx, includeInactive, limit, offset)
	if err != nil {
		return nil, err
	}
	limit, offset = pageBounds(limit, offset)
	return &responses.Page[gormModels.User]{Items: users, Total: total, Limit: limit, Offset: offset}, nil
}

func (s *UserService) Update(ctx context.Context, id uint, req *requests.UpdateUserRequest) (*gormModels.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.District != nil {
		d := string(*req.District)
		user.District = &d
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil {
		hash, err := HashPassword(*req.Password)
		if err != nil {
			return nil, apperr.Storage("hash password", err)
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Deactivate disables the account. Users are never hard-deleted.
func (s *UserService) Deactivate(ctx context.Context, id uint) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.IsActive {
		return nil
	}
	user.IsActive = false
	if err := s.repo.Save(ctx, user); err != nil {
		return err
	}
	logging.Info("User deactivated", "user_id", id)
	return nil
}
