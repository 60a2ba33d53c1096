// Package auth implements onboarding and authentication use cases.
package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/orderly-app/orderly-api/internal/application/dto"
	"github.com/orderly-app/orderly-api/internal/domain"
	"github.com/orderly-app/orderly-api/internal/domain/entity"
	"github.com/orderly-app/orderly-api/internal/domain/repository"
	"github.com/orderly-app/orderly-api/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase authentication use cases: registration, staff accounts and login.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	businessRepo repository.BusinessRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(userRepo repository.UserRepository, businessRepo repository.BusinessRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, businessRepo: businessRepo, jwtCfg: jwtCfg}
}

// Register onboards a new business together with its admin owner account and
// returns a session token. Returns ErrEmailAlreadyExists when the email is taken.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	existing, _ := uc.userRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	businessType := in.BusinessType
	if businessType == "" {
		businessType = entity.BusinessTypeOther
	}
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	business := &entity.Business{
		ID:        uuid.New().String(),
		Name:      in.BusinessName,
		Type:      businessType,
		Country:   in.Country,
		Currency:  currency,
		Plan:      entity.PlanFree,
		CreatedAt: now,
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		BusinessID:   business.ID,
		Name:         in.Name,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	business.OwnerID = user.ID

	if err := uc.businessRepo.Create(business); err != nil {
		return nil, err
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.BusinessID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		Token:    token,
		User:     *toUserResponse(user),
		Business: *toBusinessResponse(business),
	}, nil
}

// AddStaff creates a staff account under the caller's business. Admin only
// (enforced at the HTTP layer).
func (uc *AuthUseCase) AddStaff(businessID string, in dto.AddStaffRequest) (*dto.UserResponse, error) {
	existing, _ := uc.userRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		BusinessID:   businessID,
		Name:         in.Name,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: string(hash),
		Role:         entity.RoleStaff,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifies email/password, generates a JWT and returns token + user.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.BusinessID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Me returns the authenticated user plus their business.
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, *dto.BusinessResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.ErrUserNotFound
	}
	business, err := uc.businessRepo.GetByID(user.BusinessID)
	if err != nil {
		return nil, nil, err
	}
	return toUserResponse(user), toBusinessResponse(business), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		BusinessID: u.BusinessID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		CreatedAt:  u.CreatedAt,
	}
}

func toBusinessResponse(b *entity.Business) *dto.BusinessResponse {
	if b == nil {
		return nil
	}
	return &dto.BusinessResponse{
		ID:       b.ID,
		Name:     b.Name,
		Type:     b.Type,
		Country:  b.Country,
		Currency: b.Currency,
		Plan:     b.Plan,
	}
}
