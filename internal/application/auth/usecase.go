package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aquafarm-pro/aquafarm-api/internal/application/dto"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/repository"
	"github.com/aquafarm-pro/aquafarm-api/pkg/jwt"
)

// JWTConfig holds the token-signing parameters.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase covers registration and login.
type UseCase struct {
	userRepo repository.UserRepository
	farmRepo repository.FarmRepository
	jwtCfg   JWTConfig
}

// NewUseCase builds the auth use case.
func NewUseCase(userRepo repository.UserRepository, farmRepo repository.FarmRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, farmRepo: farmRepo, jwtCfg: jwtCfg}
}

// RegisterUser creates a user: hashes the password with bcrypt and persists.
// Returns ErrEmailAlreadyExists when the email is taken within the farm.
func (uc *UseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, _ := uc.userRepo.GetByEmailAndFarm(in.Email, in.FarmID)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	farm, err := uc.farmRepo.GetByID(in.FarmID)
	if err != nil {
		return nil, err
	}
	if farm == nil {
		return nil, domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	role := in.Role
	if role == "" {
		role = entity.RoleWorker
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		FarmID:       in.FarmID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifies email/password and returns a signed JWT plus the user.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
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
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.FarmID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		FarmID:    u.FarmID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
