package repository

import "github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"

// UserRepository defines the persistence port for User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmailAndFarm(email, farmID string) (*entity.User, error)
	Update(user *entity.User) error
	ListByFarm(farmID string, limit, offset int) ([]*entity.User, error)
	Delete(id string) error
	// FindByEmail is the auth-flow lookup (email is unique across farms).
	FindByEmail(email string) (*entity.User, error)
}
