package admin

import (
	"context"

	"safelogist/internal/domain"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	DB() *gorm.DB
}
