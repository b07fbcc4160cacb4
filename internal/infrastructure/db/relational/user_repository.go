package relational

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/qvema/qvema-api/internal/core/domain"
	"github.com/qvema/qvema-api/internal/core/ports"
)

// UserRepository stores accounts. It is also the credential store, the only
// code path that reads password hashes back.
type UserRepository struct {
	db *gorm.DB
}

var (
	_ ports.UserRepository  = (*UserRepository)(nil)
	_ ports.CredentialStore = (*UserRepository)(nil)
)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create returns domain.ErrUserExists when the unique email index rejects
// the row.
func (r *UserRepository) Create(ctx context.Context, user *domain.User, passwordHash string) (*domain.User, error) {
	m := userModel{
		Email:        user.Email,
		PasswordHash: passwordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         string(user.Role),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	u := m.toDomain()
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	u := m.toDomain()
	return &u, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]domain.User, 0, len(rows))
	for i := range rows {
		users = append(users, rows[i].toDomain())
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&userModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *UserRepository) FindCredentialByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}
	return &domain.Credential{User: m.toDomain(), PasswordHash: m.PasswordHash}, nil
}
