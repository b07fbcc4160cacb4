package relational

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/qvema/qvema-api/internal/core/domain"
	"github.com/qvema/qvema-api/internal/core/ports"
)

type InterestRepository struct {
	db *gorm.DB
}

var _ ports.InterestRepository = (*InterestRepository)(nil)

func NewInterestRepository(db *gorm.DB) *InterestRepository {
	return &InterestRepository{db: db}
}

func (r *InterestRepository) Create(ctx context.Context, in *domain.Interest) error {
	m := interestModel{Name: in.Name, Category: in.Category}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert interest: %w", err)
	}
	*in = m.toDomain()
	return nil
}

func (r *InterestRepository) FindByID(ctx context.Context, id uint) (*domain.Interest, error) {
	var m interestModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInterestNotFound
		}
		return nil, fmt.Errorf("find interest: %w", err)
	}
	in := m.toDomain()
	return &in, nil
}

func (r *InterestRepository) FindAll(ctx context.Context) ([]domain.Interest, error) {
	var rows []interestModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list interests: %w", err)
	}
	list := make([]domain.Interest, 0, len(rows))
	for i := range rows {
		list = append(list, rows[i].toDomain())
	}
	return list, nil
}

func (r *InterestRepository) Update(ctx context.Context, id uint, c ports.InterestChanges) error {
	updates := map[string]interface{}{}
	if c.Name != nil {
		updates["name"] = *c.Name
	}
	if c.Category != nil {
		updates["category"] = *c.Category
	}
	if len(updates) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Model(&interestModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return fmt.Errorf("update interest: %w", err)
	}
	return nil
}

// Delete removes the interest and detaches it from every user.
func (r *InterestRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("interest_id = ?", id).Delete(&userInterestModel{}).Error; err != nil {
			return fmt.Errorf("detach interest: %w", err)
		}
		res := tx.Where("id = ?", id).Delete(&interestModel{})
		if res.Error != nil {
			return fmt.Errorf("delete interest: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrInterestNotFound
		}
		return nil
	})
}

func (r *InterestRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&interestModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count interests: %w", err)
	}
	return n, nil
}

func (r *InterestRepository) UserInterests(ctx context.Context, userID string) ([]domain.Interest, error) {
	var links []userInterestModel
	err := r.db.WithContext(ctx).
		Preload("Interest").
		Where("user_id = ?", userID).
		Order("id").
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("list user interests: %w", err)
	}

	list := make([]domain.Interest, 0, len(links))
	for _, l := range links {
		if l.Interest == nil {
			continue
		}
		list = append(list, l.Interest.toDomain())
	}
	return list, nil
}

func (r *InterestRepository) AppendToUser(ctx context.Context, userID string, interestIDs []uint) error {
	if len(interestIDs) == 0 {
		return nil
	}
	links := make([]userInterestModel, 0, len(interestIDs))
	for _, id := range interestIDs {
		links = append(links, userInterestModel{UserID: userID, InterestID: id})
	}
	if err := r.db.WithContext(ctx).Create(&links).Error; err != nil {
		return fmt.Errorf("attach interests: %w", err)
	}
	return nil
}
