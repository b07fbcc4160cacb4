package relational

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/qvema/qvema-api/internal/core/domain"
	"github.com/qvema/qvema-api/internal/core/ports"
)

type InvestmentRepository struct {
	db *gorm.DB
}

var _ ports.InvestmentRepository = (*InvestmentRepository)(nil)

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *domain.Investment) error {
	m := investmentModel{
		InvestorID: inv.InvestorID,
		ProjectID:  inv.ProjectID,
		Amount:     inv.Amount,
		Terms:      inv.Terms,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert investment: %w", err)
	}
	*inv = m.toDomain()
	return nil
}

func (r *InvestmentRepository) FindByID(ctx context.Context, id string) (*domain.Investment, error) {
	var m investmentModel
	if err := r.db.WithContext(ctx).Preload("Project").Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvestmentNotFound
		}
		return nil, fmt.Errorf("find investment: %w", err)
	}
	inv := m.toDomain()
	return &inv, nil
}

func (r *InvestmentRepository) FindAll(ctx context.Context) ([]domain.Investment, error) {
	return r.find(r.db.WithContext(ctx).Preload("Project"))
}

func (r *InvestmentRepository) FindByInvestor(ctx context.Context, investorID string) ([]domain.Investment, error) {
	return r.find(r.db.WithContext(ctx).Preload("Project").Where("investor_id = ?", investorID))
}

func (r *InvestmentRepository) FindByProject(ctx context.Context, projectID string) ([]domain.Investment, error) {
	return r.find(r.db.WithContext(ctx).Preload("Investor").Preload("Project").Where("project_id = ?", projectID))
}

func (r *InvestmentRepository) find(q *gorm.DB) ([]domain.Investment, error) {
	var rows []investmentModel
	if err := q.Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	invs := make([]domain.Investment, 0, len(rows))
	for i := range rows {
		invs = append(invs, rows[i].toDomain())
	}
	return invs, nil
}

func (r *InvestmentRepository) Update(ctx context.Context, id string, c ports.InvestmentChanges) error {
	updates := map[string]interface{}{}
	if c.Amount != nil {
		updates["amount"] = *c.Amount
	}
	if c.Terms != nil {
		updates["terms"] = *c.Terms
	}
	if len(updates) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Model(&investmentModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return fmt.Errorf("update investment: %w", err)
	}
	return nil
}

func (r *InvestmentRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&investmentModel{})
	if res.Error != nil {
		return fmt.Errorf("delete investment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrInvestmentNotFound
	}
	return nil
}

func (r *InvestmentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&investmentModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count investments: %w", err)
	}
	return n, nil
}

func (r *InvestmentRepository) TotalAmount(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&investmentModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("sum investments: %w", err)
	}
	return total, nil
}
