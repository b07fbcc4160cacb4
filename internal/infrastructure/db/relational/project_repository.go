package relational

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/qvema/qvema-api/internal/core/domain"
	"github.com/qvema/qvema-api/internal/core/ports"
)

type ProjectRepository struct {
	db *gorm.DB
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	m := projectModel{
		OwnerID:     p.OwnerID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Budget:      p.Budget,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	*p = m.toDomain()
	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	var m projectModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	p := m.toDomain()
	return &p, nil
}

func (r *ProjectRepository) FindAll(ctx context.Context) ([]domain.Project, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *ProjectRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Project, error) {
	return r.find(r.db.WithContext(ctx).Where("owner_id = ?", ownerID))
}

func (r *ProjectRepository) find(q *gorm.DB) ([]domain.Project, error) {
	var rows []projectModel
	if err := q.Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	projects := make([]domain.Project, 0, len(rows))
	for i := range rows {
		projects = append(projects, rows[i].toDomain())
	}
	return projects, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id string, c ports.ProjectChanges) error {
	updates := map[string]interface{}{}
	if c.Title != nil {
		updates["title"] = *c.Title
	}
	if c.Description != nil {
		updates["description"] = *c.Description
	}
	if c.Category != nil {
		updates["category"] = *c.Category
	}
	if c.Budget != nil {
		updates["budget"] = *c.Budget
	}
	if len(updates) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Model(&projectModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete removes the project. Its investments go with it through the
// investments.project_id ON DELETE CASCADE constraint.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&projectModel{})
	if res.Error != nil {
		return fmt.Errorf("delete project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&projectModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}
