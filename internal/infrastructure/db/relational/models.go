package relational

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/qvema/qvema-api/internal/core/domain"
)

type userModel struct {
	ID           string `gorm:"type:varchar(36);primaryKey"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	FirstName    string `gorm:"type:varchar(100)"`
	LastName     string `gorm:"type:varchar(100)"`
	Role         string `gorm:"type:varchar(20);not null;default:regular"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

func (m *userModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// toDomain drops the password hash.
func (m *userModel) toDomain() domain.User {
	role, ok := domain.ParseRole(m.Role)
	if !ok {
		role = domain.RoleRegular
	}
	return domain.User{
		ID:        m.ID,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Role:      role,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type projectModel struct {
	ID          string     `gorm:"type:varchar(36);primaryKey"`
	OwnerID     string     `gorm:"type:varchar(36);index;not null"`
	Owner       *userModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Category    string     `gorm:"type:varchar(100)"`
	Budget      float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (projectModel) TableName() string { return "projects" }

func (m *projectModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *projectModel) toDomain() domain.Project {
	return domain.Project{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		Budget:      m.Budget,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type investmentModel struct {
	ID         string        `gorm:"type:varchar(36);primaryKey"`
	InvestorID string        `gorm:"type:varchar(36);index;not null"`
	Investor   *userModel    `gorm:"foreignKey:InvestorID;constraint:OnDelete:CASCADE"`
	ProjectID  string        `gorm:"type:varchar(36);index;not null"`
	Project    *projectModel `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Amount     float64       `gorm:"not null"`
	Terms      string        `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (investmentModel) TableName() string { return "investments" }

func (m *investmentModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *investmentModel) toDomain() domain.Investment {
	inv := domain.Investment{
		ID:         m.ID,
		InvestorID: m.InvestorID,
		ProjectID:  m.ProjectID,
		Amount:     m.Amount,
		Terms:      m.Terms,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Project != nil {
		p := m.Project.toDomain()
		inv.Project = &p
	}
	if m.Investor != nil {
		u := m.Investor.toDomain()
		inv.Investor = &u
	}
	return inv
}

type interestModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Category  string `gorm:"type:varchar(100)"`
	CreatedAt time.Time
}

func (interestModel) TableName() string { return "interests" }

func (m *interestModel) toDomain() domain.Interest {
	return domain.Interest{
		ID:        m.ID,
		Name:      m.Name,
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
	}
}

// userInterestModel is the user/interest link. It has its own key so the same
// pair can be stored more than once.
type userInterestModel struct {
	ID         uint           `gorm:"primaryKey"`
	UserID     string         `gorm:"type:varchar(36);index;not null"`
	User       *userModel     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	InterestID uint           `gorm:"index;not null"`
	Interest   *interestModel `gorm:"foreignKey:InterestID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
}

func (userInterestModel) TableName() string { return "user_interests" }
