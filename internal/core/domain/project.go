package domain

import (
	"errors"
	"time"
)

var ErrProjectNotFound = errors.New("project not found")

// Project is owned by the user who created it; the owner never changes.
type Project struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Budget      float64   `json:"budget"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
