package domain

import (
	"errors"
	"time"
)

var ErrInterestNotFound = errors.New("interest not found")

// Interest is a free label users attach to themselves.
type Interest struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
