package domain

import (
	"errors"
	"time"
)

var ErrInvestmentNotFound = errors.New("investment not found")

// Investment links an investor to a project. InvestorID is the actor that
// created it and is never reassigned.
type Investment struct {
	ID         string    `json:"id"`
	InvestorID string    `json:"investorId"`
	ProjectID  string    `json:"projectId"`
	Amount     float64   `json:"amount"`
	Terms      string    `json:"terms,omitempty"`
	Project    *Project  `json:"project,omitempty"`
	Investor   *User     `json:"investor,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
