package handler

import "github.com/qvema/qvema-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// loginRequest only checks presence; a malformed email is just a credential
// that does not match, answered with 401 like any other.
type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	User        *domain.User `json:"user"`
}

type createUserRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
}

type createProjectRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Budget      float64 `json:"budget"      validate:"gte=0"`
}

type updateProjectRequest struct {
	Title       *string  `json:"title"       validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Budget      *float64 `json:"budget"      validate:"omitempty,gte=0"`
}

type createInvestmentRequest struct {
	ProjectID string  `json:"projectId" validate:"required"`
	Amount    float64 `json:"amount"    validate:"required,gt=0"`
	Terms     string  `json:"terms"`
}

type updateInvestmentRequest struct {
	Amount *float64 `json:"amount" validate:"omitempty,gt=0"`
	Terms  *string  `json:"terms"`
}

type createInterestRequest struct {
	Name     string `json:"name"     validate:"required"`
	Category string `json:"category"`
}

type updateInterestRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1"`
	Category *string `json:"category"`
}

type attachInterestsRequest struct {
	InterestIDs []uint `json:"interestIds" validate:"required"`
}
