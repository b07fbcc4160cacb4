package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/qvema/qvema-api/internal/core/domain"
	"github.com/qvema/qvema-api/internal/core/ports"
)

// newContext builds a request context with the validator installed and, when
// actor is non-nil, the actor the Auth middleware would have set.
func newContext(method, target, body string, actor *domain.Actor) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actor != nil {
		c.Set("actor", *actor)
	}
	return c, rec
}

func httpStatus(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}

type stubAuthService struct {
	loginFn func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) ValidateCredentials(context.Context, string, string) (*domain.User, error) {
	return nil, nil
}

func (s *stubAuthService) IssueSession(*domain.User) (string, error) { return "", nil }

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) ParseToken(string) (*ports.SessionClaims, error) { return nil, nil }

type stubUserService struct {
	createFn   func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	findAllFn  func(ctx context.Context) ([]domain.User, error)
	findByIDFn func(ctx context.Context, id string) (*domain.User, error)
}

func (s *stubUserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserService) CreateAdmin(context.Context, ports.CreateUserInput) (*domain.User, error) {
	return nil, nil
}

func (s *stubUserService) FindAll(ctx context.Context) ([]domain.User, error) {
	return s.findAllFn(ctx)
}

func (s *stubUserService) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubUserService) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, nil
}

type stubProjectService struct {
	ports.ProjectService
	createFn func(ctx context.Context, actor domain.Actor, in ports.CreateProjectInput) (*domain.Project, error)
	updateFn func(ctx context.Context, actor domain.Actor, id string, in ports.UpdateProjectInput) (*domain.Project, error)
	removeFn func(ctx context.Context, actor domain.Actor, id string) error
}

func (s *stubProjectService) Create(ctx context.Context, actor domain.Actor, in ports.CreateProjectInput) (*domain.Project, error) {
	return s.createFn(ctx, actor, in)
}

func (s *stubProjectService) Update(ctx context.Context, actor domain.Actor, id string, in ports.UpdateProjectInput) (*domain.Project, error) {
	return s.updateFn(ctx, actor, id, in)
}

func (s *stubProjectService) Remove(ctx context.Context, actor domain.Actor, id string) error {
	return s.removeFn(ctx, actor, id)
}

type stubInterestService struct {
	ports.InterestService
	findByIDFn func(ctx context.Context, id uint) (*domain.Interest, error)
	attachFn   func(ctx context.Context, userID string, ids []uint) (*domain.User, error)
}

func (s *stubInterestService) FindByID(ctx context.Context, id uint) (*domain.Interest, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubInterestService) AttachToUser(ctx context.Context, userID string, ids []uint) (*domain.User, error) {
	return s.attachFn(ctx, userID, ids)
}

type stubInvestmentService struct {
	ports.InvestmentService
	createFn        func(ctx context.Context, actor domain.Actor, in ports.CreateInvestmentInput) (*domain.Investment, error)
	findByProjectFn func(ctx context.Context, actor domain.Actor, projectID string) ([]domain.Investment, error)
	removeFn        func(ctx context.Context, actor domain.Actor, id string) error
}

func (s *stubInvestmentService) Create(ctx context.Context, actor domain.Actor, in ports.CreateInvestmentInput) (*domain.Investment, error) {
	return s.createFn(ctx, actor, in)
}

func (s *stubInvestmentService) FindByProject(ctx context.Context, actor domain.Actor, projectID string) ([]domain.Investment, error) {
	return s.findByProjectFn(ctx, actor, projectID)
}

func (s *stubInvestmentService) Remove(ctx context.Context, actor domain.Actor, id string) error {
	return s.removeFn(ctx, actor, id)
}

type stubAdminService struct {
	dashboard   *domain.Dashboard
	users       []domain.User
	projects    []domain.Project
	investments []domain.Investment
	err         error
}

func (s *stubAdminService) Dashboard(context.Context) (*domain.Dashboard, error) {
	return s.dashboard, s.err
}

func (s *stubAdminService) Users(context.Context) ([]domain.User, error) { return s.users, s.err }

func (s *stubAdminService) Projects(context.Context) ([]domain.Project, error) {
	return s.projects, s.err
}

func (s *stubAdminService) Investments(context.Context) ([]domain.Investment, error) {
	return s.investments, s.err
}
