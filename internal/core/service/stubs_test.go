package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/qvema/qvema-api/internal/core/domain"
	"github.com/qvema/qvema-api/internal/core/ports"
)

var nopLog = zerolog.Nop()

type storedUser struct {
	user domain.User
	hash string
}

// stubUserRepo implements both ports.UserRepository and ports.CredentialStore.
type stubUserRepo struct {
	byID  map[string]*storedUser
	order []string
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*storedUser)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User, passwordHash string) (*domain.User, error) {
	for _, s := range r.byID {
		if s.user.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	u := *user
	u.ID = fmt.Sprintf("user-%d", r.seq)
	r.byID[u.ID] = &storedUser{user: u, hash: passwordHash}
	r.order = append(r.order, u.ID)
	return &u, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u := s.user
	return &u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, s := range r.byID {
		if s.user.Email == email {
			u := s.user
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].user)
	}
	return out, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *stubUserRepo) FindCredentialByEmail(_ context.Context, email string) (*domain.Credential, error) {
	for _, s := range r.byID {
		if s.user.Email == email {
			return &domain.Credential{User: s.user, PasswordHash: s.hash}, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubProjectRepo struct {
	items map[string]domain.Project
	seq   int
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{items: make(map[string]domain.Project)}
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) error {
	r.seq++
	p.ID = fmt.Sprintf("project-%d", r.seq)
	r.items[p.ID] = *p
	return nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return &p, nil
}

func (r *stubProjectRepo) FindAll(_ context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubProjectRepo) FindByOwner(ctx context.Context, ownerID string) ([]domain.Project, error) {
	all, _ := r.FindAll(ctx)
	var out []domain.Project
	for _, p := range all {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) Update(_ context.Context, id string, c ports.ProjectChanges) error {
	p, ok := r.items[id]
	if !ok {
		return domain.ErrProjectNotFound
	}
	if c.Title != nil {
		p.Title = *c.Title
	}
	if c.Description != nil {
		p.Description = *c.Description
	}
	if c.Category != nil {
		p.Category = *c.Category
	}
	if c.Budget != nil {
		p.Budget = *c.Budget
	}
	r.items[id] = p
	return nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *stubProjectRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

type stubInvestmentRepo struct {
	items map[string]domain.Investment
	seq   int
}

func newStubInvestmentRepo() *stubInvestmentRepo {
	return &stubInvestmentRepo{items: make(map[string]domain.Investment)}
}

func (r *stubInvestmentRepo) Create(_ context.Context, inv *domain.Investment) error {
	r.seq++
	inv.ID = fmt.Sprintf("investment-%d", r.seq)
	r.items[inv.ID] = *inv
	return nil
}

func (r *stubInvestmentRepo) FindByID(_ context.Context, id string) (*domain.Investment, error) {
	inv, ok := r.items[id]
	if !ok {
		return nil, domain.ErrInvestmentNotFound
	}
	return &inv, nil
}

func (r *stubInvestmentRepo) FindAll(_ context.Context) ([]domain.Investment, error) {
	out := make([]domain.Investment, 0, len(r.items))
	for _, inv := range r.items {
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubInvestmentRepo) filter(keep func(domain.Investment) bool) []domain.Investment {
	all, _ := r.FindAll(context.Background())
	var out []domain.Investment
	for _, inv := range all {
		if keep(inv) {
			out = append(out, inv)
		}
	}
	return out
}

func (r *stubInvestmentRepo) FindByInvestor(_ context.Context, investorID string) ([]domain.Investment, error) {
	return r.filter(func(inv domain.Investment) bool { return inv.InvestorID == investorID }), nil
}

func (r *stubInvestmentRepo) FindByProject(_ context.Context, projectID string) ([]domain.Investment, error) {
	return r.filter(func(inv domain.Investment) bool { return inv.ProjectID == projectID }), nil
}

func (r *stubInvestmentRepo) Update(_ context.Context, id string, c ports.InvestmentChanges) error {
	inv, ok := r.items[id]
	if !ok {
		return domain.ErrInvestmentNotFound
	}
	if c.Amount != nil {
		inv.Amount = *c.Amount
	}
	if c.Terms != nil {
		inv.Terms = *c.Terms
	}
	r.items[id] = inv
	return nil
}

func (r *stubInvestmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrInvestmentNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *stubInvestmentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

func (r *stubInvestmentRepo) TotalAmount(_ context.Context) (float64, error) {
	var total float64
	for _, inv := range r.items {
		total += inv.Amount
	}
	return total, nil
}

type stubInterestRepo struct {
	items    map[uint]domain.Interest
	attached map[string][]uint
	appends  int
	seq      uint
}

func newStubInterestRepo() *stubInterestRepo {
	return &stubInterestRepo{
		items:    make(map[uint]domain.Interest),
		attached: make(map[string][]uint),
	}
}

func (r *stubInterestRepo) Create(_ context.Context, in *domain.Interest) error {
	r.seq++
	in.ID = r.seq
	r.items[in.ID] = *in
	return nil
}

func (r *stubInterestRepo) FindByID(_ context.Context, id uint) (*domain.Interest, error) {
	in, ok := r.items[id]
	if !ok {
		return nil, domain.ErrInterestNotFound
	}
	return &in, nil
}

func (r *stubInterestRepo) FindAll(_ context.Context) ([]domain.Interest, error) {
	out := make([]domain.Interest, 0, len(r.items))
	for _, in := range r.items {
		out = append(out, in)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubInterestRepo) Update(_ context.Context, id uint, c ports.InterestChanges) error {
	in, ok := r.items[id]
	if !ok {
		return domain.ErrInterestNotFound
	}
	if c.Name != nil {
		in.Name = *c.Name
	}
	if c.Category != nil {
		in.Category = *c.Category
	}
	r.items[id] = in
	return nil
}

func (r *stubInterestRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrInterestNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *stubInterestRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

func (r *stubInterestRepo) UserInterests(_ context.Context, userID string) ([]domain.Interest, error) {
	out := make([]domain.Interest, 0, len(r.attached[userID]))
	for _, id := range r.attached[userID] {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *stubInterestRepo) AppendToUser(_ context.Context, userID string, ids []uint) error {
	r.appends++
	r.attached[userID] = append(r.attached[userID], ids...)
	return nil
}

func ptr[T any](v T) *T { return &v }
