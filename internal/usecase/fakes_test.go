package usecase

import (
	"context"
	"sync"

	"secure-it/internal/data/entity"
	"secure-it/internal/data/repository"
	"secure-it/pkg/events"
	"secure-it/pkg/utils"

	"go.uber.org/zap"
)

type fakeCustomerRepo struct {
	mu        sync.Mutex
	byID      map[int64]*entity.Customer
	nextID    int64
	findErr   error
	createErr error
	updateErr error
	updates   int
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byID: make(map[int64]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	for _, c := range f.byID {
		if c.Email == customer.Email {
			return repository.ErrDuplicateEmail
		}
	}
	f.nextID++
	customer.ID = f.nextID
	stored := *customer
	f.byID[stored.ID] = &stored
	return nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id int64) (*entity.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.findErr != nil {
		return nil, f.findErr
	}
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	out := *c
	return &out, nil
}

func (f *fakeCustomerRepo) FindByEmail(_ context.Context, email string) (*entity.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, c := range f.byID {
		if c.Email == email {
			out := *c
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) UpdateProvider(_ context.Context, id int64, provider string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.updates++
	if f.updateErr != nil {
		return f.updateErr
	}
	c, ok := f.byID[id]
	if !ok {
		return repository.ErrCustomerNotFound
	}
	p := provider
	c.Provider = &p
	return nil
}

func (f *fakeCustomerRepo) seed(customer entity.Customer) *entity.Customer {
	_ = f.Create(context.Background(), &customer)
	return &customer
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.CustomerEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event events.CustomerEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type failingSiteModeRepo struct {
	err error
}

func (f failingSiteModeRepo) Get(context.Context) (entity.SiteMode, error) { return "", f.err }

func (f failingSiteModeRepo) Set(context.Context, entity.SiteMode) error { return f.err }

func testConfig() *utils.Config {
	return &utils.Config{
		Auth: utils.AuthConfig{
			SessionTTLHours:     72,
			DefaultRole:         entity.RoleBasic,
			DefaultProviderRole: entity.RoleBasic,
			RoleCodes: entity.RoleCodes{
				entity.RoleAdmin:   "ADMIN-KEY",
				entity.RoleStaff:   "staff-key",
				entity.RoleLoyalty: "loyal",
			},
			BcryptRounds: utils.MinBcryptCost,
		},
	}
}

type authFixture struct {
	svc       *authService
	customers *fakeCustomerRepo
	publisher *recordingPublisher
	config    *utils.Config
}

func newAuthFixture() *authFixture {
	customers := newFakeCustomerRepo()
	publisher := &recordingPublisher{}
	config := testConfig()
	repo := &repository.Repository{
		Customer: customers,
		SiteMode: repository.NewMemorySiteModeRepository(entity.SiteModeEcommerce),
	}
	return &authFixture{
		svc:       newAuthService(repo, config, NewSessionIssuer(), publisher, zap.NewNop()),
		customers: customers,
		publisher: publisher,
		config:    config,
	}
}
