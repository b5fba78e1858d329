package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"secure-it/internal/data/entity"
	"secure-it/internal/data/repository"
	"secure-it/internal/dto/request"
	"secure-it/internal/dto/response"
	"secure-it/pkg/events"
	"secure-it/pkg/utils"

	"go.uber.org/zap"
)

const (
	minPasswordLength = 8 // bytes, like the upper bound
	maxPasswordBytes  = 72 // bcrypt ignores the rest

	publishTimeout = 5 * time.Second
)

const (
	msgSignupRequired    = "Name, email, and password are required."
	msgInvalidEmail      = "Enter a valid email address."
	msgPasswordTooShort  = "Password must be at least 8 characters."
	msgPasswordTooLong   = "Password must be at most 72 bytes."
	msgEmailTaken        = "An account with that email already exists."
	msgCreateFailed      = "Failed to create the account."
	msgLoginRequired     = "Email and password are required."
	msgNoAccount         = "No account found for that email."
	msgWrongPassword     = "Incorrect password. Please try again."
	msgProviderEmail     = "Provider sign-in requires an email address."
	msgProviderFailed    = "Failed to create provider account."
	msgLookupFailed      = "Failed to look up the account."
	msgSessionFailed     = "Failed to start a session."
	msgCredentialsFailed = "Failed to process password."
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	ProviderLogin(ctx context.Context, req *request.ProviderLoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context) error
}

type authService struct {
	repo      *repository.Repository
	config    *utils.Config
	issuer    *SessionIssuer
	publisher events.Publisher
	log       *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	publisher events.Publisher,
	log *zap.Logger,
) AuthService {
	return newAuthService(repo, config, NewSessionIssuer(), publisher, log)
}

func newAuthService(
	repo *repository.Repository,
	config *utils.Config,
	issuer *SessionIssuer,
	publisher events.Publisher,
	log *zap.Logger,
) *authService {
	if publisher == nil {
		publisher = events.NewNoopPublisher()
	}
	return &authService{
		repo:      repo,
		config:    config,
		issuer:    issuer,
		publisher: publisher,
		log:       log,
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := entity.NormalizeEmail(req.Email)
	password := req.Password

	// 1. Validasi input
	if err := validateSignup(name, email, password); err != nil {
		s.log.Warn("Signup validation failed", zap.Error(err), zap.String("email", email))
		return nil, err
	}

	// 2. Cek email sudah terdaftar
	existing, err := s.repo.Customer.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, newError(KindPersistence, msgCreateFailed, err)
	}
	if existing != nil {
		return nil, newError(KindConflict, msgEmailTaken, nil)
	}

	// 3. Resolve role & hash password
	auth := s.config.Auth
	role := entity.ResolveRole(req.Role, req.AccessCode, auth.RoleCodes, auth.DefaultRole)

	creds, err := utils.HashPassword(password, auth.BcryptRounds)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, newError(KindInfrastructure, msgCredentialsFailed, err)
	}

	// 4. Save customer
	now := time.Now().UTC()
	customer := &entity.Customer{
		Base:         entity.Base{CreatedAt: now, UpdatedAt: now},
		Name:         name,
		Email:        email,
		PasswordHash: creds.Hash,
		Salt:         creds.Salt,
		Role:         role,
	}

	if err := s.repo.Customer.Create(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.log.Warn("Signup lost insert race", zap.String("email", email))
			return nil, newError(KindConflict, msgEmailTaken, err)
		}
		s.log.Error("Failed to create customer", zap.Error(err), zap.String("email", email))
		return nil, newError(KindPersistence, msgCreateFailed, err)
	}

	// 5. Issue session
	session, err := s.issuer.Issue(customer, auth.SessionTTLHours, nil)
	if err != nil {
		s.log.Error("Failed to issue session", zap.Error(err), zap.Int64("customer_id", customer.ID))
		return nil, newError(KindInfrastructure, msgSessionFailed, err)
	}

	s.publish(ctx, events.TypeCustomerSignedUp, customer)

	s.log.Info("Customer signed up",
		zap.Int64("customer_id", customer.ID),
		zap.String("email", customer.Email),
		zap.String("role", string(customer.Role)))

	resp := response.AuthToResponse(customer, session)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	email := entity.NormalizeEmail(req.Email)

	// 1. Validasi
	if email == "" || req.Password == "" {
		return nil, validationError(msgLoginRequired)
	}

	// 2. Find customer
	customer, err := s.repo.Customer.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find customer", zap.Error(err), zap.String("email", email))
		return nil, newError(KindPersistence, msgLookupFailed, err)
	}
	if customer == nil {
		s.log.Warn("Customer not found for login", zap.String("email", email))
		return nil, newError(KindNotFound, msgNoAccount, nil)
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, customer.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("customer_id", customer.ID))
		return nil, newError(KindAuthentication, msgWrongPassword, nil)
	}

	// 4. Issue session
	session, err := s.issuer.Issue(customer, s.config.Auth.SessionTTLHours, nil)
	if err != nil {
		s.log.Error("Failed to issue session", zap.Error(err), zap.Int64("customer_id", customer.ID))
		return nil, newError(KindInfrastructure, msgSessionFailed, err)
	}

	s.log.Info("Customer logged in", zap.Int64("customer_id", customer.ID))

	resp := response.AuthToResponse(customer, session)
	return &resp, nil
}

func (s *authService) ProviderLogin(ctx context.Context, req *request.ProviderLoginRequest) (*response.AuthResponse, error) {
	email := entity.NormalizeEmail(req.Email)
	provider := entity.NormalizeProvider(req.Provider)

	if email == "" {
		return nil, validationError(msgProviderEmail)
	}

	customer, err := s.repo.Customer.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find customer", zap.Error(err), zap.String("email", email))
		return nil, newError(KindPersistence, msgProviderFailed, err)
	}

	if customer == nil {
		customer, err = s.provisionProviderCustomer(ctx, email, strings.TrimSpace(req.Name), provider)
		if err != nil {
			return nil, err
		}
		s.publish(ctx, events.TypeCustomerProviderLinked, customer)
	} else if customer.ProviderName() != provider {
		result := s.reconcileProvider(ctx, customer, provider)
		if result.Err != nil {
			// login continues with whatever provider was stored before
			s.log.Warn("Provider reconcile failed",
				zap.Error(result.Err),
				zap.Int64("customer_id", customer.ID),
				zap.String("provider", provider))
		} else {
			customer = result.Customer
			s.publish(ctx, events.TypeCustomerProviderLinked, customer)
		}
	}

	session, err := s.issuer.Issue(customer, s.config.Auth.SessionTTLHours, &SessionOverrides{Provider: provider})
	if err != nil {
		s.log.Error("Failed to issue session", zap.Error(err), zap.Int64("customer_id", customer.ID))
		return nil, newError(KindInfrastructure, msgSessionFailed, err)
	}

	s.log.Info("Customer signed in with provider",
		zap.Int64("customer_id", customer.ID),
		zap.String("provider", provider))

	resp := response.AuthToResponse(customer, session)
	return &resp, nil
}

// Logout is stateless: sessions are not stored, so there is nothing to revoke.
func (s *authService) Logout(ctx context.Context) error {
	s.log.Debug("Customer logged out")
	return nil
}

// ==================== HELPER METHODS ====================

func validateSignup(name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return validationError(msgSignupRequired)
	}
	if !utils.IsEmail(email) {
		return validationError(msgInvalidEmail)
	}
	if len(password) < minPasswordLength {
		return validationError(msgPasswordTooShort)
	}
	if len(password) > maxPasswordBytes {
		return validationError(msgPasswordTooLong)
	}
	return nil
}

func (s *authService) provisionProviderCustomer(ctx context.Context, email, name, provider string) (*entity.Customer, error) {
	if name == "" {
		name = emailLocalPart(email)
	}

	throwaway, err := utils.GenerateThrowawayPassword()
	if err != nil {
		s.log.Error("Failed to generate throwaway password", zap.Error(err))
		return nil, newError(KindInfrastructure, msgProviderFailed, err)
	}

	creds, err := utils.HashPassword(throwaway, s.config.Auth.BcryptRounds)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, newError(KindInfrastructure, msgProviderFailed, err)
	}

	now := time.Now().UTC()
	customer := &entity.Customer{
		Base:         entity.Base{CreatedAt: now, UpdatedAt: now},
		Name:         name,
		Email:        email,
		PasswordHash: creds.Hash,
		Salt:         creds.Salt,
		Role:         entity.ParseRole(string(s.config.Auth.DefaultProviderRole), entity.RoleBasic),
		Provider:     &provider,
	}

	if err := s.repo.Customer.Create(ctx, customer); err != nil {
		s.log.Error("Failed to create provider customer", zap.Error(err), zap.String("email", email))
		return nil, newError(KindPersistence, msgProviderFailed, err)
	}

	s.log.Info("Provider customer provisioned",
		zap.Int64("customer_id", customer.ID),
		zap.String("provider", provider))

	return customer, nil
}

// providerReconcile is the outcome of moving a customer onto a new provider.
// Customer is the refreshed record and is only set when Err is nil.
type providerReconcile struct {
	Customer *entity.Customer
	Err      error
}

func (s *authService) reconcileProvider(ctx context.Context, customer *entity.Customer, provider string) providerReconcile {
	if err := s.repo.Customer.UpdateProvider(ctx, customer.ID, provider); err != nil {
		return providerReconcile{Err: err}
	}

	updated, err := s.repo.Customer.FindByID(ctx, customer.ID)
	if err != nil || updated == nil {
		// the write went through; patch the copy we already hold
		patched := *customer
		patched.Provider = &provider
		return providerReconcile{Customer: &patched}
	}

	return providerReconcile{Customer: updated}
}

func (s *authService) publish(ctx context.Context, eventType string, customer *entity.Customer) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := events.CustomerEvent{
		Type:       eventType,
		CustomerID: customer.ID,
		Email:      customer.Email,
		Role:       string(customer.Role),
		Provider:   customer.ProviderName(),
		OccurredAt: time.Now().UTC(),
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("Failed to publish customer event",
			zap.Error(err),
			zap.String("type", eventType),
			zap.Int64("customer_id", customer.ID))
	}
}

func emailLocalPart(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
