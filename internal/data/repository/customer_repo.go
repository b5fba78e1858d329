package repository

import (
	"context"
	"errors"
	"fmt"

	"secure-it/internal/data/entity"
	"secure-it/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const pgUniqueViolation = "23505"

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	UpdateProvider(ctx context.Context, id int64, provider string) error
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

const customerColumns = `id, full_name, email, password_hash, salt, role, provider, created_at, updated_at`

// Create inserts a new customer and fills in the generated ID
func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (full_name, email, password_hash, salt, role, provider,
		                       created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		customer.Name,
		customer.Email,
		customer.PasswordHash,
		customer.Salt,
		customer.Role,
		customer.Provider,
		customer.CreatedAt,
		customer.UpdatedAt,
	).Scan(&customer.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			r.log.Warn("Duplicate customer email", zap.String("email", customer.Email))
			return fmt.Errorf("create customer %s: %w", customer.Email, ErrDuplicateEmail)
		}

		r.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("email", customer.Email),
		)
		return fmt.Errorf("create customer %s: %w", customer.Email, err)
	}

	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	customer, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find customer by ID", zap.Error(err), zap.Int64("customer_id", id))
		return nil, fmt.Errorf("find customer by ID %d: %w", id, err)
	}

	return customer, nil
}

func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	email = entity.NormalizeEmail(email)
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1 LIMIT 1`

	customer, err := r.scanOne(r.db.QueryRow(ctx, query, email))
	if err != nil {
		r.log.Error("Failed to find customer by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find customer by email %s: %w", email, err)
	}

	return customer, nil
}

func (r *customerRepository) UpdateProvider(ctx context.Context, id int64, provider string) error {
	query := `UPDATE customers SET provider = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, provider)
	if err != nil {
		r.log.Error("Failed to update customer provider",
			zap.Error(err),
			zap.Int64("customer_id", id),
			zap.String("provider", provider),
		)
		return fmt.Errorf("update provider for customer %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update provider for customer %d: %w", id, ErrCustomerNotFound)
	}

	return nil
}

// scanOne returns (nil, nil) when the row does not exist.
func (r *customerRepository) scanOne(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.PasswordHash,
		&c.Salt,
		&c.Role,
		&c.Provider,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}
