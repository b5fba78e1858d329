package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"secure-it/internal/data/entity"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const mysqlDuplicateEntry = 1062

type mysqlCustomerRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewMySQLCustomerRepository(db *sqlx.DB, log *zap.Logger) CustomerRepository {
	return &mysqlCustomerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer_mysql")),
	}
}

func (r *mysqlCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (full_name, email, password_hash, salt, role, provider,
		                       created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		customer.Name,
		customer.Email,
		customer.PasswordHash,
		customer.Salt,
		customer.Role,
		customer.Provider,
		customer.CreatedAt,
		customer.UpdatedAt,
	)
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
			r.log.Warn("Duplicate customer email", zap.String("email", customer.Email))
			return fmt.Errorf("create customer %s: %w", customer.Email, ErrDuplicateEmail)
		}

		r.log.Error("Failed to create customer", zap.Error(err), zap.String("email", customer.Email))
		return fmt.Errorf("create customer %s: %w", customer.Email, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read id for customer %s: %w", customer.Email, err)
	}
	customer.ID = id

	return nil
}

func (r *mysqlCustomerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = ? LIMIT 1`

	var c entity.Customer
	err := r.db.GetContext(ctx, &c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by ID", zap.Error(err), zap.Int64("customer_id", id))
		return nil, fmt.Errorf("find customer by ID %d: %w", id, err)
	}

	return &c, nil
}

func (r *mysqlCustomerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	email = entity.NormalizeEmail(email)
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = ? LIMIT 1`

	var c entity.Customer
	err := r.db.GetContext(ctx, &c, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find customer by email %s: %w", email, err)
	}

	return &c, nil
}

func (r *mysqlCustomerRepository) UpdateProvider(ctx context.Context, id int64, provider string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE customers SET provider = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		provider, id)
	if err != nil {
		r.log.Error("Failed to update customer provider",
			zap.Error(err),
			zap.Int64("customer_id", id),
			zap.String("provider", provider),
		)
		return fmt.Errorf("update provider for customer %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update provider for customer %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("update provider for customer %d: %w", id, ErrCustomerNotFound)
	}

	return nil
}
