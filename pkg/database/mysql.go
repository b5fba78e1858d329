package database

import (
	"context"
	"fmt"
	"time"

	"secure-it/pkg/utils"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// InitMySQL opens a sqlx handle on MySQL and verifies it with a ping.
func InitMySQL(config utils.DatabaseConfig) (*sqlx.DB, error) {
	dsnConfig := mysql.NewConfig()
	dsnConfig.User = config.User
	dsnConfig.Passwd = config.Password
	dsnConfig.Net = "tcp"
	dsnConfig.Addr = fmt.Sprintf("%s:%s", config.Host, config.Port)
	dsnConfig.DBName = config.Name
	dsnConfig.ParseTime = true
	dsnConfig.ClientFoundRows = true
	dsnConfig.Loc = time.UTC
	dsnConfig.Params = map[string]string{"charset": "utf8mb4"}

	db, err := sqlx.Open("mysql", dsnConfig.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	// Pool settings
	db.SetMaxOpenConns(int(config.MaxConns))
	db.SetMaxIdleConns(int(config.MaxConns))
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping mysql failed: %w", err)
	}

	return db, nil
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id            BIGINT AUTO_INCREMENT PRIMARY KEY,
		full_name     VARCHAR(255) NOT NULL,
		email         VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		salt          VARCHAR(64)  NOT NULL,
		role          VARCHAR(16)  NOT NULL DEFAULT 'basic',
		provider      VARCHAR(64)  NULL,
		created_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_customers_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
}

// EnsureMySQLSchema is the MySQL counterpart of EnsureSchema.
func EnsureMySQLSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range mysqlSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure mysql schema: %w", err)
		}
	}
	return nil
}
