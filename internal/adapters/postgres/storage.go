package postgres_adapter

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// PostgresStorage собирает репозитории поверх одного пула.
type PostgresStorage struct {
	pool       *pgxpool.Pool
	clients    *PostgresClientRepository
	properties *PostgresPropertyRepository
	requests   *PostgresRequestRepository
}

func NewPostgresStorage(pool *pgxpool.Pool) (*PostgresStorage, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresStorage{
		pool:       pool,
		clients:    &PostgresClientRepository{pool: pool},
		properties: &PostgresPropertyRepository{pool: pool},
		requests:   &PostgresRequestRepository{pool: pool},
	}, nil
}

// EnsureSchema создает таблицы, если их еще нет.
func (s *PostgresStorage) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (s *PostgresStorage) Clients() port.ClientRepositoryPort       { return s.clients }
func (s *PostgresStorage) Properties() port.PropertyRepositoryPort { return s.properties }
func (s *PostgresStorage) Requests() port.RequestRepositoryPort     { return s.requests }

func (s *PostgresStorage) IsEmpty(ctx context.Context) (bool, error) {
	query := `SELECT NOT EXISTS (SELECT 1 FROM clients)
		AND NOT EXISTS (SELECT 1 FROM properties)
		AND NOT EXISTS (SELECT 1 FROM requests)`

	var empty bool
	if err := s.pool.QueryRow(ctx, query).Scan(&empty); err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to check if storage is empty", err, port.Fields{
			"component": "PostgresStorage",
		})
		return false, fmt.Errorf("failed to check storage emptiness: %w", err)
	}
	return empty, nil
}

func (s *PostgresStorage) Close(ctx context.Context) error {
	s.pool.Close()
	return nil
}

// translateWriteError превращает нарушение уникальности и внешнего ключа
// в доменные ошибки. Остальное оборачивается как есть.
func translateWriteError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", op, domain.ErrConflict)
		case "23503": // foreign_key_violation
			if pgErr.ConstraintName == "requests_property_id_fkey" {
				return fmt.Errorf("%s: %w", op, domain.ErrPropertyNotFound)
			}
			return fmt.Errorf("%s: %w", op, domain.ErrClientNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
