package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresClientRepository - таблица clients.
type PostgresClientRepository struct {
	pool *pgxpool.Pool
}

const clientColumns = `id, full_name, passport_number, phone`

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	if err := row.Scan(&c.ID, &c.FullName, &c.PassportNumber, &c.Phone); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresClientRepository) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresClientRepository",
		"method":    method,
	})
}

func (r *PostgresClientRepository) Create(ctx context.Context, client domain.Client) (*domain.Client, error) {
	repoLogger := r.logger(ctx, "Create")

	query := `INSERT INTO clients (full_name, passport_number, phone) VALUES ($1, $2, $3) RETURNING ` + clientColumns
	created, err := scanClient(r.pool.QueryRow(ctx, query, client.FullName, client.PassportNumber, client.Phone))
	if err != nil {
		repoLogger.Error("Failed to insert client", err, port.Fields{"query": query})
		return nil, translateWriteError(err, "failed to insert client")
	}

	repoLogger.Debug("Client inserted", port.Fields{"client_id": created.ID})
	return created, nil
}

func (r *PostgresClientRepository) Get(ctx context.Context, id int) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	client, err := scanClient(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		r.logger(ctx, "Get").Error("Failed to get client", err, port.Fields{"client_id": id})
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

func (r *PostgresClientRepository) GetAll(ctx context.Context) ([]domain.Client, error) {
	repoLogger := r.logger(ctx, "GetAll")

	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query clients", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			repoLogger.Error("Failed to scan client row", err, nil)
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, *c)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during clients iteration", err, nil)
		return nil, fmt.Errorf("error during clients iteration: %w", err)
	}
	return clients, nil
}

func (r *PostgresClientRepository) Update(ctx context.Context, client domain.Client) (*domain.Client, error) {
	repoLogger := r.logger(ctx, "Update")

	query := `UPDATE clients SET full_name = $2, passport_number = $3, phone = $4 WHERE id = $1 RETURNING ` + clientColumns
	updated, err := scanClient(r.pool.QueryRow(ctx, query, client.ID, client.FullName, client.PassportNumber, client.Phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		repoLogger.Error("Failed to update client", err, port.Fields{"client_id": client.ID})
		return nil, translateWriteError(err, "failed to update client")
	}
	return updated, nil
}

// Delete удаляет клиента; его заявки уходят по ON DELETE CASCADE.
func (r *PostgresClientRepository) Delete(ctx context.Context, id int) (bool, error) {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		r.logger(ctx, "Delete").Error("Failed to delete client", err, port.Fields{"client_id": id})
		return false, fmt.Errorf("failed to delete client: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
