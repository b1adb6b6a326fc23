package postgres_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PostgresRequestRepository - таблица requests. Чтение всегда идет
// через JOIN с clients и properties.
type PostgresRequestRepository struct {
	pool *pgxpool.Pool
}

// amount читается как text, чтобы не терять точность NUMERIC.
const requestSelect = `SELECT r.id, r.request_type, r.amount::text, r.date_created,
	c.id, c.full_name, c.passport_number, c.phone,
	p.id, p.cadastral_number, p.address, p.floors, p.total_area, p.rooms,
	p.ceiling_height, p.floor_number, p.has_encumbrance, p.property_type, p.purpose
	FROM requests r
	JOIN clients c ON c.id = r.client_id
	JOIN properties p ON p.id = r.property_id`

func scanRequest(row pgx.Row) (*domain.Request, error) {
	var (
		req          domain.Request
		c            domain.Client
		p            domain.Property
		reqType      *string
		amount       *string
		dateCreated  *time.Time
		propertyType string
		purpose      string
	)
	err := row.Scan(&req.ID, &reqType, &amount, &dateCreated,
		&c.ID, &c.FullName, &c.PassportNumber, &c.Phone,
		&p.ID, &p.CadastralNumber, &p.Address, &p.Floors, &p.TotalArea, &p.Rooms,
		&p.CeilingHeight, &p.FloorNumber, &p.HasEncumbrance, &propertyType, &purpose)
	if err != nil {
		return nil, err
	}

	p.Type = domain.PropertyType(propertyType)
	p.Purpose = domain.PropertyPurpose(purpose)
	req.Client = &c
	req.Property = &p

	if reqType != nil {
		t := domain.RequestType(*reqType)
		req.Type = &t
	}
	if amount != nil {
		d, err := decimal.NewFromString(*amount)
		if err != nil {
			return nil, fmt.Errorf("bad amount %q in database: %w", *amount, err)
		}
		req.Amount = &d
	}
	if dateCreated != nil {
		d := domain.DateOf(*dateCreated)
		req.DateCreated = &d
	}
	return &req, nil
}

// requestArgs готовит nullable-колонки: nil уходит в NULL.
func requestArgs(input domain.RequestInput) (reqType, amount *string, dateCreated *time.Time) {
	if input.Type != nil {
		s := string(*input.Type)
		reqType = &s
	}
	if input.Amount != nil {
		s := input.Amount.String()
		amount = &s
	}
	if input.DateCreated != nil {
		t := input.DateCreated.Time()
		dateCreated = &t
	}
	return reqType, amount, dateCreated
}

func (r *PostgresRequestRepository) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresRequestRepository",
		"method":    method,
	})
}

func (r *PostgresRequestRepository) Create(ctx context.Context, input domain.RequestInput) (*domain.Request, error) {
	repoLogger := r.logger(ctx, "Create")

	reqType, amount, dateCreated := requestArgs(input)
	query := `INSERT INTO requests (client_id, property_id, request_type, amount, date_created)
		VALUES ($1, $2, $3, $4::numeric, $5) RETURNING id`

	var id int
	err := r.pool.QueryRow(ctx, query, input.ClientID, input.PropertyID, reqType, amount, dateCreated).Scan(&id)
	if err != nil {
		repoLogger.Error("Failed to insert request", err, port.Fields{
			"client_id":   input.ClientID,
			"property_id": input.PropertyID,
		})
		return nil, translateWriteError(err, "failed to insert request")
	}

	repoLogger.Debug("Request inserted", port.Fields{"request_id": id})
	return r.Get(ctx, id)
}

func (r *PostgresRequestRepository) Get(ctx context.Context, id int) (*domain.Request, error) {
	req, err := scanRequest(r.pool.QueryRow(ctx, requestSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		r.logger(ctx, "Get").Error("Failed to get request", err, port.Fields{"request_id": id})
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return req, nil
}

func (r *PostgresRequestRepository) Update(ctx context.Context, id int, input domain.RequestInput) (*domain.Request, error) {
	reqType, amount, dateCreated := requestArgs(input)
	query := `UPDATE requests SET client_id = $2, property_id = $3, request_type = $4,
		amount = $5::numeric, date_created = $6
		WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, id, input.ClientID, input.PropertyID, reqType, amount, dateCreated)
	if err != nil {
		r.logger(ctx, "Update").Error("Failed to update request", err, port.Fields{"request_id": id})
		return nil, translateWriteError(err, "failed to update request")
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, domain.ErrRequestNotFound
	}
	return r.Get(ctx, id)
}

func (r *PostgresRequestRepository) Delete(ctx context.Context, id int) (bool, error) {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		r.logger(ctx, "Delete").Error("Failed to delete request", err, port.Fields{"request_id": id})
		return false, fmt.Errorf("failed to delete request: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *PostgresRequestRepository) GetRequests(ctx context.Context) ([]domain.Request, error) {
	repoLogger := r.logger(ctx, "GetRequests")

	rows, err := r.pool.Query(ctx, requestSelect+` ORDER BY r.id`)
	if err != nil {
		repoLogger.Error("Failed to query requests", err, nil)
		return nil, fmt.Errorf("failed to query requests: %w", err)
	}
	defer rows.Close()

	requests := make([]domain.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			repoLogger.Error("Failed to scan request row", err, nil)
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		requests = append(requests, *req)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during requests iteration", err, nil)
		return nil, fmt.Errorf("error during requests iteration: %w", err)
	}

	repoLogger.Debug("Requests loaded", port.Fields{"total": len(requests)})
	return requests, nil
}
