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

// PostgresPropertyRepository - таблица properties.
type PostgresPropertyRepository struct {
	pool *pgxpool.Pool
}

const propertyColumns = `id, cadastral_number, address, floors, total_area, rooms,
	ceiling_height, floor_number, has_encumbrance, property_type, purpose`

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var (
		p            domain.Property
		propertyType string
		purpose      string
	)
	err := row.Scan(&p.ID, &p.CadastralNumber, &p.Address, &p.Floors, &p.TotalArea, &p.Rooms,
		&p.CeilingHeight, &p.FloorNumber, &p.HasEncumbrance, &propertyType, &purpose)
	if err != nil {
		return nil, err
	}
	p.Type = domain.PropertyType(propertyType)
	p.Purpose = domain.PropertyPurpose(purpose)
	return &p, nil
}

func propertyArgs(p domain.Property) []any {
	return []any{p.CadastralNumber, p.Address, p.Floors, p.TotalArea, p.Rooms,
		p.CeilingHeight, p.FloorNumber, p.HasEncumbrance, string(p.Type), string(p.Purpose)}
}

func (r *PostgresPropertyRepository) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresPropertyRepository",
		"method":    method,
	})
}

func (r *PostgresPropertyRepository) Create(ctx context.Context, property domain.Property) (*domain.Property, error) {
	repoLogger := r.logger(ctx, "Create")

	query := `INSERT INTO properties (cadastral_number, address, floors, total_area, rooms,
		ceiling_height, floor_number, has_encumbrance, property_type, purpose)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + propertyColumns
	created, err := scanProperty(r.pool.QueryRow(ctx, query, propertyArgs(property)...))
	if err != nil {
		repoLogger.Error("Failed to insert property", err, nil)
		return nil, translateWriteError(err, "failed to insert property")
	}

	repoLogger.Debug("Property inserted", port.Fields{"property_id": created.ID})
	return created, nil
}

func (r *PostgresPropertyRepository) Get(ctx context.Context, id int) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	property, err := scanProperty(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		r.logger(ctx, "Get").Error("Failed to get property", err, port.Fields{"property_id": id})
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return property, nil
}

func (r *PostgresPropertyRepository) GetAll(ctx context.Context) ([]domain.Property, error) {
	repoLogger := r.logger(ctx, "GetAll")

	query := `SELECT ` + propertyColumns + ` FROM properties ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, nil)
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := make([]domain.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			repoLogger.Error("Failed to scan property row", err, nil)
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, *p)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during properties iteration", err, nil)
		return nil, fmt.Errorf("error during properties iteration: %w", err)
	}
	return properties, nil
}

func (r *PostgresPropertyRepository) Update(ctx context.Context, property domain.Property) (*domain.Property, error) {
	query := `UPDATE properties SET cadastral_number = $1, address = $2, floors = $3, total_area = $4,
		rooms = $5, ceiling_height = $6, floor_number = $7, has_encumbrance = $8,
		property_type = $9, purpose = $10
		WHERE id = $11
		RETURNING ` + propertyColumns
	args := append(propertyArgs(property), property.ID)

	updated, err := scanProperty(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		r.logger(ctx, "Update").Error("Failed to update property", err, port.Fields{"property_id": property.ID})
		return nil, translateWriteError(err, "failed to update property")
	}
	return updated, nil
}

// Delete удаляет объект вместе с заявками на него (ON DELETE CASCADE).
func (r *PostgresPropertyRepository) Delete(ctx context.Context, id int) (bool, error) {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		r.logger(ctx, "Delete").Error("Failed to delete property", err, port.Fields{"property_id": id})
		return false, fmt.Errorf("failed to delete property: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
