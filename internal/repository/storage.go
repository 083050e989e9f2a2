package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"ecodeli-dispatch/internal/domain"
)

// StorageRepo represents storage location repository.
type StorageRepo struct {
	db *pgxpool.Pool
}

// NewStorageRepo creates a new StorageRepo.
func NewStorageRepo(db *pgxpool.Pool) *StorageRepo {
	return &StorageRepo{db: db}
}

// ListActive - list all active storage locations.
func (r *StorageRepo) ListActive(ctx context.Context) ([]domain.StorageLocation, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, name, address, city, lat, lon, is_active
        FROM storage_locations
        WHERE is_active
        ORDER BY id ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("list storage locations: %w", err)
	}
	defer rows.Close()

	out := make([]domain.StorageLocation, 0)
	for rows.Next() {
		var s domain.StorageLocation
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.City,
			&s.Point.Lat, &s.Point.Lon, &s.IsActive); err != nil {
			return nil, fmt.Errorf("scan storage location: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate storage locations: %w", err)
	}
	return out, nil
}
