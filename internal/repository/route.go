package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ecodeli-dispatch/internal/domain"
)

// RouteRepo represents planned route repository.
type RouteRepo struct {
	db *pgxpool.Pool
}

// NewRouteRepo creates a new RouteRepo.
func NewRouteRepo(db *pgxpool.Pool) *RouteRepo {
	return &RouteRepo{db: db}
}

const routeColumns = `id, deliverer_id, start_address, start_lat, start_lon,
        end_address, end_lat, end_lon, planned_date, window_start, window_end,
        vehicle_type, capacity, is_active, notify_on_match, status, created_at`

func scanRoute(row pgx.Row) (*domain.PlannedRoute, error) {
	var (
		r                domain.PlannedRoute
		winStart, winEnd *string
		vehicle, status  string
	)
	err := row.Scan(&r.ID, &r.DelivererID, &r.Start.Address, &r.Start.Point.Lat, &r.Start.Point.Lon,
		&r.End.Address, &r.End.Point.Lat, &r.End.Point.Lon, &r.PlannedDate, &winStart, &winEnd,
		&vehicle, &r.Capacity, &r.IsActive, &r.NotifyOnMatch, &status, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	if winStart != nil && winEnd != nil {
		r.Window = &domain.TimeSlot{Start: *winStart, End: *winEnd}
	}
	r.Vehicle = domain.VehicleType(vehicle)
	r.Status = domain.RouteStatus(status)
	return &r, nil
}

// Create - insert a new planned route.
func (r *RouteRepo) Create(ctx context.Context, route *domain.PlannedRoute) error {
	var winStart, winEnd *string
	if route.Window != nil {
		winStart, winEnd = &route.Window.Start, &route.Window.End
	}

	err := r.db.QueryRow(ctx, `
        INSERT INTO planned_routes (id, deliverer_id, start_address, start_lat, start_lon,
            end_address, end_lat, end_lon, planned_date, window_start, window_end,
            vehicle_type, capacity, is_active, notify_on_match, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
        RETURNING created_at
    `, route.ID, route.DelivererID, route.Start.Address, route.Start.Point.Lat, route.Start.Point.Lon,
		route.End.Address, route.End.Point.Lat, route.End.Point.Lon, route.PlannedDate, winStart, winEnd,
		string(route.Vehicle), route.Capacity, route.IsActive, route.NotifyOnMatch,
		string(route.Status)).Scan(&route.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert route: %w", err)
	}
	return nil
}

// Get - get planned route by id.
func (r *RouteRepo) Get(ctx context.Context, id string) (*domain.PlannedRoute, error) {
	row := r.db.QueryRow(ctx, `
        SELECT `+routeColumns+`
        FROM planned_routes
        WHERE id = $1
    `, id)

	route, err := scanRoute(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get route %q: %w", id, err)
	}
	return route, nil
}

// ListByDeliverer - list routes of a deliverer, soonest first.
func (r *RouteRepo) ListByDeliverer(ctx context.Context, delivererID string) ([]domain.PlannedRoute, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+routeColumns+`
        FROM planned_routes
        WHERE deliverer_id = $1
        ORDER BY planned_date ASC, created_at ASC
    `, delivererID)
	if err != nil {
		return nil, fmt.Errorf("list routes of %q: %w", delivererID, err)
	}
	defer rows.Close()

	out := make([]domain.PlannedRoute, 0)
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		out = append(out, *route)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate routes: %w", err)
	}
	return out, nil
}
