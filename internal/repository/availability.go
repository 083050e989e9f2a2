package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/ports/availabilitytx"
)

// AvailabilityRepo represents availability repository.
type AvailabilityRepo struct {
	db *pgxpool.Pool
}

// NewAvailabilityRepo creates a new AvailabilityRepo.
func NewAvailabilityRepo(db *pgxpool.Pool) *AvailabilityRepo {
	return &AvailabilityRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *AvailabilityRepo) WithTx(ctx context.Context, fn func(tx availabilitytx.Repository) error) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) availabilitytx.Repository {
		return &availabilityTx{tx: tx}
	}, fn)
}

type slotRow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func encodeSlots(slots []domain.TimeSlot) ([]byte, error) {
	rows := make([]slotRow, len(slots))
	for i, s := range slots {
		rows[i] = slotRow(s)
	}
	return json.Marshal(rows)
}

func decodeSlots(raw []byte) ([]domain.TimeSlot, error) {
	var rows []slotRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	slots := make([]domain.TimeSlot, len(rows))
	for i, s := range rows {
		slots[i] = domain.TimeSlot(s)
	}
	return slots, nil
}

// Get - get availability by id.
func (r *AvailabilityRepo) Get(ctx context.Context, id string) (*domain.Availability, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, user_id, date, slots, work_type, is_recurring,
               COALESCE(recurrence_pattern, ''), recurrence_end, excluded_dates,
               max_capacity, notes, service_area_ids, created_at
        FROM availabilities
        WHERE id = $1
    `, id)

	var (
		a       domain.Availability
		raw     []byte
		pattern string
	)
	err := row.Scan(&a.ID, &a.UserID, &a.Date, &raw, &a.WorkType, &a.IsRecurring,
		&pattern, &a.RecurrenceEnd, &a.ExcludedDates,
		&a.MaxCapacity, &a.Notes, &a.ServiceAreaIDs, &a.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get availability %q: %w", id, err)
	}
	if a.Slots, err = decodeSlots(raw); err != nil {
		return nil, fmt.Errorf("decode slots of availability %q: %w", id, err)
	}
	a.Pattern = domain.RecurrencePattern(pattern)
	return &a, nil
}

// ListOccurrences - list occurrences of an availability ordered by date.
func (r *AvailabilityRepo) ListOccurrences(ctx context.Context, availabilityID string) ([]domain.Occurrence, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, availability_id, user_id, date, work_type, max_capacity, notes
        FROM availability_occurrences
        WHERE availability_id = $1
        ORDER BY date ASC
    `, availabilityID)
	if err != nil {
		return nil, fmt.Errorf("list occurrences of %q: %w", availabilityID, err)
	}
	defer rows.Close()

	out := make([]domain.Occurrence, 0)
	for rows.Next() {
		var o domain.Occurrence
		if err := rows.Scan(&o.ID, &o.AvailabilityID, &o.UserID, &o.Date,
			&o.WorkType, &o.MaxCapacity, &o.Notes); err != nil {
			return nil, fmt.Errorf("scan occurrence: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate occurrences: %w", err)
	}
	return out, nil
}

type availabilityTx struct {
	tx pgx.Tx
}

// MissingServiceAreas returns the ids from the input that have no service area row.
func (r *availabilityTx) MissingServiceAreas(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.tx.Query(ctx, `
        SELECT u.id
        FROM unnest($1::text[]) AS u(id)
        WHERE NOT EXISTS (SELECT 1 FROM service_areas s WHERE s.id = u.id)
    `, ids)
	if err != nil {
		return nil, fmt.Errorf("check service areas: %w", err)
	}
	missing, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("check service areas: %w", err)
	}
	return missing, nil
}

func (r *availabilityTx) InsertAvailability(ctx context.Context, a *domain.Availability) error {
	slots, err := encodeSlots(a.Slots)
	if err != nil {
		return fmt.Errorf("encode slots: %w", err)
	}
	var pattern *string
	if a.Pattern != domain.PatternNone {
		p := string(a.Pattern)
		pattern = &p
	}
	excluded := a.ExcludedDates
	if excluded == nil {
		excluded = []time.Time{}
	}
	areas := a.ServiceAreaIDs
	if areas == nil {
		areas = []string{}
	}

	err = r.tx.QueryRow(ctx, `
        INSERT INTO availabilities (id, user_id, date, slots, work_type, is_recurring,
            recurrence_pattern, recurrence_end, excluded_dates, max_capacity, notes, service_area_ids)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING created_at
    `, a.ID, a.UserID, a.Date, slots, a.WorkType, a.IsRecurring,
		pattern, a.RecurrenceEnd, excluded, a.MaxCapacity, a.Notes, areas).Scan(&a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert availability: %w", err)
	}
	return nil
}

func (r *availabilityTx) UpsertOccurrences(ctx context.Context, occ []domain.Occurrence) (int64, error) {
	if len(occ) == 0 {
		return 0, nil
	}

	var (
		ids      = make([]string, len(occ))
		parents  = make([]string, len(occ))
		users    = make([]string, len(occ))
		dates    = make([]time.Time, len(occ))
		types    = make([]string, len(occ))
		capacity = make([]int32, len(occ))
		notes    = make([]string, len(occ))
	)
	for i, o := range occ {
		ids[i] = o.ID
		parents[i] = o.AvailabilityID
		users[i] = o.UserID
		dates[i] = o.Date
		types[i] = o.WorkType
		capacity[i] = int32(o.MaxCapacity)
		notes[i] = o.Notes
	}

	ct, err := r.tx.Exec(ctx, `
        INSERT INTO availability_occurrences (id, availability_id, user_id, date, work_type, max_capacity, notes)
        SELECT * FROM unnest($1::text[], $2::text[], $3::text[], $4::date[], $5::text[], $6::int[], $7::text[])
        ON CONFLICT (availability_id, date) DO NOTHING
    `, ids, parents, users, dates, types, capacity, notes)
	if err != nil {
		return 0, fmt.Errorf("upsert occurrences: %w", err)
	}
	return ct.RowsAffected(), nil
}
