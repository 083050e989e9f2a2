package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ecodeli-dispatch/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var announcementColumns = []string{
	"id", "client_id", "title",
	"pickup_address", "pickup_lat", "pickup_lon",
	"delivery_address", "delivery_lat", "delivery_lon",
	"price", "delivery_type", "priority", "urgency", "pickup_date",
	"status", "deliverer_id", "applications_count", "created_at", "updated_at",
}

func scanAnnouncement(row pgx.Row) (*domain.Announcement, error) {
	var (
		a       domain.Announcement
		urgency string
		status  string
	)
	err := row.Scan(&a.ID, &a.ClientID, &a.Title,
		&a.Pickup.Address, &a.Pickup.Point.Lat, &a.Pickup.Point.Lon,
		&a.Delivery.Address, &a.Delivery.Point.Lat, &a.Delivery.Point.Lon,
		&a.Price, &a.DeliveryType, &a.Priority, &urgency, &a.PickupDate,
		&status, &a.DelivererID, &a.ApplicationsCount, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.Urgency = domain.Urgency(urgency)
	a.Status = domain.AnnouncementStatus(status)
	return &a, nil
}

func collectAnnouncements(rows pgx.Rows) ([]domain.Announcement, error) {
	defer rows.Close()

	out := make([]domain.Announcement, 0)
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate announcements: %w", err)
	}
	return out, nil
}

// AnnouncementRepo represents delivery request repository.
type AnnouncementRepo struct {
	db *pgxpool.Pool
}

// NewAnnouncementRepo creates a new AnnouncementRepo.
func NewAnnouncementRepo(db *pgxpool.Pool) *AnnouncementRepo {
	return &AnnouncementRepo{db: db}
}

// Get - get announcement by id.
func (r *AnnouncementRepo) Get(ctx context.Context, id string) (*domain.Announcement, error) {
	query, args, err := psql.Select(announcementColumns...).
		From("announcements").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get announcement query: %w", err)
	}

	a, err := scanAnnouncement(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get announcement %q: %w", id, err)
	}
	return a, nil
}

// SearchOpen - list open, unassigned announcements matching the non-spatial
// part of the filter, ordered by priority then recency. Distance filtering is
// left to the caller.
func (r *AnnouncementRepo) SearchOpen(ctx context.Context, f domain.AnnouncementFilter) ([]domain.Announcement, error) {
	q := psql.Select(announcementColumns...).
		From("announcements").
		Where(squirrel.Eq{"status": string(domain.AnnouncementOpen), "deliverer_id": nil})

	if f.MinPrice != nil {
		q = q.Where(squirrel.GtOrEq{"price": *f.MinPrice})
	}
	if f.MaxPrice != nil {
		q = q.Where(squirrel.LtOrEq{"price": *f.MaxPrice})
	}
	if len(f.DeliveryTypes) > 0 {
		q = q.Where(squirrel.Eq{"delivery_type": f.DeliveryTypes})
	}
	if f.Urgency != nil {
		q = q.Where(squirrel.Eq{"urgency": string(*f.Urgency)})
	}
	if f.PickupFrom != nil {
		q = q.Where(squirrel.GtOrEq{"pickup_date": domain.DateOf(*f.PickupFrom)})
	}
	if f.PickupTo != nil {
		q = q.Where(squirrel.LtOrEq{"pickup_date": domain.DateOf(*f.PickupTo)})
	}
	q = q.OrderBy("priority DESC", "created_at DESC", "id ASC")
	// with a reference point the limit applies after distance filtering
	if f.Limit > 0 && f.Near == nil {
		q = q.Limit(uint64(f.Limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search announcements: %w", err)
	}
	return collectAnnouncements(rows)
}

// ListOpenForDates - list open, unassigned announcements whose preferred
// pickup date lies in [from, to].
func (r *AnnouncementRepo) ListOpenForDates(ctx context.Context, from, to time.Time) ([]domain.Announcement, error) {
	query, args, err := psql.Select(announcementColumns...).
		From("announcements").
		Where(squirrel.Eq{"status": string(domain.AnnouncementOpen), "deliverer_id": nil}).
		Where(squirrel.GtOrEq{"pickup_date": domain.DateOf(from)}).
		Where(squirrel.LtOrEq{"pickup_date": domain.DateOf(to)}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build open announcements query: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list open announcements: %w", err)
	}
	return collectAnnouncements(rows)
}

