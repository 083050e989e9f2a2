package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ecodeli-dispatch/internal/apperr"
	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/ports/assignmenttx"
)

// AssignmentRepo represents the repository behind application submission and
// resolution.
type AssignmentRepo struct {
	db *pgxpool.Pool
}

// NewAssignmentRepo creates a new AssignmentRepo.
func NewAssignmentRepo(db *pgxpool.Pool) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *AssignmentRepo) WithTx(ctx context.Context, fn func(tx assignmenttx.Repository) error) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) assignmenttx.Repository {
		return &assignmentTx{tx: tx}
	}, fn)
}

type assignmentTx struct {
	tx pgx.Tx
}

const applicationColumns = `id, announcement_id, deliverer_id, proposed_price,
        estimated_pickup_time, estimated_delivery_time, message, status,
        applied_at, reviewed_at, reviewer_id`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var (
		a      domain.Application
		status string
	)
	err := row.Scan(&a.ID, &a.AnnouncementID, &a.DelivererID, &a.ProposedPrice,
		&a.EstimatedPickupTime, &a.EstimatedDeliveryTime, &a.Message, &status,
		&a.AppliedAt, &a.ReviewedAt, &a.ReviewerID)
	if err != nil {
		return nil, err
	}
	a.Status = domain.ApplicationStatus(status)
	return &a, nil
}

// GetAnnouncementForUpdate - get announcement and lock its row.
func (r *assignmentTx) GetAnnouncementForUpdate(ctx context.Context, id string) (*domain.Announcement, error) {
	row := r.tx.QueryRow(ctx, `
        SELECT `+strings.Join(announcementColumns, ", ")+`
        FROM announcements
        WHERE id = $1
        FOR UPDATE
    `, id)

	a, err := scanAnnouncement(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock announcement %q: %w", id, err)
	}
	return a, nil
}

// MarkAnnouncementAssigned - move an open, unassigned announcement to ASSIGNED.
// Fails with apperr.AlreadyAssigned when the row no longer qualifies.
func (r *assignmentTx) MarkAnnouncementAssigned(ctx context.Context, id, delivererID string, at time.Time) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE announcements
        SET status = $2, deliverer_id = $3, updated_at = $4
        WHERE id = $1
          AND status = $5
          AND deliverer_id IS NULL
    `, id, string(domain.AnnouncementAssigned), delivererID, at, string(domain.AnnouncementOpen))
	if err != nil {
		return fmt.Errorf("assign announcement %q: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.AlreadyAssigned
	}
	return nil
}

// IncrementApplicationsCount - bump the applications counter of an announcement.
func (r *assignmentTx) IncrementApplicationsCount(ctx context.Context, announcementID string) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE announcements
        SET applications_count = applications_count + 1
        WHERE id = $1
    `, announcementID)
	if err != nil {
		return fmt.Errorf("increment applications count %q: %w", announcementID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("announcement %q not found", announcementID)
	}
	return nil
}

// GetApplication - get application by id without locking.
func (r *assignmentTx) GetApplication(ctx context.Context, id string) (*domain.Application, error) {
	return r.getApplication(ctx, id, "")
}

// GetApplicationForUpdate - get application by id and lock its row.
func (r *assignmentTx) GetApplicationForUpdate(ctx context.Context, id string) (*domain.Application, error) {
	return r.getApplication(ctx, id, "FOR UPDATE")
}

func (r *assignmentTx) getApplication(ctx context.Context, id, lock string) (*domain.Application, error) {
	row := r.tx.QueryRow(ctx, `
        SELECT `+applicationColumns+`
        FROM delivery_applications
        WHERE id = $1
        `+lock, id)

	a, err := scanApplication(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get application %q: %w", id, err)
	}
	return a, nil
}

// FindApplication - find the application of a deliverer on an announcement.
func (r *assignmentTx) FindApplication(ctx context.Context, announcementID, delivererID string) (*domain.Application, error) {
	row := r.tx.QueryRow(ctx, `
        SELECT `+applicationColumns+`
        FROM delivery_applications
        WHERE announcement_id = $1 AND deliverer_id = $2
    `, announcementID, delivererID)

	a, err := scanApplication(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return a, nil
}

// InsertApplication - insert a new application. A second application of the
// same deliverer on the same announcement yields apperr.DuplicateApplication.
func (r *assignmentTx) InsertApplication(ctx context.Context, a *domain.Application) error {
	_, err := r.tx.Exec(ctx, `
        INSERT INTO delivery_applications (id, announcement_id, deliverer_id, proposed_price,
            estimated_pickup_time, estimated_delivery_time, message, status, applied_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, a.ID, a.AnnouncementID, a.DelivererID, a.ProposedPrice,
		a.EstimatedPickupTime, a.EstimatedDeliveryTime, a.Message, string(a.Status), a.AppliedAt)
	if err != nil {
		if c, ok := uniqueViolation(err); ok && c != constraintApplicationsPkey {
			return apperr.DuplicateApplication
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

// UpdateApplicationStatus - set the review outcome of an application.
func (r *assignmentTx) UpdateApplicationStatus(
	ctx context.Context,
	id string,
	status domain.ApplicationStatus,
	reviewedAt time.Time,
	reviewerID *string,
) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE delivery_applications
        SET status = $2, reviewed_at = $3, reviewer_id = $4
        WHERE id = $1
    `, id, string(status), reviewedAt, reviewerID)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return apperr.AlreadyAssigned
		}
		return fmt.Errorf("update application %q: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("application %q not found", id)
	}
	return nil
}

// RejectPendingSiblings - reject every other pending application of the
// announcement and return the rejected rows.
func (r *assignmentTx) RejectPendingSiblings(
	ctx context.Context,
	announcementID, exceptID string,
	at time.Time,
	reviewerID *string,
) ([]domain.Application, error) {
	rows, err := r.tx.Query(ctx, `
        UPDATE delivery_applications
        SET status = $3, reviewed_at = $4, reviewer_id = $5
        WHERE announcement_id = $1
          AND id <> $2
          AND status = $6
        RETURNING `+applicationColumns,
		announcementID, exceptID, string(domain.ApplicationRejected), at, reviewerID,
		string(domain.ApplicationPending))
	if err != nil {
		return nil, fmt.Errorf("reject sibling applications: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rejected application: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reject sibling applications: %w", err)
	}
	return out, nil
}

// TrackingNumberExists - check whether a tracking number is already taken.
func (r *assignmentTx) TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error) {
	var exists bool
	err := r.tx.QueryRow(ctx, `
        SELECT EXISTS (SELECT 1 FROM deliveries WHERE tracking_number = $1)
    `, trackingNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check tracking number: %w", err)
	}
	return exists, nil
}

// InsertDelivery - insert a new delivery.
func (r *assignmentTx) InsertDelivery(ctx context.Context, d *domain.Delivery) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO deliveries (id, announcement_id, application_id, client_id,
            deliverer_id, price, tracking_number, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING created_at
    `, d.ID, d.AnnouncementID, d.ApplicationID, d.ClientID,
		d.DelivererID, d.Price, d.TrackingNumber, string(d.Status), d.CreatedAt).Scan(&d.CreatedAt)
	if err != nil {
		if c, ok := uniqueViolation(err); ok && c == constraintDeliveryPerAnnouncing {
			return apperr.AlreadyAssigned
		}
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}
