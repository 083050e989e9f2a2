package assignment

import (
	"context"
	"strings"
	"time"

	"ecodeli-dispatch/internal/apperr"
	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/logx"
	"ecodeli-dispatch/internal/ports/assignmenttx"
)

// Resolve reviews an application. Accepting assigns the request to the
// application's deliverer, creates the delivery and rejects every other
// pending application, all in one transaction. Rejecting only changes the
// application itself.
//
// A CLIENT reviewer must own the request; other reviewer roles are trusted to
// have been authorized by the caller.
func (s *Service) Resolve(
	ctx context.Context,
	applicationID string,
	target domain.ApplicationStatus,
	reviewer domain.Actor,
) (domain.ResolveResult, error) {
	if strings.TrimSpace(applicationID) == "" {
		return domain.ResolveResult{}, apperr.Validation("application id is required")
	}
	if !target.Resolvable() {
		return domain.ResolveResult{}, apperr.Validation("status must be ACCEPTED or REJECTED")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		res    domain.ResolveResult
		req    domain.Announcement
		noop   bool
		now    = s.now()
		byWhom *string
	)
	if reviewer.ID != "" {
		byWhom = &reviewer.ID
	}

	err := s.repo.WithTx(ctx, func(tx assignmenttx.Repository) error {
		res = domain.ResolveResult{}
		noop = false

		app, err := tx.GetApplication(ctx, applicationID)
		if err != nil {
			return err
		}
		if app == nil {
			return apperr.NotFound("application")
		}

		// request row first: concurrent reviews of one request serialize here
		locked, err := tx.GetAnnouncementForUpdate(ctx, app.AnnouncementID)
		if err != nil {
			return err
		}
		if locked == nil {
			return apperr.NotFound("request")
		}
		if reviewer.Role == domain.RoleClient && locked.ClientID != reviewer.ID {
			return apperr.NotFound("application")
		}
		req = *locked

		app, err = tx.GetApplicationForUpdate(ctx, applicationID)
		if err != nil {
			return err
		}
		if app == nil {
			return apperr.NotFound("application")
		}

		if target == domain.ApplicationRejected {
			return s.reject(ctx, tx, app, now, byWhom, &res, &noop)
		}
		return s.accept(ctx, tx, req, app, now, byWhom, &res)
	})
	if err != nil {
		s.metrics.IncResolution(outcomeOf(err))
		return domain.ResolveResult{}, err
	}

	if noop {
		return res, nil
	}
	if target == domain.ApplicationAccepted {
		s.metrics.IncResolution("accepted")
		s.logger.Info("application accepted",
			logx.String("event", "application_accepted"),
			logx.String("application_id", res.Application.ID),
			logx.String("announcement_id", req.ID),
			logx.String("deliverer_id", res.Application.DelivererID),
			logx.String("tracking_number", res.Delivery.TrackingNumber),
			logx.Int("rejected", len(res.Rejected)),
		)
		s.notifyAccepted(ctx, req, res)
		return res, nil
	}

	s.metrics.IncResolution("rejected")
	s.logger.Info("application rejected",
		logx.String("event", "application_rejected"),
		logx.String("application_id", res.Application.ID),
		logx.String("announcement_id", req.ID),
	)
	s.notifyRejected(ctx, req, res.Application)
	return res, nil
}

func (s *Service) accept(
	ctx context.Context,
	tx assignmenttx.Repository,
	req domain.Announcement,
	app *domain.Application,
	now time.Time,
	reviewerID *string,
	res *domain.ResolveResult,
) error {
	if req.Status.Assigned() || req.DelivererID != nil {
		return apperr.AlreadyAssigned
	}
	if req.Status != domain.AnnouncementOpen {
		return apperr.RequestNotAvailable
	}
	if app.Status != domain.ApplicationPending {
		return apperr.RequestNotAvailable
	}

	if err := tx.MarkAnnouncementAssigned(ctx, req.ID, app.DelivererID, now); err != nil {
		return err
	}

	tn, err := uniqueTrackingNumber(ctx, tx, s.newTracking)
	if err != nil {
		return err
	}
	price := req.Price
	if app.ProposedPrice != nil {
		price = *app.ProposedPrice
	}
	d := domain.Delivery{
		ID:             s.newID(),
		AnnouncementID: req.ID,
		ApplicationID:  app.ID,
		ClientID:       req.ClientID,
		DelivererID:    app.DelivererID,
		Price:          price,
		TrackingNumber: tn,
		Status:         domain.DeliveryPendingPickup,
		CreatedAt:      now,
	}
	if err := tx.InsertDelivery(ctx, &d); err != nil {
		return err
	}

	if err := tx.UpdateApplicationStatus(ctx, app.ID, domain.ApplicationAccepted, now, reviewerID); err != nil {
		return err
	}
	app.Status = domain.ApplicationAccepted
	app.ReviewedAt = &now
	app.ReviewerID = reviewerID

	rejected, err := tx.RejectPendingSiblings(ctx, req.ID, app.ID, now, reviewerID)
	if err != nil {
		return err
	}

	res.Application = *app
	res.Delivery = &d
	res.Rejected = rejected
	return nil
}

func (s *Service) reject(
	ctx context.Context,
	tx assignmenttx.Repository,
	app *domain.Application,
	now time.Time,
	reviewerID *string,
	res *domain.ResolveResult,
	noop *bool,
) error {
	switch app.Status {
	case domain.ApplicationRejected:
		res.Application = *app
		*noop = true
		return nil
	case domain.ApplicationAccepted:
		return apperr.AlreadyAssigned
	}

	if err := tx.UpdateApplicationStatus(ctx, app.ID, domain.ApplicationRejected, now, reviewerID); err != nil {
		return err
	}
	app.Status = domain.ApplicationRejected
	app.ReviewedAt = &now
	app.ReviewerID = reviewerID
	res.Application = *app
	return nil
}

func (s *Service) notifyAccepted(ctx context.Context, req domain.Announcement, res domain.ResolveResult) {
	s.notify(ctx, domain.Notification{
		UserID:  res.Application.DelivererID,
		Title:   "Application accepted",
		Message: "Your application for " + req.Title + " was accepted",
		Type:    "APPLICATION_ACCEPTED",
		Data: map[string]any{
			"announcement_id": req.ID,
			"application_id":  res.Application.ID,
			"delivery_id":     res.Delivery.ID,
			"tracking_number": res.Delivery.TrackingNumber,
		},
	})
	for _, r := range res.Rejected {
		s.notifyRejected(ctx, req, r)
	}
}

func (s *Service) notifyRejected(ctx context.Context, req domain.Announcement, app domain.Application) {
	s.notify(ctx, domain.Notification{
		UserID:  app.DelivererID,
		Title:   "Application declined",
		Message: "Your application for " + req.Title + " was not selected",
		Type:    "APPLICATION_REJECTED",
		Data: map[string]any{
			"announcement_id": req.ID,
			"application_id":  app.ID,
		},
	})
}
