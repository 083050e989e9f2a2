package assignment

import (
	"context"
	"strings"

	"ecodeli-dispatch/internal/apperr"
	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/logx"
	"ecodeli-dispatch/internal/ports/assignmenttx"
)

func validateApply(delivererID, announcementID string, opts domain.ApplyOptions) error {
	if strings.TrimSpace(delivererID) == "" {
		return apperr.Validation("deliverer id is required")
	}
	if strings.TrimSpace(announcementID) == "" {
		return apperr.Validation("request id is required")
	}
	if opts.ProposedPrice != nil && *opts.ProposedPrice < 0 {
		return apperr.Validation("proposed price cannot be negative")
	}
	if opts.EstimatedPickupTime != nil && opts.EstimatedDeliveryTime != nil &&
		!opts.EstimatedPickupTime.Before(*opts.EstimatedDeliveryTime) {
		return apperr.Validation("estimated pickup must be before estimated delivery")
	}
	return nil
}

// Apply creates a PENDING application of a deliverer on an open request and
// bumps the request's application counter. The request's client is notified
// after commit.
func (s *Service) Apply(
	ctx context.Context,
	delivererID, announcementID string,
	opts domain.ApplyOptions,
) (domain.Application, error) {
	if err := validateApply(delivererID, announcementID, opts); err != nil {
		return domain.Application{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		app      domain.Application
		clientID string
		title    string
	)
	err := s.repo.WithTx(ctx, func(tx assignmenttx.Repository) error {
		req, err := tx.GetAnnouncementForUpdate(ctx, announcementID)
		if err != nil {
			return err
		}
		if req == nil {
			return apperr.NotFound("request")
		}
		if !req.Open() {
			return apperr.RequestNotAvailable
		}

		prior, err := tx.FindApplication(ctx, announcementID, delivererID)
		if err != nil {
			return err
		}
		if prior != nil {
			return apperr.DuplicateApplication
		}

		app = domain.Application{
			ID:                    s.newID(),
			AnnouncementID:        announcementID,
			DelivererID:           delivererID,
			ProposedPrice:         opts.ProposedPrice,
			EstimatedPickupTime:   opts.EstimatedPickupTime,
			EstimatedDeliveryTime: opts.EstimatedDeliveryTime,
			Message:               strings.TrimSpace(opts.Message),
			Status:                domain.ApplicationPending,
			AppliedAt:             s.now(),
		}
		if err := tx.InsertApplication(ctx, &app); err != nil {
			return err
		}
		clientID, title = req.ClientID, req.Title
		return tx.IncrementApplicationsCount(ctx, announcementID)
	})
	if err != nil {
		return domain.Application{}, err
	}

	s.metrics.IncApplications()
	s.logger.Info("application submitted",
		logx.String("event", "application_submitted"),
		logx.String("application_id", app.ID),
		logx.String("announcement_id", announcementID),
		logx.String("deliverer_id", delivererID),
	)

	s.notify(ctx, domain.Notification{
		UserID:  clientID,
		Title:   "New application",
		Message: "A deliverer applied to your request " + title,
		Type:    "APPLICATION_RECEIVED",
		Data: map[string]any{
			"announcement_id": announcementID,
			"application_id":  app.ID,
			"deliverer_id":    delivererID,
		},
	})
	return app, nil
}
