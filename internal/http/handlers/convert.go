package handlers

import (
	"strings"

	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/geo"
)

func (r createAvailabilityRequest) toModel(userID string) (domain.Availability, error) {
	a := domain.Availability{
		UserID:         userID,
		WorkType:       strings.TrimSpace(r.WorkType),
		IsRecurring:    r.IsRecurring,
		Pattern:        domain.RecurrencePattern(strings.ToUpper(strings.TrimSpace(r.RecurrencePattern))),
		MaxCapacity:    r.MaxCapacity,
		Notes:          r.Notes,
		ServiceAreaIDs: r.ServiceAreaIDs,
	}

	var err error
	if a.Date, err = parseDate("date", r.Date); err != nil {
		return domain.Availability{}, err
	}
	if r.RecurrenceEndDate != nil {
		end, err := parseDate("recurrence_end_date", *r.RecurrenceEndDate)
		if err != nil {
			return domain.Availability{}, err
		}
		a.RecurrenceEnd = &end
	}
	for _, s := range r.ExcludedDates {
		d, err := parseDate("excluded_dates", s)
		if err != nil {
			return domain.Availability{}, err
		}
		a.ExcludedDates = append(a.ExcludedDates, d)
	}
	for _, s := range r.Slots {
		a.Slots = append(a.Slots, domain.TimeSlot{Start: s.Start, End: s.End})
	}
	return a, nil
}

func availabilityToResponse(a domain.Availability) availabilityDTO {
	out := availabilityDTO{
		ID:                a.ID,
		UserID:            a.UserID,
		Date:              formatDate(a.Date),
		Slots:             make([]slotDTO, 0, len(a.Slots)),
		WorkType:          a.WorkType,
		IsRecurring:       a.IsRecurring,
		RecurrencePattern: string(a.Pattern),
		RecurrenceEndDate: formatDatePtr(a.RecurrenceEnd),
		ExcludedDates:     make([]string, 0, len(a.ExcludedDates)),
		MaxCapacity:       a.MaxCapacity,
		Notes:             a.Notes,
		ServiceAreaIDs:    a.ServiceAreaIDs,
		CreatedAt:         a.CreatedAt,
	}
	if out.ServiceAreaIDs == nil {
		out.ServiceAreaIDs = []string{}
	}
	for _, s := range a.Slots {
		out.Slots = append(out.Slots, slotDTO{Start: s.Start, End: s.End})
	}
	for _, d := range a.ExcludedDates {
		out.ExcludedDates = append(out.ExcludedDates, formatDate(d))
	}
	return out
}

func occurrencesToResponse(list []domain.Occurrence) []occurrenceDTO {
	out := make([]occurrenceDTO, 0, len(list))
	for _, o := range list {
		out = append(out, occurrenceDTO{
			ID:             o.ID,
			AvailabilityID: o.AvailabilityID,
			UserID:         o.UserID,
			Date:           formatDate(o.Date),
			WorkType:       o.WorkType,
			MaxCapacity:    o.MaxCapacity,
			Notes:          o.Notes,
		})
	}
	return out
}

func (p placeDTO) toModel() domain.Place {
	return domain.Place{Address: p.Address, Point: geo.Point{Lat: p.Lat, Lon: p.Lon}}
}

func placeToResponse(p domain.Place) placeDTO {
	return placeDTO{Address: p.Address, Lat: p.Point.Lat, Lon: p.Point.Lon}
}

func (r createRouteRequest) toModel(delivererID string) (domain.PlannedRoute, error) {
	date, err := parseDate("planned_date", r.PlannedDate)
	if err != nil {
		return domain.PlannedRoute{}, err
	}
	route := domain.PlannedRoute{
		DelivererID:   delivererID,
		Start:         r.Start.toModel(),
		End:           r.End.toModel(),
		PlannedDate:   date,
		Vehicle:       domain.VehicleType(strings.ToUpper(strings.TrimSpace(r.VehicleType))),
		Capacity:      r.Capacity,
		NotifyOnMatch: true,
	}
	if r.Window != nil {
		route.Window = &domain.TimeSlot{Start: r.Window.Start, End: r.Window.End}
	}
	if r.NotifyOnMatch != nil {
		route.NotifyOnMatch = *r.NotifyOnMatch
	}
	return route, nil
}

func routeToResponse(r domain.PlannedRoute) routeDTO {
	out := routeDTO{
		ID:            r.ID,
		DelivererID:   r.DelivererID,
		Start:         placeToResponse(r.Start),
		End:           placeToResponse(r.End),
		PlannedDate:   formatDate(r.PlannedDate),
		VehicleType:   string(r.Vehicle),
		Capacity:      r.Capacity,
		IsActive:      r.IsActive,
		NotifyOnMatch: r.NotifyOnMatch,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
	}
	if r.Window != nil {
		out.Window = &slotDTO{Start: r.Window.Start, End: r.Window.End}
	}
	return out
}

func routesToResponse(list []domain.PlannedRoute) []routeDTO {
	out := make([]routeDTO, 0, len(list))
	for _, r := range list {
		out = append(out, routeToResponse(r))
	}
	return out
}

func announcementToResponse(a domain.Announcement) announcementDTO {
	return announcementDTO{
		ID:                a.ID,
		ClientID:          a.ClientID,
		Title:             a.Title,
		Pickup:            placeToResponse(a.Pickup),
		Delivery:          placeToResponse(a.Delivery),
		Price:             a.Price,
		DeliveryType:      a.DeliveryType,
		Priority:          a.Priority,
		Urgency:           string(a.Urgency),
		PickupDate:        formatDate(a.PickupDate),
		Status:            string(a.Status),
		DelivererID:       a.DelivererID,
		ApplicationsCount: a.ApplicationsCount,
		CreatedAt:         a.CreatedAt,
	}
}

func scoredToResponse(list []domain.ScoredAnnouncement) []scoredAnnouncementDTO {
	out := make([]scoredAnnouncementDTO, 0, len(list))
	for _, a := range list {
		out = append(out, scoredAnnouncementDTO{
			announcementDTO: announcementToResponse(a.Announcement),
			DistanceKm:      a.DistanceKm,
		})
	}
	return out
}

func matchesToResponse(list []domain.RouteMatch) []routeMatchDTO {
	out := make([]routeMatchDTO, 0, len(list))
	for _, m := range list {
		out = append(out, routeMatchDTO{
			announcementDTO:    announcementToResponse(m.Announcement),
			PickupDistanceKm:   m.PickupDistanceKm,
			DeliveryDistanceKm: m.DeliveryDistanceKm,
		})
	}
	return out
}

func (r applyRequest) toModel() domain.ApplyOptions {
	return domain.ApplyOptions{
		ProposedPrice:         r.ProposedPrice,
		EstimatedPickupTime:   r.EstimatedPickupTime,
		EstimatedDeliveryTime: r.EstimatedDeliveryTime,
		Message:               r.Message,
	}
}

func applicationToResponse(a domain.Application) applicationDTO {
	return applicationDTO{
		ID:                    a.ID,
		AnnouncementID:        a.AnnouncementID,
		DelivererID:           a.DelivererID,
		ProposedPrice:         a.ProposedPrice,
		EstimatedPickupTime:   a.EstimatedPickupTime,
		EstimatedDeliveryTime: a.EstimatedDeliveryTime,
		Message:               a.Message,
		Status:                string(a.Status),
		AppliedAt:             a.AppliedAt,
		ReviewedAt:            a.ReviewedAt,
	}
}

func resolveToResponse(res domain.ResolveResult) resolveResponse {
	out := resolveResponse{
		Application:   applicationToResponse(res.Application),
		RejectedCount: len(res.Rejected),
	}
	if d := res.Delivery; d != nil {
		out.Delivery = &deliveryDTO{
			ID:             d.ID,
			AnnouncementID: d.AnnouncementID,
			ApplicationID:  d.ApplicationID,
			ClientID:       d.ClientID,
			DelivererID:    d.DelivererID,
			Price:          d.Price,
			TrackingNumber: d.TrackingNumber,
			Status:         string(d.Status),
			CreatedAt:      d.CreatedAt,
		}
	}
	return out
}

func nearbyToResponse(list []domain.NearbyStorage) []nearbyStorageDTO {
	out := make([]nearbyStorageDTO, 0, len(list))
	for _, s := range list {
		out = append(out, nearbyStorageDTO{
			ID:         s.ID,
			Name:       s.Name,
			Address:    s.Address,
			City:       s.City,
			Lat:        s.Point.Lat,
			Lon:        s.Point.Lon,
			DistanceKm: s.DistanceKm,
		})
	}
	return out
}
