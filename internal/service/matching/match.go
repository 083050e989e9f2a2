// Package matching selects open delivery requests for deliverers, either
// along a planned route or around a location.
package matching

import (
	"sort"
	"time"

	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/geo"
)

// Route matching policy.
const (
	// MaxRouteDeviationKm bounds the distance between a route endpoint and the
	// matching request endpoint.
	MaxRouteDeviationKm = 10.0
	// DateToleranceDays is how far a request's pickup date may be from the
	// route's planned date.
	DateToleranceDays = 1
)

// absorbs float noise so that a point exactly on the radius is inside
const distanceEpsilonKm = 1e-9

// Window returns the pickup date range compatible with a route planned on date.
func Window(planned time.Time) (from, to time.Time) {
	d := domain.DateOf(planned)
	return d.AddDate(0, 0, -DateToleranceDays), d.AddDate(0, 0, DateToleranceDays)
}

// MatchRoute filters pool to the open, unassigned requests whose pickup lies
// near the route start, whose drop-off lies near the route end and whose
// pickup date is within the route's date window. Matches are ordered by
// combined distance, nearest first.
func MatchRoute(route domain.PlannedRoute, pool []domain.Announcement) []domain.RouteMatch {
	from, to := Window(route.PlannedDate)

	out := make([]domain.RouteMatch, 0)
	for _, a := range pool {
		if !a.Open() {
			continue
		}
		pickup := domain.DateOf(a.PickupDate)
		if pickup.Before(from) || pickup.After(to) {
			continue
		}
		dPickup := geo.DistanceKm(route.Start.Point, a.Pickup.Point)
		if !within(dPickup, MaxRouteDeviationKm) {
			continue
		}
		dDelivery := geo.DistanceKm(route.End.Point, a.Delivery.Point)
		if !within(dDelivery, MaxRouteDeviationKm) {
			continue
		}
		out = append(out, domain.RouteMatch{
			Announcement:       a,
			PickupDistanceKm:   dPickup,
			DeliveryDistanceKm: dDelivery,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PickupDistanceKm+out[i].DeliveryDistanceKm <
			out[j].PickupDistanceKm+out[j].DeliveryDistanceKm
	})
	return out
}

func within(d, limit float64) bool {
	return d <= limit+distanceEpsilonKm
}
