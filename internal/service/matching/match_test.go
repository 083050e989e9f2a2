package matching_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/geo"
	"ecodeli-dispatch/internal/service/matching"
)

var (
	paris = geo.Point{Lat: 48.8566, Lon: 2.3522}
	lyon  = geo.Point{Lat: 45.7640, Lon: 4.8357}
)

// north returns the point km kilometres due north of p.
func north(p geo.Point, km float64) geo.Point {
	return geo.Point{Lat: p.Lat + km/geo.EarthRadiusKm*180/math.Pi, Lon: p.Lon}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func route(planned time.Time) domain.PlannedRoute {
	return domain.PlannedRoute{
		ID:          "route-1",
		DelivererID: "d-1",
		Start:       domain.Place{Address: "Paris", Point: paris},
		End:         domain.Place{Address: "Lyon", Point: lyon},
		PlannedDate: planned,
		Vehicle:     domain.VehicleCar,
		IsActive:    true,
		Status:      domain.RouteStatusPlanned,
	}
}

func request(id string, pickup, delivery geo.Point, date time.Time) domain.Announcement {
	return domain.Announcement{
		ID:         id,
		ClientID:   "c-1",
		Pickup:     domain.Place{Point: pickup},
		Delivery:   domain.Place{Point: delivery},
		PickupDate: date,
		Status:     domain.AnnouncementOpen,
	}
}

func TestMatchRoute_DistanceBoundary(t *testing.T) {
	t.Parallel()

	planned := day(2024, 5, 10)
	pool := []domain.Announcement{
		request("exact", north(paris, 10.0), north(lyon, 10.0), planned),
		request("beyond", north(paris, 10.1), north(lyon, 10.1), planned),
		request("pickup-only", north(paris, 2), north(lyon, 10.1), planned),
	}

	got := matching.MatchRoute(route(planned), pool)
	require.Len(t, got, 1)
	require.Equal(t, "exact", got[0].ID)
	require.InDelta(t, 10.0, got[0].PickupDistanceKm, 1e-6)
	require.InDelta(t, 10.0, got[0].DeliveryDistanceKm, 1e-6)
}

func TestMatchRoute_DateWindow(t *testing.T) {
	t.Parallel()

	planned := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	pool := []domain.Announcement{
		request("day-before", paris, lyon, day(2024, 5, 9)),
		request("same-day", paris, lyon, day(2024, 5, 10)),
		request("day-after", paris, lyon, time.Date(2024, 5, 11, 23, 0, 0, 0, time.UTC)),
		request("two-before", paris, lyon, day(2024, 5, 8)),
		request("two-after", paris, lyon, day(2024, 5, 12)),
	}

	got := matching.MatchRoute(route(planned), pool)
	ids := make([]string, 0, len(got))
	for _, m := range got {
		ids = append(ids, m.ID)
	}
	require.ElementsMatch(t, []string{"day-before", "same-day", "day-after"}, ids)
}

func TestMatchRoute_SkipsAssignedAndOrdersByDistance(t *testing.T) {
	t.Parallel()

	planned := day(2024, 5, 10)
	assigned := request("assigned", paris, lyon, planned)
	assigned.Status = domain.AnnouncementAssigned
	d := "d-9"
	assigned.DelivererID = &d

	pool := []domain.Announcement{
		request("far", north(paris, 8), north(lyon, 8), planned),
		assigned,
		request("near", north(paris, 1), north(lyon, 1), planned),
		request("mid", north(paris, 4), lyon, planned),
	}

	got := matching.MatchRoute(route(planned), pool)
	require.Len(t, got, 3)
	require.Equal(t, "near", got[0].ID)
	require.Equal(t, "mid", got[1].ID)
	require.Equal(t, "far", got[2].ID)
}

func TestMatchRoute_EmptyPool(t *testing.T) {
	t.Parallel()

	got := matching.MatchRoute(route(day(2024, 5, 10)), nil)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestWindow(t *testing.T) {
	t.Parallel()

	from, to := matching.Window(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	require.Equal(t, day(2024, 2, 29), from)
	require.Equal(t, day(2024, 3, 2), to)
}
