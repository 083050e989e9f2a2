package routes_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/logx"
	"ecodeli-dispatch/internal/service/routes"
	testlog "ecodeli-dispatch/internal/testutil"
)

func activeRoute(notify bool) *domain.PlannedRoute {
	r := draft()
	r.ID = "route-1"
	r.IsActive = true
	r.Status = domain.RouteStatusPlanned
	r.NotifyOnMatch = notify
	return &r
}

func matches(ids ...string) []domain.RouteMatch {
	out := make([]domain.RouteMatch, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.RouteMatch{Announcement: domain.Announcement{ID: id}})
	}
	return out
}

func TestProcessor_Handle_Created_MatchesAndNotifies(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	reader := NewMockrouteReader(ctrl)
	matcher := NewMockMatchPort(ctrl)
	notifier := NewMockNotifier(ctrl)
	p := routes.NewProcessor(reader, matcher, notifier, logx.Nop())

	r := activeRoute(true)
	reader.EXPECT().Get(gomock.Any(), "route-1").Return(r, nil)
	matcher.EXPECT().Match(gomock.Any(), *r).Return(matches("a", "b"), nil)
	notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n domain.Notification) error {
			require.Equal(t, "del-1", n.UserID)
			require.Equal(t, routes.NotificationRouteMatches, n.Type)
			require.Equal(t, "route-1", n.Data["route_id"])
			require.Equal(t, []string{"a", "b"}, n.Data["request_ids"])
			return nil
		})

	err := p.Handle(context.Background(), routes.Event{RouteID: "route-1", Type: " Created "})
	require.NoError(t, err)
}

func TestProcessor_Handle_Updated_NoNotifyWhenDisabled(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	reader := NewMockrouteReader(ctrl)
	matcher := NewMockMatchPort(ctrl)
	notifier := NewMockNotifier(ctrl)
	p := routes.NewProcessor(reader, matcher, notifier, logx.Nop())

	r := activeRoute(false)
	reader.EXPECT().Get(gomock.Any(), "route-1").Return(r, nil)
	matcher.EXPECT().Match(gomock.Any(), *r).Return(matches("a"), nil)

	err := p.Handle(context.Background(), routes.Event{RouteID: "route-1", Type: routes.EventUpdated})
	require.NoError(t, err)
}

func TestProcessor_Handle_NoMatchesNoNotification(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	reader := NewMockrouteReader(ctrl)
	matcher := NewMockMatchPort(ctrl)
	notifier := NewMockNotifier(ctrl)
	p := routes.NewProcessor(reader, matcher, notifier, logx.Nop())

	r := activeRoute(true)
	reader.EXPECT().Get(gomock.Any(), "route-1").Return(r, nil)
	matcher.EXPECT().Match(gomock.Any(), *r).Return(nil, nil)

	require.NoError(t, p.Handle(context.Background(), routes.Event{RouteID: "route-1", Type: routes.EventCreated}))
}

func TestProcessor_Handle_IgnoresDeletedAndUnknown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		typ      string
		wantWarn bool
	}{
		{name: "deleted", typ: routes.EventDeleted},
		{name: "deleted mixed case", typ: " Deleted "},
		{name: "unknown", typ: "archived", wantWarn: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := newCtrl(t)
			rec := testlog.New()
			p := routes.NewProcessor(NewMockrouteReader(ctrl), NewMockMatchPort(ctrl), NewMockNotifier(ctrl), rec.Logger())

			require.NoError(t, p.Handle(context.Background(), routes.Event{RouteID: "route-1", Type: tc.typ}))
			require.Equal(t, tc.wantWarn, rec.HasMsg("warn", "unknown route event type"))
		})
	}
}

func TestProcessor_Handle_UnknownRouteIsSkipped(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	reader := NewMockrouteReader(ctrl)
	rec := testlog.New()
	p := routes.NewProcessor(reader, NewMockMatchPort(ctrl), nil, rec.Logger())

	reader.EXPECT().Get(gomock.Any(), "gone").Return(nil, nil)

	require.NoError(t, p.Handle(context.Background(), routes.Event{RouteID: "gone", Type: routes.EventCreated}))
	require.True(t, rec.HasMsg("warn", "route event for unknown route"))
}

func TestProcessor_Handle_InactiveRouteIsSkipped(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	reader := NewMockrouteReader(ctrl)
	p := routes.NewProcessor(reader, NewMockMatchPort(ctrl), nil, logx.Nop())

	cancelled := activeRoute(true)
	cancelled.Status = domain.RouteStatusCancelled
	inactive := activeRoute(true)
	inactive.IsActive = false
	reader.EXPECT().Get(gomock.Any(), "route-1").Return(cancelled, nil)
	reader.EXPECT().Get(gomock.Any(), "route-1").Return(inactive, nil)

	require.NoError(t, p.Handle(context.Background(), routes.Event{RouteID: "route-1", Type: routes.EventCreated}))
	require.NoError(t, p.Handle(context.Background(), routes.Event{RouteID: "route-1", Type: routes.EventCreated}))
}

func TestProcessor_Handle_ErrorsAreReturned(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	reader := NewMockrouteReader(ctrl)
	matcher := NewMockMatchPort(ctrl)
	p := routes.NewProcessor(reader, matcher, nil, logx.Nop())

	loadErr := errors.New("db down")
	reader.EXPECT().Get(gomock.Any(), "route-1").Return(nil, loadErr)
	err := p.Handle(context.Background(), routes.Event{RouteID: "route-1", Type: routes.EventCreated})
	require.ErrorIs(t, err, loadErr)

	matchErr := errors.New("timeout")
	r := activeRoute(true)
	reader.EXPECT().Get(gomock.Any(), "route-1").Return(r, nil)
	matcher.EXPECT().Match(gomock.Any(), *r).Return(nil, matchErr)
	err = p.Handle(context.Background(), routes.Event{RouteID: "route-1", Type: routes.EventCreated})
	require.ErrorIs(t, err, matchErr)
}

func TestProcessor_Handle_NotificationFailureIsLogged(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	reader := NewMockrouteReader(ctrl)
	matcher := NewMockMatchPort(ctrl)
	notifier := NewMockNotifier(ctrl)
	rec := testlog.New()
	p := routes.NewProcessor(reader, matcher, notifier, rec.Logger())

	r := activeRoute(true)
	reader.EXPECT().Get(gomock.Any(), "route-1").Return(r, nil)
	matcher.EXPECT().Match(gomock.Any(), *r).Return(matches("a"), nil)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	require.NoError(t, p.Handle(context.Background(), routes.Event{RouteID: "route-1", Type: routes.EventCreated}))
	require.True(t, rec.HasMsg("warn", "route match notification failed"))
}

func TestProcessor_Publish_HandlesInline(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	reader := NewMockrouteReader(ctrl)
	matcher := NewMockMatchPort(ctrl)
	p := routes.NewProcessor(reader, matcher, nil, logx.Nop())

	r := activeRoute(true)
	reader.EXPECT().Get(gomock.Any(), "route-1").Return(r, nil)
	matcher.EXPECT().Match(gomock.Any(), *r).Return(matches("a"), nil)

	var pub routes.Publisher = p
	require.NoError(t, pub.Publish(context.Background(), routes.Event{RouteID: "route-1", Type: routes.EventCreated}))
}
