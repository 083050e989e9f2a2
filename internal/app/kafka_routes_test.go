package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ecodeli-dispatch/internal/apperr"
	"ecodeli-dispatch/internal/service/routes"
	"ecodeli-dispatch/internal/transport/kafka"
)

type spyHandler struct {
	called int
	event  routes.Event
	err    error
}

func (s *spyHandler) Handle(_ context.Context, e routes.Event) error {
	s.called++
	s.event = e
	return s.err
}

func TestMakeRoutesKafka_PassesEventThrough(t *testing.T) {
	t.Parallel()

	spy := &spyHandler{}
	event := routes.Event{
		RouteID:     "route-1",
		DelivererID: "del-1",
		Type:        routes.EventCreated,
		OccurredAt:  time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}

	err := makeRoutesKafka(spy)(context.Background(), event)
	require.NoError(t, err)
	require.Equal(t, 1, spy.called)
	require.Equal(t, event, spy.event)
}

func TestMakeRoutesKafka_ClassifiesErrors(t *testing.T) {
	t.Parallel()

	transient := errors.New("db down")
	tests := []struct {
		name      string
		err       error
		permanent bool
	}{
		{name: "validation", err: apperr.Validation("bad route"), permanent: true},
		{name: "not found", err: apperr.NotFound("route"), permanent: true},
		{name: "transient", err: transient, permanent: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &spyHandler{err: tt.err}

			err := makeRoutesKafka(spy)(context.Background(), routes.Event{RouteID: "r"})
			require.ErrorIs(t, err, tt.err)

			require.Equal(t, tt.permanent, kafka.IsPermanent(err))
		})
	}
}
