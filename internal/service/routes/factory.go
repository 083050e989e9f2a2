package routes

import (
	"context"
	"strings"
)

type actionFunc func(context.Context, Event) error

type actionFactory struct {
	byType map[string]actionFunc
}

func newActionFactory(onMatch actionFunc) *actionFactory {
	return &actionFactory{
		byType: map[string]actionFunc{
			EventCreated: onMatch,
			EventUpdated: onMatch,
			// deleted routes have nothing left to match
			EventDeleted: func(context.Context, Event) error { return nil },
		},
	}
}

func (f *actionFactory) get(eventType string) (actionFunc, bool) {
	eventType = strings.ToLower(strings.TrimSpace(eventType))
	fn, ok := f.byType[eventType]
	return fn, ok
}
