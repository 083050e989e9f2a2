package assignment_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"ecodeli-dispatch/internal/apperr"
	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/ports/assignmenttx"
)

// memStore is a transactional in-memory store with the same uniqueness rules
// as the SQL schema. A transaction holds the store lock from start to commit,
// which is at least as strict as the row lock taken on the request.
type memStore struct {
	mu    sync.Mutex
	state memState
	// failOn makes the named tx method fail, to exercise rollback
	failOn string
}

type memState struct {
	announcements map[string]domain.Announcement
	applications  map[string]domain.Application
	deliveries    map[string]domain.Delivery
}

var errInjected = errors.New("injected failure")

func newMemStore() *memStore {
	return &memStore{state: memState{
		announcements: map[string]domain.Announcement{},
		applications:  map[string]domain.Application{},
		deliveries:    map[string]domain.Delivery{},
	}}
}

func (s memState) clone() memState {
	c := memState{
		announcements: make(map[string]domain.Announcement, len(s.announcements)),
		applications:  make(map[string]domain.Application, len(s.applications)),
		deliveries:    make(map[string]domain.Delivery, len(s.deliveries)),
	}
	for k, v := range s.announcements {
		c.announcements[k] = v
	}
	for k, v := range s.applications {
		c.applications[k] = v
	}
	for k, v := range s.deliveries {
		c.deliveries[k] = v
	}
	return c
}

func (m *memStore) WithTx(_ context.Context, fn func(tx assignmenttx.Repository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memTx{state: m.state.clone(), failOn: m.failOn}
	if err := fn(tx); err != nil {
		return err
	}
	m.state = tx.state
	return nil
}

func (m *memStore) addAnnouncement(a domain.Announcement) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.announcements[a.ID] = a
}

func (m *memStore) addApplication(a domain.Application) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.applications[a.ID] = a
}

func (m *memStore) announcement(id string) domain.Announcement {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.announcements[id]
}

func (m *memStore) application(id string) domain.Application {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.applications[id]
}

func (m *memStore) applicationsOf(announcementID string) []domain.Application {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Application
	for _, a := range m.state.applications {
		if a.AnnouncementID == announcementID {
			out = append(out, a)
		}
	}
	return out
}

func (m *memStore) deliveriesOf(announcementID string) []domain.Delivery {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Delivery
	for _, d := range m.state.deliveries {
		if d.AnnouncementID == announcementID {
			out = append(out, d)
		}
	}
	return out
}

type memTx struct {
	state  memState
	failOn string
}

func (t *memTx) fail(method string) error {
	if t.failOn == method {
		return errInjected
	}
	return nil
}

func (t *memTx) GetAnnouncementForUpdate(_ context.Context, id string) (*domain.Announcement, error) {
	if err := t.fail("GetAnnouncementForUpdate"); err != nil {
		return nil, err
	}
	a, ok := t.state.announcements[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (t *memTx) MarkAnnouncementAssigned(_ context.Context, id, delivererID string, at time.Time) error {
	if err := t.fail("MarkAnnouncementAssigned"); err != nil {
		return err
	}
	a, ok := t.state.announcements[id]
	if !ok || a.Status != domain.AnnouncementOpen || a.DelivererID != nil {
		return apperr.AlreadyAssigned
	}
	a.Status = domain.AnnouncementAssigned
	a.DelivererID = &delivererID
	a.UpdatedAt = at
	t.state.announcements[id] = a
	return nil
}

func (t *memTx) IncrementApplicationsCount(_ context.Context, announcementID string) error {
	if err := t.fail("IncrementApplicationsCount"); err != nil {
		return err
	}
	a := t.state.announcements[announcementID]
	a.ApplicationsCount++
	t.state.announcements[announcementID] = a
	return nil
}

func (t *memTx) GetApplication(_ context.Context, id string) (*domain.Application, error) {
	a, ok := t.state.applications[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (t *memTx) GetApplicationForUpdate(ctx context.Context, id string) (*domain.Application, error) {
	return t.GetApplication(ctx, id)
}

func (t *memTx) FindApplication(_ context.Context, announcementID, delivererID string) (*domain.Application, error) {
	for _, a := range t.state.applications {
		if a.AnnouncementID == announcementID && a.DelivererID == delivererID {
			a := a
			return &a, nil
		}
	}
	return nil, nil
}

func (t *memTx) InsertApplication(_ context.Context, a *domain.Application) error {
	if err := t.fail("InsertApplication"); err != nil {
		return err
	}
	for _, existing := range t.state.applications {
		if existing.AnnouncementID == a.AnnouncementID && existing.DelivererID == a.DelivererID {
			return apperr.DuplicateApplication
		}
	}
	t.state.applications[a.ID] = *a
	return nil
}

func (t *memTx) UpdateApplicationStatus(
	_ context.Context,
	id string,
	status domain.ApplicationStatus,
	reviewedAt time.Time,
	reviewerID *string,
) error {
	if err := t.fail("UpdateApplicationStatus"); err != nil {
		return err
	}
	a := t.state.applications[id]
	if status == domain.ApplicationAccepted {
		for _, other := range t.state.applications {
			if other.AnnouncementID == a.AnnouncementID && other.ID != id && other.Status == domain.ApplicationAccepted {
				return apperr.AlreadyAssigned
			}
		}
	}
	a.Status = status
	a.ReviewedAt = &reviewedAt
	a.ReviewerID = reviewerID
	t.state.applications[id] = a
	return nil
}

func (t *memTx) RejectPendingSiblings(
	_ context.Context,
	announcementID, exceptID string,
	at time.Time,
	reviewerID *string,
) ([]domain.Application, error) {
	if err := t.fail("RejectPendingSiblings"); err != nil {
		return nil, err
	}
	var out []domain.Application
	for id, a := range t.state.applications {
		if a.AnnouncementID != announcementID || id == exceptID || a.Status != domain.ApplicationPending {
			continue
		}
		a.Status = domain.ApplicationRejected
		a.ReviewedAt = &at
		a.ReviewerID = reviewerID
		t.state.applications[id] = a
		out = append(out, a)
	}
	return out, nil
}

func (t *memTx) TrackingNumberExists(_ context.Context, tn string) (bool, error) {
	for _, d := range t.state.deliveries {
		if d.TrackingNumber == tn {
			return true, nil
		}
	}
	return false, nil
}

func (t *memTx) InsertDelivery(_ context.Context, d *domain.Delivery) error {
	if err := t.fail("InsertDelivery"); err != nil {
		return err
	}
	for _, existing := range t.state.deliveries {
		if existing.AnnouncementID == d.AnnouncementID {
			return apperr.AlreadyAssigned
		}
		if existing.TrackingNumber == d.TrackingNumber {
			return errors.New("duplicate tracking number")
		}
	}
	t.state.deliveries[d.ID] = *d
	return nil
}
