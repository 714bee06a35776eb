package mocks

import (
	"context"
	"sync"

	"github.com/clinicacaracas/citas-api/internal/domain"
	"github.com/clinicacaracas/citas-api/internal/store"
)

// MockAppointmentStore implements store.AppointmentStore for testing.
// Saved appointments are recorded in order.
type MockAppointmentStore struct {
	SaveFn func(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)

	// SaveErr is returned when SaveFn is nil
	SaveErr error

	mu    sync.Mutex
	saved []*domain.Appointment
}

var _ store.AppointmentStore = (*MockAppointmentStore)(nil)

// Save implements the store.AppointmentStore interface
func (m *MockAppointmentStore) Save(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	m.mu.Lock()
	m.saved = append(m.saved, a)
	m.mu.Unlock()

	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	if m.SaveErr != nil {
		return nil, m.SaveErr
	}
	return a, nil
}

// Saved returns every appointment passed to Save.
func (m *MockAppointmentStore) Saved() []*domain.Appointment {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Appointment(nil), m.saved...)
}
