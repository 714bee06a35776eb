package mocks

import (
	"context"
	"sync"

	"github.com/clinicacaracas/citas-api/internal/domain"
)

// MockAppointmentNotifier implements service.AppointmentNotifier for testing.
// It is safe for concurrent use and counts calls per email kind.
type MockAppointmentNotifier struct {
	SendAppointmentEmailFn  func(ctx context.Context, a *domain.Appointment) error
	SendConfirmationEmailFn func(ctx context.Context, a *domain.Appointment) error

	// Default errors used when functions aren't explicitly defined
	AppointmentErr  error
	ConfirmationErr error

	mu                sync.Mutex
	appointmentCalls  int
	confirmationCalls int
}

// SendAppointmentEmail implements the service.AppointmentNotifier interface
func (m *MockAppointmentNotifier) SendAppointmentEmail(ctx context.Context, a *domain.Appointment) error {
	m.mu.Lock()
	m.appointmentCalls++
	m.mu.Unlock()

	if m.SendAppointmentEmailFn != nil {
		return m.SendAppointmentEmailFn(ctx, a)
	}
	return m.AppointmentErr
}

// SendConfirmationEmail implements the service.AppointmentNotifier interface
func (m *MockAppointmentNotifier) SendConfirmationEmail(ctx context.Context, a *domain.Appointment) error {
	m.mu.Lock()
	m.confirmationCalls++
	m.mu.Unlock()

	if m.SendConfirmationEmailFn != nil {
		return m.SendConfirmationEmailFn(ctx, a)
	}
	return m.ConfirmationErr
}

// Calls returns how many times each operation was invoked.
func (m *MockAppointmentNotifier) Calls() (appointment, confirmation int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.appointmentCalls, m.confirmationCalls
}
