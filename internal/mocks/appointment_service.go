package mocks

import (
	"context"

	"github.com/clinicacaracas/citas-api/internal/service"
)

// MockAppointmentService implements service.AppointmentService for testing
type MockAppointmentService struct {
	CreateAppointmentFn func(ctx context.Context, raw map[string]any) service.CreateAppointmentResult

	// Result is returned when CreateAppointmentFn is nil
	Result service.CreateAppointmentResult

	// LastInput records the most recent raw input
	LastInput map[string]any
}

var _ service.AppointmentService = (*MockAppointmentService)(nil)

// CreateAppointment implements the service.AppointmentService interface
func (m *MockAppointmentService) CreateAppointment(
	ctx context.Context,
	raw map[string]any,
) service.CreateAppointmentResult {
	m.LastInput = raw
	if m.CreateAppointmentFn != nil {
		return m.CreateAppointmentFn(ctx, raw)
	}
	return m.Result
}
