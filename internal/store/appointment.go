package store

import (
	"context"

	"github.com/clinicacaracas/citas-api/internal/domain"
)

// AppointmentStore defines the interface for appointment persistence.
type AppointmentStore interface {
	// Save persists the appointment as a single upsert keyed by its id and
	// returns the stored value. A nil appointment or one without an id is
	// rejected with a *StoreError wrapping ErrInvalidEntity.
	// Saving an id that already exists replaces the previous record.
	Save(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// AppointmentReader exposes read access to stored appointments. It is used
// by diagnostics and tests, not by the booking workflow.
type AppointmentReader interface {
	// GetAll returns every stored appointment record.
	GetAll(ctx context.Context) ([]domain.AppointmentRecord, error)

	// GetByID returns the record for id or ErrAppointmentNotFound.
	GetByID(ctx context.Context, id string) (domain.AppointmentRecord, error)
}
