// Package memory provides process-local implementations of the store
// interfaces. Data does not survive a restart.
package memory

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/clinicacaracas/citas-api/internal/domain"
	"github.com/clinicacaracas/citas-api/internal/store"
)

// AppointmentStore keeps appointment records in a map keyed by id.
// It is safe for concurrent use.
type AppointmentStore struct {
	mu   sync.RWMutex
	byID map[string]domain.AppointmentRecord
	log  *slog.Logger
}

var (
	_ store.AppointmentStore  = (*AppointmentStore)(nil)
	_ store.AppointmentReader = (*AppointmentStore)(nil)
)

// NewAppointmentStore creates an empty in-memory appointment store.
// A nil logger falls back to slog.Default().
func NewAppointmentStore(log *slog.Logger) *AppointmentStore {
	if log == nil {
		log = slog.Default()
	}
	return &AppointmentStore{
		byID: make(map[string]domain.AppointmentRecord),
		log:  log.With("component", "appointment_store"),
	}
}

// Save stores a snapshot of the appointment. An existing record with the
// same id is overwritten.
func (s *AppointmentStore) Save(
	ctx context.Context,
	appointment *domain.Appointment,
) (*domain.Appointment, error) {
	if appointment == nil || strings.TrimSpace(appointment.ID()) == "" {
		return nil, store.NewStoreError(
			"appointment",
			"save",
			"appointment id is required",
			store.ErrInvalidEntity,
		)
	}

	record := appointment.Record()

	s.mu.Lock()
	_, replaced := s.byID[record.ID]
	s.byID[record.ID] = record
	s.mu.Unlock()

	if replaced {
		s.log.WarnContext(ctx, "appointment id already stored, record replaced",
			"appointment_id", record.ID)
	} else {
		s.log.DebugContext(ctx, "appointment stored", "appointment_id", record.ID)
	}

	return appointment, nil
}

// GetAll returns every stored record ordered by creation time.
func (s *AppointmentStore) GetAll(ctx context.Context) ([]domain.AppointmentRecord, error) {
	s.mu.RLock()
	out := make([]domain.AppointmentRecord, 0, len(s.byID))
	for _, r := range s.byID {
		out = append(out, r)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt == out[j].CreatedAt {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt < out[j].CreatedAt
	})
	return out, nil
}

// GetByID returns the record stored under id.
func (s *AppointmentStore) GetByID(
	ctx context.Context,
	id string,
) (domain.AppointmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.byID[id]
	if !ok {
		return domain.AppointmentRecord{}, store.ErrAppointmentNotFound
	}
	return r, nil
}

// Count returns the number of stored appointments.
func (s *AppointmentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// Clear removes every stored appointment.
func (s *AppointmentStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.byID)
}
