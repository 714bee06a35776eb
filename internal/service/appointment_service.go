package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/clinicacaracas/citas-api/internal/domain"
	"github.com/clinicacaracas/citas-api/internal/platform/logger"
	"github.com/clinicacaracas/citas-api/internal/redact"
	"github.com/clinicacaracas/citas-api/internal/store"
	"golang.org/x/sync/errgroup"
)

// Result messages returned to API clients.
const (
	MsgAppointmentCreated = "Tu cita ha sido enviada exitosamente. Te hemos enviado un email de confirmación."
	MsgCreateFailed       = "No se pudo crear la cita"
)

// AppointmentNotifier sends the two appointment emails. Implementations
// return transport failures rather than suppressing them.
type AppointmentNotifier interface {
	// SendAppointmentEmail notifies the clinic with the full patient detail.
	SendAppointmentEmail(ctx context.Context, a *domain.Appointment) error

	// SendConfirmationEmail tells the patient the request is under review.
	SendConfirmationEmail(ctx context.Context, a *domain.Appointment) error
}

// CreateAppointmentResult is the uniform outcome of CreateAppointment.
type CreateAppointmentResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	AppointmentID string `json:"appointmentId,omitempty"`

	// Err is the failure behind an unsuccessful result, for status mapping.
	Err error `json:"-"`
}

// AppointmentService provides appointment booking operations.
type AppointmentService interface {
	// CreateAppointment validates raw input, stores the appointment and
	// notifies the clinic and the patient. It never returns an error:
	// failures are reported through the result. Notification failures are
	// logged and do not affect the result.
	CreateAppointment(ctx context.Context, raw map[string]any) CreateAppointmentResult
}

// appointmentServiceImpl implements the AppointmentService interface
type appointmentServiceImpl struct {
	store    store.AppointmentStore
	notifier AppointmentNotifier
	logger   *slog.Logger
}

// NewAppointmentService creates a new AppointmentService.
// It returns an error if any of the required dependencies are nil.
func NewAppointmentService(
	appointmentStore store.AppointmentStore,
	notifier AppointmentNotifier,
	logger *slog.Logger,
) (AppointmentService, error) {
	if appointmentStore == nil {
		return nil, fmt.Errorf("%w: appointment store", ErrNilDependency)
	}
	if notifier == nil {
		return nil, fmt.Errorf("%w: notifier", ErrNilDependency)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &appointmentServiceImpl{
		store:    appointmentStore,
		notifier: notifier,
		logger:   logger.With(slog.String("component", "appointment_service")),
	}, nil
}

// CreateAppointment implements AppointmentService.CreateAppointment
func (s *appointmentServiceImpl) CreateAppointment(
	ctx context.Context,
	raw map[string]any,
) CreateAppointmentResult {
	log := logger.FromContextOrDefault(ctx, s.logger)

	appointment, err := domain.NewAppointment(raw)
	if err != nil {
		log.Debug("appointment input rejected", "error", err)
		return CreateAppointmentResult{Message: err.Error(), Err: err}
	}

	saved, err := s.store.Save(ctx, appointment)
	if err != nil {
		log.Error("failed to save appointment",
			"appointment_id", appointment.ID(),
			"error", redact.Error(err))
		return CreateAppointmentResult{
			Message: MsgCreateFailed,
			Err:     NewAppointmentServiceError("create", "failed to save appointment", err),
		}
	}
	if saved == nil {
		saved = appointment
	}

	s.notify(ctx, saved)

	log.Info("appointment created",
		"appointment_id", saved.ID(),
		"service", saved.Service())

	return CreateAppointmentResult{
		Success:       true,
		Message:       MsgAppointmentCreated,
		AppointmentID: saved.ID(),
	}
}

// notify sends both emails concurrently and waits for both. Failures are
// logged and never returned. Cancellation of ctx does not abort delivery.
func (s *appointmentServiceImpl) notify(ctx context.Context, a *domain.Appointment) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	notifyCtx := context.WithoutCancel(ctx)

	sends := []struct {
		kind string
		send func(context.Context, *domain.Appointment) error
	}{
		{kind: "clinic", send: s.notifier.SendAppointmentEmail},
		{kind: "confirmation", send: s.notifier.SendConfirmationEmail},
	}

	var g errgroup.Group
	for _, n := range sends {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("notifier panic: %v", r)
				}
				if err != nil {
					log.Warn("appointment notification failed",
						"appointment_id", a.ID(),
						"notification", n.kind,
						"error", redact.Error(err))
				}
			}()
			return n.send(notifyCtx, a)
		})
	}

	// Each task logs its own failure; Wait only joins.
	_ = g.Wait()
}
