package mail

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/clinicacaracas/citas-api/internal/config"
	"github.com/clinicacaracas/citas-api/internal/domain"
	"github.com/clinicacaracas/citas-api/internal/redact"
	gomail "github.com/wneessen/go-mail"
)

const (
	subjectAppointmentFmt  = "Nueva Cita - %s - %s"
	subjectConfirmationFmt = "Confirmación de Cita - %s"
)

// Transport delivers built messages.
type Transport interface {
	Send(ctx context.Context, msg *gomail.Msg) error
	Verify(ctx context.Context) error
}

// Notifier sends appointment emails to the clinic and to patients.
type Notifier struct {
	clinic    config.ClinicConfig
	sender    string
	transport Transport
	log       *slog.Logger
}

// NewNotifier creates a Notifier. sender is the account address used as the
// From address and as the clinic email's copy recipient.
func NewNotifier(
	clinic config.ClinicConfig,
	sender string,
	transport Transport,
	log *slog.Logger,
) (*Notifier, error) {
	if transport == nil {
		return nil, fmt.Errorf("transport cannot be nil")
	}
	if sender == "" {
		return nil, fmt.Errorf("sender address cannot be empty")
	}
	if log == nil {
		log = slog.Default()
	}

	return &Notifier{
		clinic:    clinic,
		sender:    sender,
		transport: transport,
		log:       log.With(slog.String("component", "mail_notifier")),
	}, nil
}

// SendAppointmentEmail notifies the clinic of a new request with the full
// patient detail.
func (n *Notifier) SendAppointmentEmail(ctx context.Context, a *domain.Appointment) error {
	if a == nil {
		return fmt.Errorf("%w: appointment is nil", ErrRender)
	}

	serviceName := domain.ServiceDisplayName(a.Service())
	body, err := renderEmailTemplate("appointment.html", appointmentEmailData{
		baseEmailData: baseEmailData{
			AccentColor:  accentClinic,
			Heading:      n.clinic.Name,
			Subheading:   "Nueva Solicitud de Cita",
			FooterLine:   "Este mensaje fue enviado automáticamente desde el sistema de citas de " + n.clinic.Name,
			FooterDetail: fmt.Sprintf("Teléfono: %s | Email: %s", n.clinic.Phone, n.clinic.Email),
		},
		AppointmentID: a.ID(),
		RequestedAt:   FormatDate(a.CreatedAt()),
		ServiceName:   serviceName,
		PatientName:   a.Name(),
		PatientEmail:  a.Email(),
		PatientPhone:  a.Phone(),
		PatientTel:    template.URL(telHref(a.Phone())), //nolint:gosec // digits and '+' only
		Message:       a.Message(),
	})
	if err != nil {
		return err
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat("Sistema de Citas - "+n.clinic.Name, n.sender); err != nil {
		return fmt.Errorf("%w: from: %v", ErrRender, err)
	}
	if err := msg.To(n.clinic.Email); err != nil {
		return fmt.Errorf("%w: to: %v", ErrRender, err)
	}
	if err := msg.Cc(n.sender); err != nil {
		return fmt.Errorf("%w: cc: %v", ErrRender, err)
	}
	msg.Subject(fmt.Sprintf(subjectAppointmentFmt, serviceName, a.Name()))
	msg.SetBodyString(gomail.TypeTextHTML, body)

	return n.deliver(ctx, msg, a.ID(), "clinic")
}

// SendConfirmationEmail tells the patient their request is under review.
func (n *Notifier) SendConfirmationEmail(ctx context.Context, a *domain.Appointment) error {
	if a == nil {
		return fmt.Errorf("%w: appointment is nil", ErrRender)
	}

	serviceName := domain.ServiceDisplayName(a.Service())
	body, err := renderEmailTemplate("confirmation.html", confirmationEmailData{
		baseEmailData: baseEmailData{
			AccentColor:  accentPatient,
			Heading:      "Cita Confirmada",
			Subheading:   n.clinic.Name,
			FooterLine:   "Gracias por confiar en " + n.clinic.Name + " para tu cuidado médico",
			FooterDetail: n.clinic.Address,
		},
		AppointmentID: a.ID(),
		RequestedAt:   FormatDate(a.CreatedAt()),
		ServiceName:   serviceName,
		PatientName:   a.Name(),
		StatusLabel:   reviewStatusLabel,
		NextSteps:     nextSteps,
		ClinicPhone:   n.clinic.Phone,
		ClinicTel:     template.URL(telHref(n.clinic.Phone)), //nolint:gosec // digits and '+' only
		ClinicEmail:   n.clinic.Email,
	})
	if err != nil {
		return err
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat(n.clinic.Name, n.sender); err != nil {
		return fmt.Errorf("%w: from: %v", ErrRender, err)
	}
	if err := msg.To(a.Email()); err != nil {
		return fmt.Errorf("%w: to: %v", ErrRender, err)
	}
	msg.Subject(fmt.Sprintf(subjectConfirmationFmt, serviceName))
	msg.SetBodyString(gomail.TypeTextHTML, body)

	return n.deliver(ctx, msg, a.ID(), "patient")
}

// Verify checks that the transport can reach and authenticate with the
// mail server.
func (n *Notifier) Verify(ctx context.Context) error {
	if err := n.transport.Verify(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	return nil
}

func (n *Notifier) deliver(ctx context.Context, msg *gomail.Msg, appointmentID, audience string) error {
	start := time.Now()
	if err := n.transport.Send(ctx, msg); err != nil {
		n.log.ErrorContext(ctx, "failed to send email",
			"appointment_id", appointmentID,
			"audience", audience,
			"error", redact.Error(err))
		return fmt.Errorf("%w: %s email for %s: %w", ErrDelivery, audience, appointmentID, err)
	}

	n.log.InfoContext(ctx, "email sent",
		"appointment_id", appointmentID,
		"audience", audience,
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}
