package domain

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"
	"unicode/utf16"
)

// AppointmentStatusPending is the status every new appointment starts in.
const AppointmentStatusPending = "pendiente"

// Field limits for appointment input.
const (
	MinNameLength    = 2
	MaxMessageLength = 1000

	idSuffixLength = 9
	idAlphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// RecordTimeLayout is the ISO-8601 layout used when serializing createdAt.
const RecordTimeLayout = "2006-01-02T15:04:05.000Z"

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9\s\-()]{10,}$`)
)

// Appointment is a validated booking request. Fields are unexported so an
// Appointment can only come out of NewAppointment.
type Appointment struct {
	id        string
	name      string
	email     string
	phone     string
	service   string
	message   string
	createdAt time.Time
	status    string
}

// AppointmentRecord is the plain serialized form of an Appointment.
type AppointmentRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
	Status    string `json:"status"`
}

// NewAppointment parses loosely-typed booking input into an Appointment.
//
// Rules are checked in a fixed order (id, name, email, phone, service,
// message, createdAt) and the first violation is returned as a
// *ValidationError. Unknown keys are ignored. String fields are trimmed,
// email is lower-cased, and id, createdAt, status and message get defaults
// when absent.
func NewAppointment(raw map[string]any) (*Appointment, error) {
	id, err := parseID(raw["id"])
	if err != nil {
		return nil, err
	}

	name, ok := raw["name"].(string)
	name = strings.TrimSpace(name)
	if !ok || utf16Len(name) < MinNameLength {
		return nil, newValidationError("name", MsgInvalidName)
	}

	email, ok := raw["email"].(string)
	email = strings.ToLower(strings.TrimSpace(email))
	if !ok || !emailRegex.MatchString(email) {
		return nil, newValidationError("email", MsgInvalidEmail)
	}

	phone, ok := raw["phone"].(string)
	phone = strings.TrimSpace(phone)
	if !ok || !phoneRegex.MatchString(phone) {
		return nil, newValidationError("phone", MsgInvalidPhone)
	}

	service, ok := raw["service"].(string)
	if !ok || !IsValidService(service) {
		return nil, newValidationError("service", MsgInvalidService)
	}

	message, err := parseMessage(raw["message"])
	if err != nil {
		return nil, err
	}

	createdAt, err := parseCreatedAt(raw["createdAt"])
	if err != nil {
		return nil, err
	}

	status := AppointmentStatusPending
	switch v := raw["status"].(type) {
	case nil:
	case string:
		if s := strings.TrimSpace(v); s != "" {
			status = s
		}
	default:
		return nil, newValidationError("status", MsgInvalidStatus)
	}

	return &Appointment{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		service:   service,
		message:   message,
		createdAt: createdAt,
		status:    status,
	}, nil
}

func parseID(v any) (string, error) {
	switch id := v.(type) {
	case nil:
		return NewAppointmentID(time.Now())
	case string:
		if strings.TrimSpace(id) == "" {
			return NewAppointmentID(time.Now())
		}
		return id, nil
	default:
		return "", newValidationError("id", MsgInvalidID)
	}
}

// utf16Len counts UTF-16 code units, the length JavaScript clients see,
// so characters outside the BMP count twice.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

func parseMessage(v any) (string, error) {
	switch m := v.(type) {
	case nil:
		return "", nil
	case string:
		m = strings.TrimSpace(m)
		if utf16Len(m) > MaxMessageLength {
			return "", newValidationError("message", MsgMessageTooLong)
		}
		return m, nil
	default:
		return "", newValidationError("message", MsgMessageType)
	}
}

// parseCreatedAt accepts a time.Time or an RFC 3339 string. Values are
// normalized to UTC at millisecond precision so a serialized record parses
// back to the same instant.
func parseCreatedAt(v any) (time.Time, error) {
	switch t := v.(type) {
	case nil:
		return time.Now().UTC().Truncate(time.Millisecond), nil
	case time.Time:
		if t.IsZero() {
			return time.Time{}, newValidationError("createdAt", MsgInvalidCreatedAt)
		}
		return t.UTC().Truncate(time.Millisecond), nil
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(t))
		if err != nil {
			return time.Time{}, newValidationError("createdAt", MsgInvalidCreatedAt)
		}
		return parsed.UTC().Truncate(time.Millisecond), nil
	default:
		return time.Time{}, newValidationError("createdAt", MsgInvalidCreatedAt)
	}
}

// NewAppointmentID builds an id of the form CITA-<epoch millis>-<9 base36 chars>.
func NewAppointmentID(now time.Time) (string, error) {
	suffix := make([]byte, idSuffixLength)
	base := big.NewInt(int64(len(idAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, base)
		if err != nil {
			return "", fmt.Errorf("generate appointment id: %w", err)
		}
		suffix[i] = idAlphabet[n.Int64()]
	}
	return fmt.Sprintf("CITA-%d-%s", now.UnixMilli(), suffix), nil
}

// ID returns the appointment identifier.
func (a *Appointment) ID() string { return a.id }

// Name returns the patient's name.
func (a *Appointment) Name() string { return a.name }

// Email returns the patient's normalized email address.
func (a *Appointment) Email() string { return a.email }

// Phone returns the patient's phone number as submitted (trimmed).
func (a *Appointment) Phone() string { return a.phone }

// Service returns the requested service code.
func (a *Appointment) Service() string { return a.service }

// Message returns the optional free-text message, or "".
func (a *Appointment) Message() string { return a.message }

// CreatedAt returns when the appointment request was made, in UTC.
func (a *Appointment) CreatedAt() time.Time { return a.createdAt }

// Status returns the appointment status.
func (a *Appointment) Status() string { return a.status }

// Record returns the plain serialized form of the appointment.
func (a *Appointment) Record() AppointmentRecord {
	return AppointmentRecord{
		ID:        a.id,
		Name:      a.name,
		Email:     a.email,
		Phone:     a.phone,
		Service:   a.service,
		Message:   a.message,
		CreatedAt: a.createdAt.UTC().Format(RecordTimeLayout),
		Status:    a.status,
	}
}

// MarshalJSON implements json.Marshaler using Record.
func (a *Appointment) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Record())
}
