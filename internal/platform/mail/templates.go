package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	accentClinic  template.CSS = "#2563eb"
	accentPatient template.CSS = "#059669"
)

type baseEmailData struct {
	AccentColor  template.CSS
	Heading      string
	Subheading   string
	FooterLine   string
	FooterDetail string
}

type appointmentEmailData struct {
	baseEmailData
	AppointmentID string
	RequestedAt   string
	ServiceName   string
	PatientName   string
	PatientEmail  string
	PatientPhone  string
	PatientTel    template.URL
	Message       string
}

type confirmationEmailData struct {
	baseEmailData
	AppointmentID string
	RequestedAt   string
	ServiceName   string
	PatientName   string
	StatusLabel   string
	NextSteps     []string
	ClinicPhone   string
	ClinicTel     template.URL
	ClinicEmail   string
}

// reviewStatusLabel is shown to patients while the clinic reviews a request.
const reviewStatusLabel = "En Revisión"

var nextSteps = []string{
	"Nuestro equipo médico revisará tu solicitud",
	"Te contactaremos en las próximas 24-48 horas",
	"Confirmaremos la fecha y hora de tu cita",
	"Te enviaremos recordatorios antes de tu cita",
}

func renderEmailTemplate(name string, data any) (string, error) {
	templates := []string{"templates/base.html", "templates/" + name}
	tmpl, err := template.New("base.html").ParseFS(templateFS, templates...)
	if err != nil {
		return "", fmt.Errorf("%w: parse email template %s: %v", ErrRender, name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("%w: execute email template %s: %v", ErrRender, name, err)
	}
	return buf.String(), nil
}
