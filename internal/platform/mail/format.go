package mail

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // America/Caracas must resolve on minimal images

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "VE"

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// clinicLocation is America/Caracas, or UTC-4 if the zone database is
// unavailable.
var clinicLocation = loadClinicLocation()

func loadClinicLocation() *time.Location {
	loc, err := time.LoadLocation("America/Caracas")
	if err != nil {
		return time.FixedZone("VET", -4*60*60)
	}
	return loc
}

// FormatDate renders t in the clinic's time zone the way es-ES long dates
// read, e.g. "15 de enero de 2025, 14:30".
func FormatDate(t time.Time) string {
	local := t.In(clinicLocation)
	return fmt.Sprintf("%d de %s de %d, %02d:%02d",
		local.Day(), spanishMonths[local.Month()-1], local.Year(), local.Hour(), local.Minute())
}

// NormalizePhone formats a phone number to E.164 using Venezuela as the
// default region. If parsing fails, it returns the trimmed input.
func NormalizePhone(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return trimmed
	}
	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

// telHref builds a tel: link target holding only '+' and digits.
func telHref(phone string) string {
	var b strings.Builder
	b.WriteString("tel:")
	for i, r := range NormalizePhone(phone) {
		if (r >= '0' && r <= '9') || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
