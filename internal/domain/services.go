package domain

// serviceCodes is the canonical, ordered set of bookable services.
var serviceCodes = []string{
	"consulta-general",
	"medicina-interna",
	"cardiologia",
	"dermatologia",
	"ginecologia",
	"pediatria",
	"ortopedia",
	"neurologia",
	"psicologia",
	"nutricion",
	"laboratorio",
	"radiologia",
	"fisioterapia",
	"odontologia",
	"oftalmologia",
	"otorrinolaringologia",
	"urologia",
	"gastroenterologia",
	"endocrinologia",
	"reumatologia",
}

var serviceNames = map[string]string{
	"consulta-general":     "Consulta General",
	"medicina-interna":     "Medicina Interna",
	"cardiologia":          "Cardiología",
	"dermatologia":         "Dermatología",
	"ginecologia":          "Ginecología",
	"pediatria":            "Pediatría",
	"ortopedia":            "Ortopedia",
	"neurologia":           "Neurología",
	"psicologia":           "Psicología",
	"nutricion":            "Nutrición",
	"laboratorio":          "Laboratorio",
	"radiologia":           "Radiología",
	"fisioterapia":         "Fisioterapia",
	"odontologia":          "Odontología",
	"oftalmologia":         "Oftalmología",
	"otorrinolaringologia": "Otorrinolaringología",
	"urologia":             "Urología",
	"gastroenterologia":    "Gastroenterología",
	"endocrinologia":       "Endocrinología",
	"reumatologia":         "Reumatología",
}

// ValidServices returns the list of valid service codes.
// The returned slice is a copy; changing it does not affect validation.
func ValidServices() []string {
	out := make([]string, len(serviceCodes))
	copy(out, serviceCodes)
	return out
}

// IsValidService reports whether code is one of the bookable services.
// Matching is exact and case-sensitive.
func IsValidService(code string) bool {
	_, ok := serviceNames[code]
	return ok
}

// ServiceDisplayName returns the Spanish display name for a service code.
// Unknown codes are returned unchanged.
func ServiceDisplayName(code string) string {
	if name, ok := serviceNames[code]; ok {
		return name
	}
	return code
}
