package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidServices(t *testing.T) {
	t.Parallel()

	services := ValidServices()
	assert.Len(t, services, 20)
	assert.Contains(t, services, "consulta-general")
	assert.Contains(t, services, "reumatologia")

	services[0] = "tampered"
	assert.Equal(t, "consulta-general", ValidServices()[0], "callers must not mutate the canonical list")
	assert.False(t, IsValidService("tampered"))
}

func TestIsValidService(t *testing.T) {
	t.Parallel()

	for _, code := range ValidServices() {
		assert.True(t, IsValidService(code), code)
	}

	for _, code := range []string{"", "Cardiologia", "CARDIOLOGIA", " cardiologia", "brain-surgery"} {
		assert.False(t, IsValidService(code), code)
	}
}

func TestServiceDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Cardiología", ServiceDisplayName("cardiologia"))
	assert.Equal(t, "Otorrinolaringología", ServiceDisplayName("otorrinolaringologia"))
	assert.Equal(t, "brain-surgery", ServiceDisplayName("brain-surgery"))

	for _, code := range ValidServices() {
		assert.NotEqual(t, code, ServiceDisplayName(code), "every service has a display name")
	}
}
