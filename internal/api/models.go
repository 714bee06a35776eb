package api

// TokenRequest is the token endpoint payload after any encrypted credentials
// have been decrypted by middleware.
type TokenRequest struct {
	ClientID     string `json:"clientId"     validate:"required"`
	ClientSecret string `json:"clientSecret" validate:"required"`
}

// TokenResponse is the successful token endpoint response.
type TokenResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    TokenData `json:"data"`
}

// TokenData carries the issued token.
type TokenData struct {
	Token string `json:"token"`

	// ExpiresIn echoes the configured lifetime, e.g. "24h".
	ExpiresIn   string `json:"expiresIn"`
	Type        string `json:"type"`
	Environment string `json:"environment"`
}

// AppointmentErrorResponse is written when appointment creation fails
// unexpectedly. Error carries the cause outside production only.
type AppointmentErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

// InfoResponse describes the API.
type InfoResponse struct {
	Success bool    `json:"success"`
	Data    APIInfo `json:"data"`
}

// APIInfo is the static API description.
type APIInfo struct {
	Name           string            `json:"name"`
	Version        string            `json:"version"`
	Description    string            `json:"description"`
	Architecture   string            `json:"architecture"`
	Authentication string            `json:"authentication"`
	Endpoints      map[string]string `json:"endpoints"`
	Services       []ServiceInfo     `json:"services"`
	Features       []string          `json:"features"`
}

// ServiceInfo pairs a service code with its display name.
type ServiceInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// RouteErrorResponse is returned for unknown routes and methods.
type RouteErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Path    string `json:"path"`
	Method  string `json:"method"`
}
