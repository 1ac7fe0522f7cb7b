package types

// Health statuses for the service and its components.
const (
	HealthStatusUp       = "up"
	HealthStatusDown     = "down"
	HealthStatusDegraded = "degraded"
)

// HealthComponent reports the status of a single dependency.
type HealthComponent struct {
	Status  string `json:"status"`
	Details string `json:"details,omitempty"`
}

// HealthCheck is the aggregate health report for the service.
type HealthCheck struct {
	Status     string                     `json:"status"`
	Components map[string]HealthComponent `json:"components,omitempty"`
	Version    string                     `json:"version"`
	Uptime     string                     `json:"uptime"`
	Timestamp  string                     `json:"timestamp"`
}
