package model

// HealthStatusHealthy is the only status the service reports
const HealthStatusHealthy = "healthy"

// HealthStatus represents the health check status
type HealthStatus struct {
	Status    string  `json:"status"`
	Service   string  `json:"service"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
	Version   string  `json:"version"`
}
