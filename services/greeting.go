// Package services builds the response payloads served by the handlers.
//
// Every function here is pure: the same input always yields the same
// payload, so repeated requests produce identical responses.
package services

// GreetingKey and GreetingTarget form the root response body.
const (
	GreetingKey    = "Hello"
	GreetingTarget = "Cloud Run"
)

// StatusHealthy is the only status the health endpoint reports.
const StatusHealthy = "healthy"

// HealthStatus - health check 응답
type HealthStatus struct {
	Status string `json:"status"`
}

// Greeting returns the root response body: {"Hello": "Cloud Run"}.
func Greeting() map[string]string {
	return map[string]string{GreetingKey: GreetingTarget}
}

// Health returns the health check body: {"status": "healthy"}.
func Health() HealthStatus {
	return HealthStatus{Status: StatusHealthy}
}
