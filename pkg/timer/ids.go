package timer

import "fmt"

// Deterministic job ids. Because the id is the primary key, scheduling the
// same logical timer twice collides on insert and the second schedule is a
// no-op. Cancellation needs no bookkeeping: the id can always be rebuilt
// from the request.

// WarningJobID is the id of the pre-breach warning timer for a request.
func WarningJobID(requestID string) string {
	return fmt.Sprintf("sla:warning:%s:0", requestID)
}

// BreachJobID is the id of the breach timer for a request.
func BreachJobID(requestID string) string {
	return fmt.Sprintf("sla:breach:%s:1", requestID)
}

// EscalationJobID is the id of the escalation timer that fires level for a
// request. Levels start at 2; level 1 is the breach itself.
func EscalationJobID(requestID string, level int) string {
	return fmt.Sprintf("sla:escalation:%s:%d", requestID, level)
}

// SurveyJobID is the id of the delayed satisfaction survey for a request.
func SurveyJobID(requestID string) string {
	return fmt.Sprintf("sla:survey:%s:0", requestID)
}

// DeliveryJobID is the id of the delivery retry job for an alert.
func DeliveryJobID(alertID string) string {
	return fmt.Sprintf("sla:delivery:%s:0", alertID)
}
