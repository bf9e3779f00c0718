package models

// AuditEvent is published to Kafka after each successful workflow so an
// operator can reconcile partial-failure states (orphaned accounts, orphaned
// profile documents) offline.
type AuditEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	Action    string `json:"action"` // signup, update, delete
	UID       string `json:"uid"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
}
