package domain

import "time"

// AuditLog is one recorded mutating API request.
type AuditLog struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`   // HTTP method, e.g. POST
	Resource  string    `json:"resource"` // route pattern, e.g. /users/{id}
	IP        string    `json:"ip"`
	Metadata  string    `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
