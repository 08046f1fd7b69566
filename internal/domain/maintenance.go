// Package domain contains the types exchanged with the remote API.
package domain

import "time"

// MaintenanceStatus is the site-wide maintenance flag reported by the API.
// It is never persisted; callers fetch it fresh on every navigation.
type MaintenanceStatus struct {
	Active    bool      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
