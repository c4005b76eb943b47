// Package audit records an append-only trail of marketplace activity.
package audit

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mssola/useragent"
)

// Action names what happened.
type Action string

const (
	ActionVehicleCreated    Action = "vehicle.created"
	ActionVehicleUpdated    Action = "vehicle.updated"
	ActionListingCreated    Action = "listing.created"
	ActionAccountRegistered Action = "account.registered"
)

// Event is one audit record. ClientDevice is a short human-readable summary
// of the caller's user agent, not the raw header.
type Event struct {
	ID           uuid.UUID `json:"id"`
	Action       Action    `json:"action"`
	ActorID      int64     `json:"actor_id"`
	EntityID     int64     `json:"entity_id"`
	Plate        string    `json:"license_plate,omitempty"`
	ClientIP     string    `json:"client_ip,omitempty"`
	ClientDevice string    `json:"client_device,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// DeviceSummary condenses a raw User-Agent header into "Browser x.y on OS".
// Unparseable agents come back as given, truncated.
func DeviceSummary(rawUA string) string {
	if rawUA == "" {
		return ""
	}
	ua := useragent.New(rawUA)
	name, version := ua.Browser()
	if name == "" {
		if len(rawUA) > 64 {
			return rawUA[:64]
		}
		return rawUA
	}
	if os := ua.OS(); os != "" {
		return fmt.Sprintf("%s %s on %s", name, version, os)
	}
	return fmt.Sprintf("%s %s", name, version)
}
