package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	ALERT_ACTIVE  = "ACTIVE"
	ALERT_EXPIRED = "EXPIRED"
)

// RegionAlert is an advisory issued by administrators for a district,
// shown alongside the submission form. Alerts share the urgency scale
// of help requests for their severity.
type RegionAlert struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	District    string    `json:"district"`
	State       string    `json:"state"`
	AlertType   string    `json:"alert_type"`
	Severity    string    `json:"severity"`
	Description string    `json:"description"`
	Status      string    `json:"status" sql:"default:'ACTIVE'"`
	CreatedAt   time.Time `json:"created_at"`
}
