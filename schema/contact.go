package schema

import "github.com/google/uuid"

// EmergencyContact is a regional authority or volunteer reachable by
// phone, served to requesters of the matching district.
type EmergencyContact struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	District string    `json:"district"`
	State    string    `json:"state"`
	Category string    `json:"category"`
	IsActive bool      `json:"is_active" sql:"default:true"`
}
