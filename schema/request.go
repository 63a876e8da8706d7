package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	STATUS_SUBMITTED   = "SUBMITTED"
	STATUS_IN_PROGRESS = "IN_PROGRESS"
	STATUS_RESOLVED    = "RESOLVED"
)

const (
	CATEGORY_MEDICAL  = "MEDICAL"
	CATEGORY_RESCUE   = "RESCUE"
	CATEGORY_SUPPLIES = "SUPPLIES"
	CATEGORY_SHELTER  = "SHELTER"
	CATEGORY_OTHER    = "OTHER"
)

const (
	URGENCY_LOW      = "LOW"
	URGENCY_MEDIUM   = "MEDIUM"
	URGENCY_HIGH     = "HIGH"
	URGENCY_CRITICAL = "CRITICAL"
)

// StatusRank orders the lifecycle states of a help request. A status
// update is legal only when the rank strictly increases.
var StatusRank = map[string]int{
	STATUS_SUBMITTED:   0,
	STATUS_IN_PROGRESS: 1,
	STATUS_RESOLVED:    2,
}

var Categories = []string{
	CATEGORY_MEDICAL,
	CATEGORY_RESCUE,
	CATEGORY_SUPPLIES,
	CATEGORY_SHELTER,
	CATEGORY_OTHER,
}

var Urgencies = []string{
	URGENCY_LOW,
	URGENCY_MEDIUM,
	URGENCY_HIGH,
	URGENCY_CRITICAL,
}

type HelpRequest struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Name           string    `json:"name"`
	Contact        string    `json:"contact"`
	Location       string    `json:"location"`
	District       string    `json:"district"`
	State          string    `json:"state"`
	Pincode        string    `json:"pincode"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	Category       string    `json:"category"`
	Urgency        string    `json:"urgency" sql:"default:'MEDIUM'"`
	Description    string    `json:"description"`
	PeopleAffected int       `json:"people_affected" sql:"default:1"`
	Status         string    `json:"status" sql:"default:'SUBMITTED'"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ValidStatus reports whether s is a known lifecycle state.
func ValidStatus(s string) bool {
	_, ok := StatusRank[s]
	return ok
}

func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func ValidUrgency(u string) bool {
	for _, known := range Urgencies {
		if u == known {
			return true
		}
	}
	return false
}

// CanTransition reports whether a request may move from one lifecycle
// state to another. Transitions never move backward and a state never
// transitions to itself.
func CanTransition(from, to string) bool {
	fromRank, ok := StatusRank[from]
	if !ok {
		return false
	}
	toRank, ok := StatusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

// StatusesBelow returns every lifecycle state ranked strictly lower than
// the given one, ordered by rank. It is the legal set of current states
// for an update targeting `status`.
func StatusesBelow(status string) []string {
	rank, ok := StatusRank[status]
	if !ok {
		return nil
	}

	below := make([]string, 0, len(StatusRank))
	for r := 0; r < rank; r++ {
		for s, sr := range StatusRank {
			if sr == r {
				below = append(below, s)
			}
		}
	}
	return below
}
