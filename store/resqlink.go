package store

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/resqlink/resqlink-api/schema"
)

// resqlink main datastore
type ResQLinkCore interface {
	Ping() error

	// Help requests
	CreateRequest(req schema.HelpRequest) (*schema.HelpRequest, error)
	GetRequest(id string) (*schema.HelpRequest, error)
	ListRequests(filter RequestFilter) ([]schema.HelpRequest, error)
	UpdateRequestStatus(id, status string) (*schema.HelpRequest, error)
	AggregateRegions() ([]schema.RegionMetric, error)

	// Region alerts
	CreateAlert(alert schema.RegionAlert) (*schema.RegionAlert, error)
	ListActiveAlerts(district, state string) ([]schema.RegionAlert, error)
	ExpireAlerts(olderThan time.Duration) (int64, error)

	// Emergency contacts
	CreateContact(contact schema.EmergencyContact) (*schema.EmergencyContact, error)
	ListContacts(district, state string) ([]schema.EmergencyContact, error)
}

// RequestFilter narrows a help request listing. Empty fields are ignored.
type RequestFilter struct {
	Status   string
	Category string
	Urgency  string
	District string
	State    string
}

// ResQLinkStore is an implementation of ResQLinkCore
type ResQLinkStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewResQLinkStore(ormDB *gorm.DB, mongo MongoStore) *ResQLinkStore {
	return &ResQLinkStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *ResQLinkStore) Ping() error {
	return s.ormDB.DB().Ping()
}
