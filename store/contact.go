package store

import (
	"github.com/resqlink/resqlink-api/schema"
)

// CreateContact registers an emergency contact for a region
func (s *ResQLinkStore) CreateContact(contact schema.EmergencyContact) (*schema.EmergencyContact, error) {
	contact.IsActive = true

	if err := s.ormDB.Create(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// ListContacts returns the active emergency contacts of a region
func (s *ResQLinkStore) ListContacts(district, state string) ([]schema.EmergencyContact, error) {
	contacts := []schema.EmergencyContact{}

	if err := s.ormDB.
		Where("district = ? AND state = ? AND is_active = ?", district, state, true).
		Find(&contacts).Error; err != nil {
		return nil, err
	}

	return contacts, nil
}
