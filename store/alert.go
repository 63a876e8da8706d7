package store

import (
	"time"

	"github.com/resqlink/resqlink-api/schema"
)

// CreateAlert issues a new region alert
func (s *ResQLinkStore) CreateAlert(alert schema.RegionAlert) (*schema.RegionAlert, error) {
	alert.Status = schema.ALERT_ACTIVE

	if err := s.ormDB.Create(&alert).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

// ListActiveAlerts returns the active alerts for a region, most recent
// first
func (s *ResQLinkStore) ListActiveAlerts(district, state string) ([]schema.RegionAlert, error) {
	alerts := []schema.RegionAlert{}

	query := s.ormDB.Where("status = ?", schema.ALERT_ACTIVE)
	if district != "" {
		query = query.Where("district = ?", district)
	}
	if state != "" {
		query = query.Where("state = ?", state)
	}

	if err := query.Order("created_at DESC").Find(&alerts).Error; err != nil {
		return nil, err
	}

	return alerts, nil
}

// ExpireAlerts flips active alerts older than the given age to EXPIRED
// and returns how many were affected
func (s *ResQLinkStore) ExpireAlerts(olderThan time.Duration) (int64, error) {
	result := s.ormDB.Model(schema.RegionAlert{}).
		Where("status = ? AND created_at <= ?", schema.ALERT_ACTIVE, time.Now().Add(-olderThan)).
		Update("status", schema.ALERT_EXPIRED)

	return result.RowsAffected, result.Error
}
