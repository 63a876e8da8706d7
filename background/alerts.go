package background

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ExpireRegionAlerts is a background job to flip stale active alerts to
// EXPIRED. The age limit comes from `alert.ttl` in hours.
func (m *BackgroundManager) ExpireRegionAlerts() error {
	ttl := viper.GetInt("alert.ttl")
	if ttl <= 0 {
		ttl = 72
	}

	expired, err := m.store.ExpireAlerts(time.Duration(ttl) * time.Hour)
	if err != nil {
		return err
	}

	if expired > 0 {
		log.WithFields(log.Fields{
			"prefix":  "background",
			"expired": expired,
		}).Info("region alerts expired")
	}

	return nil
}
