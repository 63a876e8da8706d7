package background

import (
	log "github.com/sirupsen/logrus"
)

// SyncRegionMetrics is a background job to recompute per-region request
// counts from the relational store and push them into the mongo
// collection the dashboard reads
func (m *BackgroundManager) SyncRegionMetrics() error {
	metrics, err := m.store.AggregateRegions()
	if err != nil {
		return err
	}

	if err := m.mongo.SyncRegionMetrics(metrics); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":  "background",
		"regions": len(metrics),
	}).Info("region metrics synced")

	return nil
}
