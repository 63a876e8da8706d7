package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/resqlink/resqlink-api/schema"
)

// RegionMetrics - interface for the dashboard aggregates
type RegionMetrics interface {
	SyncRegionMetrics(metrics []schema.RegionMetric) error
	ListAffectedRegions() ([]schema.RegionMetric, error)
}

// SyncRegionMetrics upserts the freshly computed aggregates, one
// document per (district, state)
func (m *mongoDB) SyncRegionMetrics(metrics []schema.RegionMetric) error {
	if len(metrics) == 0 {
		return nil
	}

	c := m.client.Database(m.database).Collection(schema.RegionMetricCollection)

	now := time.Now().Unix()
	models := make([]mongo.WriteModel, 0, len(metrics))
	for _, metric := range metrics {
		metric.LastUpdate = now
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{
				"district": metric.District,
				"state":    metric.State,
			}).
			SetReplacement(metric).
			SetUpsert(true))
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := c.BulkWrite(ctx, models)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":   mongoLogPrefix,
		"modified": result.ModifiedCount,
		"upserted": result.UpsertedCount,
	}).Debug("synced region metrics")

	return nil
}

// ListAffectedRegions returns regions that still have open requests,
// most burdened first
func (m *mongoDB) ListAffectedRegions() ([]schema.RegionMetric, error) {
	c := m.client.Database(m.database).Collection(schema.RegionMetricCollection)

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := c.Find(ctx, bson.M{
		"$or": bson.A{
			bson.M{"submitted": bson.M{"$gt": 0}},
			bson.M{"in_progress": bson.M{"$gt": 0}},
		},
	}, options.Find().SetSort(bson.D{
		{Key: "submitted", Value: -1},
		{Key: "in_progress", Value: -1},
	}))
	if nil != err {
		return nil, err
	}

	regions := []schema.RegionMetric{}
	for cur.Next(ctx) {
		var metric schema.RegionMetric
		if err := cur.Decode(&metric); nil != err {
			return nil, err
		}
		regions = append(regions, metric)
	}

	return regions, nil
}
