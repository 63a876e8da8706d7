package store

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/resqlink/resqlink-api/schema"
)

var (
	ErrRequestNotExist     = fmt.Errorf("the request does not exist")
	ErrMultipleRequestMade = fmt.Errorf("an open request already exists for this contact")
	ErrInvalidTransition   = fmt.Errorf("the request status can only move forward")
	ErrUnknownStatus       = fmt.Errorf("unknown request status")
)

// CreateRequest persists a new help request. The status always starts at
// SUBMITTED regardless of what the caller set. A contact number may hold
// at most one SUBMITTED request at a time, enforced by a partial unique
// index.
func (s *ResQLinkStore) CreateRequest(req schema.HelpRequest) (*schema.HelpRequest, error) {
	req.Status = schema.STATUS_SUBMITTED
	if req.PeopleAffected <= 0 {
		req.PeopleAffected = 1
	}
	if req.Urgency == "" {
		req.Urgency = schema.URGENCY_MEDIUM
	}

	if err := s.ormDB.Create(&req).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrMultipleRequestMade
		}
		return nil, err
	}
	return &req, nil
}

// GetRequest returns a single help request by its id
func (s *ResQLinkStore) GetRequest(id string) (*schema.HelpRequest, error) {
	var req schema.HelpRequest

	if err := s.ormDB.Where("id = ?", id).First(&req).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotExist
		}
		return nil, err
	}

	return &req, nil
}

// ListRequests returns help requests matching the filter, most recent
// first
func (s *ResQLinkStore) ListRequests(filter RequestFilter) ([]schema.HelpRequest, error) {
	requests := []schema.HelpRequest{}

	query := s.ormDB.Model(schema.HelpRequest{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Urgency != "" {
		query = query.Where("urgency = ?", filter.Urgency)
	}
	if filter.District != "" {
		query = query.Where("district = ?", filter.District)
	}
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}

	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}

// UpdateRequestStatus moves a request forward in its lifecycle. The rank
// predicate lives in the WHERE clause so that two concurrent updates can
// never race a request backward. Zero rows affected means either the
// request is missing or the transition is illegal; a follow-up read
// tells the two apart.
func (s *ResQLinkStore) UpdateRequestStatus(id, status string) (*schema.HelpRequest, error) {
	below := schema.StatusesBelow(status)
	if below == nil {
		return nil, ErrUnknownStatus
	}

	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND status IN (?)", id, below).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := s.GetRequest(id); err != nil {
			return nil, err
		}
		return nil, ErrInvalidTransition
	}

	return s.GetRequest(id)
}

type regionRow struct {
	District string
	State    string
	Category string
	Status   string
	Count    int64
}

// AggregateRegions computes per-region request counts from the
// relational store. The result feeds the mongo region metric collection.
func (s *ResQLinkStore) AggregateRegions() ([]schema.RegionMetric, error) {
	rows := []regionRow{}

	if err := s.ormDB.Raw(
		`SELECT district, state, category, status, COUNT(*) AS count
		FROM help_requests
		WHERE district != ''
		GROUP BY district, state, category, status`,
	).Scan(&rows).Error; err != nil {
		return nil, err
	}

	byRegion := map[string]*schema.RegionMetric{}
	order := []string{}

	for _, row := range rows {
		key := row.District + "|" + row.State
		metric, ok := byRegion[key]
		if !ok {
			metric = &schema.RegionMetric{
				District:       row.District,
				State:          row.State,
				CategoryCounts: map[string]int64{},
			}
			byRegion[key] = metric
			order = append(order, key)
		}

		metric.TotalCount += row.Count
		metric.CategoryCounts[row.Category] += row.Count

		switch row.Status {
		case schema.STATUS_SUBMITTED:
			metric.SubmittedCount += row.Count
		case schema.STATUS_IN_PROGRESS:
			metric.InProgressCount += row.Count
		case schema.STATUS_RESOLVED:
			metric.ResolvedCount += row.Count
		}
	}

	metrics := make([]schema.RegionMetric, 0, len(order))
	for _, key := range order {
		metrics = append(metrics, *byRegion[key])
	}

	return metrics, nil
}
