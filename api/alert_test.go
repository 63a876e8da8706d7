package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/resqlink/resqlink-api/api/mocks"
	"github.com/resqlink/resqlink-api/schema"
)

func alertRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/alerts", s.createAlert)
	router.GET("/alerts", s.listAlerts)
	return router
}

func TestCreateAlert(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockResQLinkCore(ctl)
	s := Server{store: a}

	a.EXPECT().CreateAlert(gomock.Any()).DoAndReturn(
		func(alert schema.RegionAlert) (*schema.RegionAlert, error) {
			assert.Equal(t, "Kaski", alert.District)
			assert.Equal(t, "flood", alert.AlertType)
			assert.Equal(t, schema.URGENCY_HIGH, alert.Severity)
			alert.ID = uuid.New()
			alert.Status = schema.ALERT_ACTIVE
			return &alert, nil
		}).Times(1)

	body := `{
		"district": "Kaski",
		"state": "Gandaki",
		"alert_type": "flood",
		"severity": "HIGH",
		"description": "river rising near the dam"
	}`

	req := httptest.NewRequest("POST", "/alerts", strings.NewReader(body))
	w := httptest.NewRecorder()
	alertRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var jResp schema.RegionAlert
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, schema.ALERT_ACTIVE, jResp.Status, "alert must start active")
}

func TestCreateAlertMissingRegion(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockResQLinkCore(ctl)
	s := Server{store: a}

	req := httptest.NewRequest("POST", "/alerts", strings.NewReader(`{"alert_type": "flood"}`))
	w := httptest.NewRecorder()
	alertRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestListAlerts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockResQLinkCore(ctl)
	s := Server{store: a}

	a.EXPECT().ListActiveAlerts("Kaski", "Gandaki").Return([]schema.RegionAlert{
		{District: "Kaski", State: "Gandaki", AlertType: "flood", Status: schema.ALERT_ACTIVE},
	}, nil).Times(1)

	req := httptest.NewRequest("GET", "/alerts?district=Kaski&state=Gandaki", nil)
	w := httptest.NewRecorder()
	alertRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Alerts []schema.RegionAlert `json:"alerts"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp.Alerts, 1, "wrong data")
}

func TestListAlertsNoRegion(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockResQLinkCore(ctl)
	s := Server{store: a}

	req := httptest.NewRequest("GET", "/alerts", nil)
	w := httptest.NewRecorder()
	alertRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}
