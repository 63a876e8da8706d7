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
	"github.com/resqlink/resqlink-api/store"
)

func testRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/requests", s.submitRequest)
	router.GET("/requests", s.listRequests)
	router.GET("/requests/:requestID", s.getRequest)
	router.PATCH("/requests/:requestID", s.updateRequestStatus)
	return router
}

func TestSubmitRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockResQLinkCore(ctl)
	s := Server{store: a}

	stored := schema.HelpRequest{
		ID:             uuid.New(),
		Name:           "Asha Gurung",
		Contact:        "+9779812345678",
		Location:       "Ward 4, near the school",
		District:       "Kaski",
		State:          "Gandaki",
		Category:       schema.CATEGORY_MEDICAL,
		Urgency:        schema.URGENCY_HIGH,
		Description:    "elderly patient needs oxygen",
		PeopleAffected: 2,
		Status:         schema.STATUS_SUBMITTED,
	}

	a.EXPECT().CreateRequest(gomock.Any()).DoAndReturn(
		func(req schema.HelpRequest) (*schema.HelpRequest, error) {
			assert.Equal(t, "Asha Gurung", req.Name)
			assert.Equal(t, schema.CATEGORY_MEDICAL, req.Category)
			assert.Equal(t, schema.URGENCY_HIGH, req.Urgency)
			return &stored, nil
		}).Times(1)

	body := `{
		"name": "Asha Gurung",
		"contact": "+9779812345678",
		"location": "Ward 4, near the school",
		"district": "Kaski",
		"state": "Gandaki",
		"category": "MEDICAL",
		"urgency": "HIGH",
		"description": "elderly patient needs oxygen",
		"people_affected": 2
	}`

	req := httptest.NewRequest("POST", "/requests", strings.NewReader(body))
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var jResp schema.HelpRequest
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, stored.ID, jResp.ID, "wrong data")
	assert.Equal(t, schema.STATUS_SUBMITTED, jResp.Status, "request must start submitted")
}

func TestSubmitRequestMissingField(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockResQLinkCore(ctl)
	s := Server{store: a}

	// description is required
	body := `{
		"name": "Asha Gurung",
		"contact": "+9779812345678",
		"location": "Ward 4",
		"category": "MEDICAL"
	}`

	req := httptest.NewRequest("POST", "/requests", strings.NewReader(body))
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestSubmitRequestUnknownCategory(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockResQLinkCore(ctl)
	s := Server{store: a}

	body := `{
		"name": "Asha Gurung",
		"contact": "+9779812345678",
		"location": "Ward 4",
		"category": "HELICOPTER",
		"description": "need a lift"
	}`

	req := httptest.NewRequest("POST", "/requests", strings.NewReader(body))
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorUnknownCategory.Code, jResp.Code, "wrong error code")
}

func TestSubmitRequestDuplicate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockResQLinkCore(ctl)
	s := Server{store: a}

	a.EXPECT().CreateRequest(gomock.Any()).Return(nil, store.ErrMultipleRequestMade).Times(1)

	body := `{
		"name": "Asha Gurung",
		"contact": "+9779812345678",
		"location": "Ward 4",
		"category": "SUPPLIES",
		"description": "ran out of drinking water"
	}`

	req := httptest.NewRequest("POST", "/requests", strings.NewReader(body))
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorMultipleRequestMade.Code, jResp.Code, "wrong error code")
}

func TestGetRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockResQLinkCore(ctl)
	s := Server{store: a}

	id := uuid.New()
	a.EXPECT().GetRequest(id.String()).Return(&schema.HelpRequest{
		ID:     id,
		Status: schema.STATUS_IN_PROGRESS,
	}, nil).Times(1)

	req := httptest.NewRequest("GET", "/requests/"+id.String(), nil)
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp schema.HelpRequest
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, id, jResp.ID, "wrong data")
}

func TestGetRequestNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockResQLinkCore(ctl)
	s := Server{store: a}

	a.EXPECT().GetRequest("missing").Return(nil, store.ErrRequestNotExist).Times(1)

	req := httptest.NewRequest("GET", "/requests/missing", nil)
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}

func TestListRequestsFilter(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockResQLinkCore(ctl)
	s := Server{store: a}

	a.EXPECT().ListRequests(store.RequestFilter{
		Status:   schema.STATUS_SUBMITTED,
		Category: schema.CATEGORY_RESCUE,
	}).Return([]schema.HelpRequest{
		{Category: schema.CATEGORY_RESCUE, Status: schema.STATUS_SUBMITTED},
	}, nil).Times(1)

	req := httptest.NewRequest("GET", "/requests?status=SUBMITTED&category=RESCUE", nil)
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Requests []schema.HelpRequest `json:"requests"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp.Requests, 1, "wrong data")
	assert.Equal(t, schema.CATEGORY_RESCUE, jResp.Requests[0].Category, "wrong category")
}

func TestListRequestsUnknownStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockResQLinkCore(ctl)
	s := Server{store: a}

	req := httptest.NewRequest("GET", "/requests?status=LOST", nil)
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestUpdateRequestStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockResQLinkCore(ctl)
	s := Server{store: a}

	id := uuid.New()
	a.EXPECT().UpdateRequestStatus(id.String(), schema.STATUS_RESOLVED).Return(&schema.HelpRequest{
		ID:     id,
		Status: schema.STATUS_RESOLVED,
	}, nil).Times(1)

	req := httptest.NewRequest("PATCH", "/requests/"+id.String(), strings.NewReader(`{"status": "RESOLVED"}`))
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp schema.HelpRequest
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, schema.STATUS_RESOLVED, jResp.Status, "wrong data")
}

func TestUpdateRequestStatusBackward(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockResQLinkCore(ctl)
	s := Server{store: a}

	id := uuid.New()
	a.EXPECT().UpdateRequestStatus(id.String(), schema.STATUS_SUBMITTED).
		Return(nil, store.ErrInvalidTransition).Times(1)

	req := httptest.NewRequest("PATCH", "/requests/"+id.String(), strings.NewReader(`{"status": "SUBMITTED"}`))
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorInvalidTransition.Code, jResp.Code, "wrong error code")
}

func TestUpdateRequestStatusUnknownValue(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockResQLinkCore(ctl)
	s := Server{store: a}

	req := httptest.NewRequest("PATCH", "/requests/any", strings.NewReader(`{"status": "DONE"}`))
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestUpdateRequestStatusNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockResQLinkCore(ctl)
	s := Server{store: a}

	a.EXPECT().UpdateRequestStatus("missing", schema.STATUS_IN_PROGRESS).
		Return(nil, store.ErrRequestNotExist).Times(1)

	req := httptest.NewRequest("PATCH", "/requests/missing", strings.NewReader(`{"status": "IN_PROGRESS"}`))
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}
