package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resqlink/resqlink-api/geo"
	"github.com/resqlink/resqlink-api/schema"
	"github.com/resqlink/resqlink-api/store"
)

// submitRequest is the API for asking help. It is open to the public.
func (s *Server) submitRequest(c *gin.Context) {
	var params struct {
		Name           string   `json:"name"`
		Contact        string   `json:"contact"`
		Location       string   `json:"location"`
		District       string   `json:"district"`
		State          string   `json:"state"`
		Pincode        string   `json:"pincode"`
		Latitude       *float64 `json:"latitude"`
		Longitude      *float64 `json:"longitude"`
		Category       string   `json:"category"`
		Urgency        string   `json:"urgency"`
		Description    string   `json:"description"`
		PeopleAffected int      `json:"people_affected"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Name == "" || params.Contact == "" || params.Location == "" ||
		params.Category == "" || params.Description == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if !schema.ValidCategory(params.Category) {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownCategory)
		return
	}

	if params.Urgency != "" && !schema.ValidUrgency(params.Urgency) {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownUrgency)
		return
	}

	if params.PeopleAffected < 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	district := params.District
	state := params.State

	// best effort: resolve missing administrative areas from coordinates
	if params.Latitude != nil && params.Longitude != nil && (district == "" || state == "") {
		loc, err := geo.PoliticalGeoInfo(schema.Location{
			Latitude:  *params.Latitude,
			Longitude: *params.Longitude,
			District:  district,
			State:     state,
		})
		if err != nil {
			log.WithError(err).Warn("resolve request location")
		} else {
			district = loc.District
			state = loc.State
		}
	}

	req, err := s.store.CreateRequest(schema.HelpRequest{
		Name:           params.Name,
		Contact:        params.Contact,
		Location:       params.Location,
		District:       district,
		State:          state,
		Pincode:        params.Pincode,
		Latitude:       params.Latitude,
		Longitude:      params.Longitude,
		Category:       params.Category,
		Urgency:        params.Urgency,
		Description:    params.Description,
		PeopleAffected: params.PeopleAffected,
	})
	if err != nil {
		if err == store.ErrMultipleRequestMade {
			abortWithEncoding(c, http.StatusConflict, errorMultipleRequestMade, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusCreated, req)
}

// getRequest returns a single help request so a requester can track
// their own submission
func (s *Server) getRequest(c *gin.Context) {
	req, err := s.store.GetRequest(c.Param("requestID"))
	if err != nil {
		if err == store.ErrRequestNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, req)
}

// listRequests is the admin view over all help requests with optional
// status / category / urgency / region filters
func (s *Server) listRequests(c *gin.Context) {
	filter := store.RequestFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Urgency:  c.Query("urgency"),
		District: c.Query("district"),
		State:    c.Query("state"),
	}

	if filter.Status != "" && !schema.ValidStatus(filter.Status) {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownStatus)
		return
	}
	if filter.Category != "" && !schema.ValidCategory(filter.Category) {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownCategory)
		return
	}
	if filter.Urgency != "" && !schema.ValidUrgency(filter.Urgency) {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownUrgency)
		return
	}

	requests, err := s.store.ListRequests(filter)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// updateRequestStatus moves a request forward in its lifecycle
func (s *Server) updateRequestStatus(c *gin.Context) {
	id := c.Param("requestID")

	var params struct {
		Status string `json:"status"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !schema.ValidStatus(params.Status) {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownStatus)
		return
	}

	req, err := s.store.UpdateRequestStatus(id, params.Status)
	if err != nil {
		switch err {
		case store.ErrRequestNotExist:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist, err)
		case store.ErrInvalidTransition:
			abortWithEncoding(c, http.StatusConflict, errorInvalidTransition, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, req)
}
