package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resqlink/resqlink-api/schema"
)

// createAlert issues a new advisory for a region. Admin only.
func (s *Server) createAlert(c *gin.Context) {
	var params struct {
		District    string `json:"district"`
		State       string `json:"state"`
		AlertType   string `json:"alert_type"`
		Severity    string `json:"severity"`
		Description string `json:"description"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.District == "" || params.State == "" || params.AlertType == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if params.Severity == "" {
		params.Severity = schema.URGENCY_MEDIUM
	} else if !schema.ValidUrgency(params.Severity) {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownUrgency)
		return
	}

	alert, err := s.store.CreateAlert(schema.RegionAlert{
		District:    params.District,
		State:       params.State,
		AlertType:   params.AlertType,
		Severity:    params.Severity,
		Description: params.Description,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusCreated, alert)
}

// listAlerts returns the active alerts of a region
func (s *Server) listAlerts(c *gin.Context) {
	district := c.Query("district")
	state := c.Query("state")

	if district == "" && state == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	alerts, err := s.store.ListActiveAlerts(district, state)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
