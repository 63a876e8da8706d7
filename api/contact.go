package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resqlink/resqlink-api/schema"
)

// listContacts returns the active emergency contacts of a region
func (s *Server) listContacts(c *gin.Context) {
	district := c.Query("district")
	state := c.Query("state")

	if district == "" || state == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	contacts, err := s.store.ListContacts(district, state)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

// createContact registers a regional emergency contact. Reachable only
// through the secret route.
func (s *Server) createContact(c *gin.Context) {
	var params struct {
		Name     string `json:"name"`
		Phone    string `json:"phone"`
		District string `json:"district"`
		State    string `json:"state"`
		Category string `json:"category"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Name == "" || params.Phone == "" || params.District == "" || params.State == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	contact, err := s.store.CreateContact(schema.EmergencyContact{
		Name:     params.Name,
		Phone:    params.Phone,
		District: params.District,
		State:    params.State,
		Category: params.Category,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}
