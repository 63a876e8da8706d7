package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// affectedRegions serves the dashboard with regions that still have
// open requests, read from the pre-computed mongo aggregates
func (s *Server) affectedRegions(c *gin.Context) {
	regions, err := s.mongoStore.ListAffectedRegions()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"regions": regions})
}
