package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
)

var taskNames = map[string]string{
	"sync-region-metrics":  "sync_region_metrics",
	"expire-region-alerts": "expire_region_alerts",
}

// enqueueTask is an internal only api to trigger a background task on
// demand instead of waiting for its schedule
func (s *Server) enqueueTask(c *gin.Context) {
	name, ok := taskNames[c.Param("taskName")]
	if !ok {
		abortWithEncoding(c, http.StatusNotFound, errorUnknownTask)
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: name,
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}
