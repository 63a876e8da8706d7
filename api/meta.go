package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/resqlink/resqlink-api/schema"
	"github.com/resqlink/resqlink-api/utils"
)

// formMeta serves the submission form vocabulary: the category and
// urgency values with labels localized from the Accept-Language header
func (s *Server) formMeta(c *gin.Context) {
	lang := c.GetHeader("Accept-Language")

	categories := make([]gin.H, 0, len(schema.Categories))
	for _, category := range schema.Categories {
		categories = append(categories, gin.H{
			"value": category,
			"label": utils.Localize(lang, "category."+category, titleCase(category)),
		})
	}

	urgencies := make([]gin.H, 0, len(schema.Urgencies))
	for _, urgency := range schema.Urgencies {
		urgencies = append(urgencies, gin.H{
			"value": urgency,
			"label": utils.Localize(lang, "urgency."+urgency, titleCase(urgency)),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"urgencies":  urgencies,
	})
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(strings.ToLower(s), "_", " ")
	return strings.ToUpper(s[:1]) + s[1:]
}
