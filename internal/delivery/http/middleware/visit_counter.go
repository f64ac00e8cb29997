package middleware

import (
	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// VisitCounter feeds the stats readout. Every handled request counts as a
// visit, including ones later rejected downstream.
func VisitCounter(stats domain.StatsUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats.RecordVisit()
		c.Next()
	}
}
