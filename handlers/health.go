package handlers

import (
	"net/http"

	"valetpro/services/valet"
	"valetpro/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness, which message generator is active and the
// last status feed check.
func HealthHandler(svc valet.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "Hi, I'm ValetPro",
			"generator": svc.GeneratorMode(),
			"health":    utils.GetHealthStatus(),
		})
	}
}
