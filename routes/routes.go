package routes

import (
	"net/http"
	"time"

	"valetpro/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes registers the actions on the shared session.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/session")
	{
		api.GET("", hb.GetSession)
		api.POST("/register", hb.Register)
		api.POST("/request", hb.RequestCar)
		api.POST("/bring", hb.BringCar)
		api.POST("/ready", hb.MarkReady)
		api.POST("/reset", hb.Reset)
		api.PUT("/view", hb.SwitchView)
	}
}

// RegisterViewRoutes registers the read-only customer and valet projections.
func RegisterViewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/views")
	{
		api.GET("/customer", hb.CustomerView)
		api.GET("/valet", hb.ValetView)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterViewRoutes(r, hb)
}
