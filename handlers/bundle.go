// File: valetpro/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Health gin.HandlerFunc

	// Session endpoints
	GetSession gin.HandlerFunc
	Register   gin.HandlerFunc
	RequestCar gin.HandlerFunc
	BringCar   gin.HandlerFunc
	MarkReady  gin.HandlerFunc
	Reset      gin.HandlerFunc
	SwitchView gin.HandlerFunc

	// View projections
	CustomerView gin.HandlerFunc
	ValetView    gin.HandlerFunc
}

// NewHandlerBundle wires a SessionHandler's methods into a bundle.
func NewHandlerBundle(h *SessionHandler) *HandlerBundle {
	return &HandlerBundle{
		Health:       HealthHandler(h.Service),
		GetSession:   h.GetSessionHandler,
		Register:     h.RegisterHandler,
		RequestCar:   h.RequestCarHandler,
		BringCar:     h.BringCarHandler,
		MarkReady:    h.MarkReadyHandler,
		Reset:        h.ResetHandler,
		SwitchView:   h.SwitchViewHandler,
		CustomerView: h.CustomerViewHandler,
		ValetView:    h.ValetViewHandler,
	}
}
