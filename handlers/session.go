package handlers

import (
	"errors"
	"net/http"

	"valetpro/models"
	"valetpro/services/valet"
	"valetpro/services/views"
	"valetpro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler exposes the shared valet session to both actors.
type SessionHandler struct {
	Service valet.SessionService
	logger  *zap.Logger
}

func NewSessionHandler(svc valet.SessionService, logger *zap.Logger) *SessionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionHandler{Service: svc, logger: logger}
}

// GetSessionHandler returns the raw session and the assigned driver.
func (h *SessionHandler) GetSessionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"session": h.Service.Snapshot(),
		"driver":  h.Service.Driver(),
	})
}

func (h *SessionHandler) RegisterHandler(c *gin.Context) {
	var req models.RegistrationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	s, err := h.Service.Register(req)
	if err != nil {
		h.sessionError(c, "register", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": s})
}

func (h *SessionHandler) RequestCarHandler(c *gin.Context) {
	s, err := h.Service.RequestCar()
	if err != nil {
		h.sessionError(c, "request car", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": s})
}

func (h *SessionHandler) BringCarHandler(c *gin.Context) {
	var req models.BringCarInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	s, err := h.Service.BringCar(req.Eta)
	if err != nil {
		h.sessionError(c, "bring car", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": s})
}

func (h *SessionHandler) MarkReadyHandler(c *gin.Context) {
	s, err := h.Service.MarkReady()
	if err != nil {
		h.sessionError(c, "mark ready", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": s})
}

func (h *SessionHandler) ResetHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"session": h.Service.Reset()})
}

func (h *SessionHandler) SwitchViewHandler(c *gin.Context) {
	var req models.ViewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	s, err := h.Service.SwitchView(req.View)
	if err != nil {
		h.sessionError(c, "switch view", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": s})
}

func (h *SessionHandler) CustomerViewHandler(c *gin.Context) {
	c.JSON(http.StatusOK, views.RenderCustomer(h.Service.Snapshot(), h.Service.Driver()))
}

func (h *SessionHandler) ValetViewHandler(c *gin.Context) {
	c.JSON(http.StatusOK, views.RenderValet(h.Service.Snapshot()))
}

func (h *SessionHandler) sessionError(c *gin.Context, action string, err error) {
	var ve *valet.ValidationError
	var te *valet.TransitionError
	switch {
	case errors.As(err, &ve):
		utils.JSONError(c, http.StatusBadRequest, ve.Message, ve.Field)
	case errors.As(err, &te):
		utils.JSONError(c, http.StatusConflict, "Action not allowed right now", te.Error())
	case errors.Is(err, valet.ErrPending):
		utils.JSONError(c, http.StatusConflict, "Please wait for the current update to finish", err.Error())
	default:
		h.logger.Error("Session action failed", zap.String("action", action), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to "+action, err.Error())
	}
}
