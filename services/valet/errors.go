package valet

import (
	"errors"
	"fmt"

	"valetpro/models"
)

// ErrPending is returned when a status message is still being generated and the
// action would start another one.
var ErrPending = errors.New("a status update is already in progress")

// ValidationError is a rejected user input. The session is left unchanged.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// TransitionError is an action that is not valid from the current state.
type TransitionError struct {
	Action string
	Phase  models.Phase
	Status models.RetrievalStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s: phase %s, retrieval status %s", e.Action, e.Phase, e.Status)
}

func newTransitionError(action string, s models.SessionState) error {
	return &TransitionError{Action: action, Phase: s.Phase, Status: s.RetrievalStatus}
}
