package valet

import "valetpro/models"

const (
	ActionRegister = "register"
	ActionRequest  = "request"
	ActionBring    = "bring"
	ActionReady    = "ready"
	ActionReset    = "reset"
	ActionView     = "view"
	ActionMessage  = "message"
)

const msgRequestSent = "Your request has been sent. Waiting for the valet to respond."

// The functions below are the retrieval state machine. They take a state by
// value and return the next one; a non-nil error means s is returned untouched.

// InitialState is the empty registration-phase session.
func InitialState(sessionID string) models.SessionState {
	return models.SessionState{
		SessionID:       sessionID,
		Phase:           models.PhaseRegistration,
		ActiveView:      models.ViewCustomer,
		RetrievalStatus: models.StatusNone,
	}
}

func register(s models.SessionState, in models.RegistrationInput) (models.SessionState, error) {
	if s.Phase != models.PhaseRegistration {
		return s, newTransitionError(ActionRegister, s)
	}
	v, err := ValidateVehicle(in)
	if err != nil {
		return s, err
	}
	next := s
	next.Vehicle = &v
	next.Phase = models.PhaseTracking
	return next, nil
}

func requestCar(s models.SessionState) (models.SessionState, error) {
	if s.Phase != models.PhaseTracking || s.RetrievalStatus != models.StatusNone {
		return s, newTransitionError(ActionRequest, s)
	}
	next := s
	next.RetrievalStatus = models.StatusRequested
	next.StatusMessage = msgRequestSent
	return next, nil
}

func bringCar(s models.SessionState, rawEta string) (models.SessionState, error) {
	if s.Phase != models.PhaseTracking || s.RetrievalStatus != models.StatusRequested {
		return s, newTransitionError(ActionBring, s)
	}
	eta, err := ParseEta(rawEta)
	if err != nil {
		return s, err
	}
	next := s
	next.RetrievalStatus = models.StatusInTransit
	next.EtaMinutes = eta
	return next, nil
}

func markReady(s models.SessionState) (models.SessionState, error) {
	if s.Phase != models.PhaseTracking || s.RetrievalStatus != models.StatusInTransit {
		return s, newTransitionError(ActionReady, s)
	}
	next := s
	next.RetrievalStatus = models.StatusReady
	return next, nil
}

func switchView(s models.SessionState, view models.ViewMode) (models.SessionState, error) {
	if !view.Valid() {
		return s, NewValidationError("view", "view must be CUSTOMER or VALET")
	}
	if s.Phase != models.PhaseTracking {
		return s, newTransitionError(ActionView, s)
	}
	next := s
	next.ActiveView = view
	return next, nil
}
