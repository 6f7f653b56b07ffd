// Package views projects the shared session into what each actor sees.
package views

import (
	"strconv"
	"strings"

	"valetpro/models"
)

const (
	minAnimationSeconds = 8
	maxAnimationSeconds = 45
	secondsPerEtaMinute = 5
)

// RenderCustomer is the customer's screen for state s.
func RenderCustomer(s models.SessionState, driver models.DriverRecord) models.CustomerView {
	view := models.CustomerView{
		RegistrationRequired: s.Phase != models.PhaseTracking || s.Vehicle == nil,
		Driver:               driver,
		RetrievalStatus:      s.RetrievalStatus,
		EtaMinutes:           s.EtaMinutes,
		StatusMessage:        s.StatusMessage,
		Pending:              s.Pending,
	}
	if view.RegistrationRequired {
		return view
	}
	v := *s.Vehicle
	view.Vehicle = &v

	switch s.RetrievalStatus {
	case models.StatusNone:
		view.CanRequest = true
	case models.StatusRequested:
		view.Headline = "Waiting for valet to provide ETA..."
	case models.StatusInTransit:
		view.Headline = "~" + s.EtaMinutes + " minutes"
		view.Tracking = trackingHint(s.EtaMinutes)
	case models.StatusReady:
		view.Headline = "Ready for Pickup!"
	}
	return view
}

// RenderValet is the valet's screen for state s.
func RenderValet(s models.SessionState) models.ValetView {
	view := models.ValetView{
		RegistrationRequired: s.Phase != models.PhaseTracking || s.Vehicle == nil,
		RetrievalStatus:      s.RetrievalStatus,
		Action:               models.ValetActionNone,
		Pending:              s.Pending,
	}
	if view.RegistrationRequired {
		return view
	}
	view.MakeModel = s.Vehicle.Make + " " + s.Vehicle.Model
	view.LicensePlate = s.Vehicle.LicensePlate
	view.CustomerContact = s.Vehicle.MobileNumber

	switch s.RetrievalStatus {
	case models.StatusNone:
		view.Note = "No active requests. Awaiting customer."
	case models.StatusRequested:
		view.Action = models.ValetActionBring
		view.NeedsEta = true
		view.Note = "Customer requested their car. Enter an ETA to start."
	case models.StatusInTransit:
		view.Action = models.ValetActionReady
		view.Note = "Customer is tracking the vehicle."
	case models.StatusReady:
		view.Action = models.ValetActionComplete
		view.Note = "Job Complete"
	}
	return view
}

// trackingHint sizes the map animation from the ETA. Unparseable or
// non-positive ETAs animate as one minute.
func trackingHint(eta string) *models.TrackingHint {
	minutes, err := strconv.Atoi(strings.TrimSpace(eta))
	if err != nil || minutes <= 0 {
		minutes = 1
	}
	secs := minutes * secondsPerEtaMinute
	if secs < minAnimationSeconds {
		secs = minAnimationSeconds
	}
	if secs > maxAnimationSeconds {
		secs = maxAnimationSeconds
	}
	return &models.TrackingHint{EtaMinutes: minutes, AnimationSeconds: secs}
}
