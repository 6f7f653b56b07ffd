package models

// Phase is the coarse stage of the session.
type Phase string

const (
	PhaseRegistration Phase = "REGISTRATION"
	PhaseTracking     Phase = "TRACKING"
)

// ViewMode selects which actor's view is in front.
type ViewMode string

const (
	ViewCustomer ViewMode = "CUSTOMER"
	ViewValet    ViewMode = "VALET"
)

// Valid reports whether v is a known view.
func (v ViewMode) Valid() bool {
	return v == ViewCustomer || v == ViewValet
}

// RetrievalStatus only ever moves forward: NONE, REQUESTED, IN_TRANSIT, READY.
type RetrievalStatus string

const (
	StatusNone      RetrievalStatus = "NONE"
	StatusRequested RetrievalStatus = "REQUESTED"
	StatusInTransit RetrievalStatus = "IN_TRANSIT"
	StatusReady     RetrievalStatus = "READY"
)

// Rank orders statuses along the retrieval walk. Unknown statuses rank -1.
func (s RetrievalStatus) Rank() int {
	switch s {
	case StatusNone:
		return 0
	case StatusRequested:
		return 1
	case StatusInTransit:
		return 2
	case StatusReady:
		return 3
	}
	return -1
}

// VehicleRecord is captured at registration and never changed afterwards.
type VehicleRecord struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	LicensePlate string `json:"licensePlate"`
	MobileNumber string `json:"mobileNumber"`
}

// DriverRecord is the valet assigned to the session.
type DriverRecord struct {
	Name         string `json:"name"`
	MobileNumber string `json:"mobileNumber"`
	AvatarURL    string `json:"avatarUrl"`
}

// SessionState is the single shared session both views read from.
type SessionState struct {
	SessionID       string          `json:"sessionId"`
	Phase           Phase           `json:"phase"`
	ActiveView      ViewMode        `json:"activeView"`
	Vehicle         *VehicleRecord  `json:"vehicle"`
	RetrievalStatus RetrievalStatus `json:"retrievalStatus"`
	EtaMinutes      string          `json:"etaMinutes,omitempty"`
	StatusMessage   string          `json:"statusMessage"`
	Pending         bool            `json:"pending"`
}

// Clone returns a deep copy so callers can't reach the holder's vehicle pointer.
func (s SessionState) Clone() SessionState {
	out := s
	if s.Vehicle != nil {
		v := *s.Vehicle
		out.Vehicle = &v
	}
	return out
}

// RegistrationInput is the payload for POST /api/session/register.
type RegistrationInput struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	LicensePlate string `json:"licensePlate"`
	MobileNumber string `json:"mobileNumber"`
}

// BringCarInput is the payload for POST /api/session/bring.
type BringCarInput struct {
	Eta string `json:"eta"`
}

// ViewInput is the payload for PUT /api/session/view.
type ViewInput struct {
	View ViewMode `json:"view"`
}

// StatusEvent is published on every successful state change. Seq increases
// by one per event, in the order the changes were applied.
type StatusEvent struct {
	Seq             uint64          `json:"seq"`
	SessionID       string          `json:"sessionId"`
	Action          string          `json:"action"`
	Phase           Phase           `json:"phase"`
	RetrievalStatus RetrievalStatus `json:"retrievalStatus"`
	EtaMinutes      string          `json:"etaMinutes,omitempty"`
	StatusMessage   string          `json:"statusMessage,omitempty"`
	At              int64           `json:"at"`
}
