package models

// MessageKind is the event a status message is generated for.
type MessageKind string

const (
	MessageRegistration MessageKind = "registration"
	MessageInTransit    MessageKind = "in_transit"
	MessageReady        MessageKind = "ready"
)

// MessageContext carries the fields a status message may mention.
type MessageContext struct {
	Car    VehicleRecord `json:"car"`
	Driver DriverRecord  `json:"driver"`
	Eta    string        `json:"eta,omitempty"`
}

// CustomerView is the customer's projection of the session.
type CustomerView struct {
	RegistrationRequired bool            `json:"registrationRequired"`
	Vehicle              *VehicleRecord  `json:"vehicle,omitempty"`
	Driver               DriverRecord    `json:"driver"`
	RetrievalStatus      RetrievalStatus `json:"retrievalStatus"`
	EtaMinutes           string          `json:"etaMinutes,omitempty"`
	StatusMessage        string          `json:"statusMessage"`
	Headline             string          `json:"headline,omitempty"`
	CanRequest           bool            `json:"canRequest"`
	Tracking             *TrackingHint   `json:"tracking,omitempty"`
	Pending              bool            `json:"pending"`
}

// TrackingHint drives the cosmetic map animation while the car is moving.
type TrackingHint struct {
	EtaMinutes       int `json:"etaMinutes"`
	AnimationSeconds int `json:"animationSeconds"`
}

// ValetAction names what the valet can do next.
type ValetAction string

const (
	ValetActionNone     ValetAction = "none"
	ValetActionBring    ValetAction = "bring"
	ValetActionReady    ValetAction = "ready"
	ValetActionComplete ValetAction = "complete"
)

// ValetView is the valet's projection of the session.
type ValetView struct {
	RegistrationRequired bool            `json:"registrationRequired"`
	MakeModel            string          `json:"makeModel,omitempty"`
	LicensePlate         string          `json:"licensePlate,omitempty"`
	CustomerContact      string          `json:"customerContact,omitempty"`
	RetrievalStatus      RetrievalStatus `json:"retrievalStatus"`
	Action               ValetAction     `json:"action"`
	Note                 string          `json:"note,omitempty"`
	NeedsEta             bool            `json:"needsEta"`
	Pending              bool            `json:"pending"`
}
