package valet

import (
	"errors"
	"testing"

	"valetpro/models"
)

func camryInput() models.RegistrationInput {
	return models.RegistrationInput{
		Make:         "Toyota",
		Model:        "Camry",
		LicensePlate: "ABC123",
		MobileNumber: "555-0100",
	}
}

func tracking(status models.RetrievalStatus) models.SessionState {
	s := InitialState("s1")
	s, err := register(s, camryInput())
	if err != nil {
		panic(err)
	}
	s.RetrievalStatus = status
	return s
}

func TestValidateVehicle(t *testing.T) {
	tests := []struct {
		name      string
		in        models.RegistrationInput
		wantField string
	}{
		{"valid", camryInput(), ""},
		{"empty make", models.RegistrationInput{Model: "Camry", LicensePlate: "A", MobileNumber: "1"}, "make"},
		{"blank model", models.RegistrationInput{Make: "Toyota", Model: "   ", LicensePlate: "A", MobileNumber: "1"}, "model"},
		{"blank plate", models.RegistrationInput{Make: "Toyota", Model: "Camry", LicensePlate: "\t", MobileNumber: "1"}, "licensePlate"},
		{"missing mobile", models.RegistrationInput{Make: "Toyota", Model: "Camry", LicensePlate: "A"}, "mobileNumber"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateVehicle(tt.in)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateVehicle returned error: %v", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("ValidateVehicle error = %v, want *ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Fatalf("Field = %q, want %q", ve.Field, tt.wantField)
			}
			if ve.Message != msgFieldsRequired {
				t.Fatalf("Message = %q, want %q", ve.Message, msgFieldsRequired)
			}
		})
	}
}

func TestValidateVehicle_Trims(t *testing.T) {
	v, err := ValidateVehicle(models.RegistrationInput{
		Make: " Toyota ", Model: "Camry\n", LicensePlate: " ABC123", MobileNumber: "555-0100 ",
	})
	if err != nil {
		t.Fatalf("ValidateVehicle returned error: %v", err)
	}
	want := models.VehicleRecord{Make: "Toyota", Model: "Camry", LicensePlate: "ABC123", MobileNumber: "555-0100"}
	if v != want {
		t.Fatalf("ValidateVehicle = %+v, want %+v", v, want)
	}
}

func TestParseEta(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"7", "7", false},
		{" 12 ", "12", false},
		{"1", "1", false},
		{"", "", true},
		{"   ", "", true},
		{"0", "", true},
		{"-3", "", true},
		{"abc", "", true},
		{"7abc", "", true},
		{"2.5", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEta(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEta(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseEta(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRegister_MovesToTracking(t *testing.T) {
	s, err := register(InitialState("s1"), camryInput())
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if s.Phase != models.PhaseTracking {
		t.Fatalf("Phase = %s, want TRACKING", s.Phase)
	}
	want := models.VehicleRecord{Make: "Toyota", Model: "Camry", LicensePlate: "ABC123", MobileNumber: "555-0100"}
	if s.Vehicle == nil || *s.Vehicle != want {
		t.Fatalf("Vehicle = %+v, want %+v", s.Vehicle, want)
	}
}

func TestRegister_InvalidLeavesStateUnchanged(t *testing.T) {
	in := InitialState("s1")
	out, err := register(in, models.RegistrationInput{Make: "Toyota"})
	if err == nil {
		t.Fatal("register accepted an incomplete vehicle")
	}
	if out.Phase != models.PhaseRegistration || out.Vehicle != nil {
		t.Fatalf("state changed on invalid input: %+v", out)
	}
}

func TestRegister_RejectedWhileTracking(t *testing.T) {
	_, err := register(tracking(models.StatusNone), camryInput())
	var te *TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("register error = %v, want *TransitionError", err)
	}
}

func TestBringCar_EtaValidation(t *testing.T) {
	tests := []struct {
		eta        string
		wantStatus models.RetrievalStatus
		wantEta    string
	}{
		{"7", models.StatusInTransit, "7"},
		{"15", models.StatusInTransit, "15"},
		{"0", models.StatusRequested, ""},
		{"", models.StatusRequested, ""},
		{"-1", models.StatusRequested, ""},
		{"soon", models.StatusRequested, ""},
	}
	for _, tt := range tests {
		t.Run(tt.eta, func(t *testing.T) {
			s, err := bringCar(tracking(models.StatusRequested), tt.eta)
			if tt.wantStatus == models.StatusRequested {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("bringCar(%q) error = %v, want *ValidationError", tt.eta, err)
				}
			} else if err != nil {
				t.Fatalf("bringCar(%q) returned error: %v", tt.eta, err)
			}
			if s.RetrievalStatus != tt.wantStatus {
				t.Fatalf("RetrievalStatus = %s, want %s", s.RetrievalStatus, tt.wantStatus)
			}
			if s.EtaMinutes != tt.wantEta {
				t.Fatalf("EtaMinutes = %q, want %q", s.EtaMinutes, tt.wantEta)
			}
		})
	}
}

func TestTransitions_OnlyForward(t *testing.T) {
	type step struct {
		name string
		fn   func(models.SessionState) (models.SessionState, error)
	}
	steps := []step{
		{"request", requestCar},
		{"bring", func(s models.SessionState) (models.SessionState, error) { return bringCar(s, "5") }},
		{"ready", markReady},
	}
	statuses := []models.RetrievalStatus{
		models.StatusNone, models.StatusRequested, models.StatusInTransit, models.StatusReady,
	}

	for _, from := range statuses {
		for i, st := range steps {
			t.Run(string(from)+"/"+st.name, func(t *testing.T) {
				in := tracking(from)
				if from == models.StatusInTransit || from == models.StatusReady {
					in.EtaMinutes = "5"
				}
				out, err := st.fn(in)
				allowed := from.Rank() == i
				if allowed {
					if err != nil {
						t.Fatalf("%s from %s returned error: %v", st.name, from, err)
					}
					if out.RetrievalStatus.Rank() != from.Rank()+1 {
						t.Fatalf("%s from %s went to %s", st.name, from, out.RetrievalStatus)
					}
					return
				}
				var te *TransitionError
				if !errors.As(err, &te) {
					t.Fatalf("%s from %s error = %v, want *TransitionError", st.name, from, err)
				}
				if out.RetrievalStatus != from {
					t.Fatalf("%s from %s changed status to %s", st.name, from, out.RetrievalStatus)
				}
			})
		}
	}
}

func TestActions_RequireTracking(t *testing.T) {
	s := InitialState("s1")
	if _, err := requestCar(s); err == nil {
		t.Fatal("requestCar allowed during registration")
	}
	if _, err := switchView(s, models.ViewValet); err == nil {
		t.Fatal("switchView allowed during registration")
	}
}

func TestSwitchView(t *testing.T) {
	s, err := switchView(tracking(models.StatusNone), models.ViewValet)
	if err != nil {
		t.Fatalf("switchView returned error: %v", err)
	}
	if s.ActiveView != models.ViewValet {
		t.Fatalf("ActiveView = %s, want VALET", s.ActiveView)
	}
	if _, err := switchView(s, models.ViewMode("ADMIN")); err == nil {
		t.Fatal("switchView accepted an unknown view")
	}
}
