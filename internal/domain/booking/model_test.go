package booking

import (
	"encoding/json"
	"testing"
)

func TestCanProgress(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCompleted, StatusPending, false},
		{StatusPending, StatusPending, false},
	}
	for _, tt := range tests {
		if got := CanProgress(tt.from, tt.to); got != tt.want {
			t.Errorf("CanProgress(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestBooking_MarshalEmitsBothLabels(t *testing.T) {
	b := Booking{Therapy: "physiotherapy", Status: StatusConfirmed}
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal booking: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal booking: %v", err)
	}
	if decoded["therapy"] != "physiotherapy" {
		t.Errorf("expected therapy field, got %v", decoded["therapy"])
	}
	if decoded["treatment"] != "physiotherapy" {
		t.Errorf("expected treatment alias with same value, got %v", decoded["treatment"])
	}
}

func TestBooking_UnmarshalTreatmentFallback(t *testing.T) {
	var b Booking
	if err := json.Unmarshal([]byte(`{"treatment":"speech therapy"}`), &b); err != nil {
		t.Fatalf("unmarshal booking: %v", err)
	}
	if b.Therapy != "speech therapy" {
		t.Errorf("expected treatment adopted as therapy, got %q", b.Therapy)
	}
}

func TestBooking_UnmarshalTherapyWins(t *testing.T) {
	var b Booking
	if err := json.Unmarshal([]byte(`{"therapy":"physio","treatment":"speech"}`), &b); err != nil {
		t.Fatalf("unmarshal booking: %v", err)
	}
	if b.Therapy != "physio" {
		t.Errorf("expected therapy to win, got %q", b.Therapy)
	}
}
