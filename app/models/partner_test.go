package models

import (
	"errors"
	"testing"
)

func TestTransition_Table(t *testing.T) {
	tests := []struct {
		name    string
		current PartnerStatus
		action  PartnerAction
		want    PartnerStatus
		wantErr bool
	}{
		{"approved suspend", PartnerStatusApproved, PartnerActionSuspend, PartnerStatusSuspended, false},
		{"suspended reactivate", PartnerStatusSuspended, PartnerActionReactivate, PartnerStatusApproved, false},
		{"approved terminate", PartnerStatusApproved, PartnerActionTerminate, PartnerStatusTerminated, false},
		{"suspended terminate", PartnerStatusSuspended, PartnerActionTerminate, PartnerStatusTerminated, false},

		{"approved reactivate ditolak", PartnerStatusApproved, PartnerActionReactivate, "", true},
		{"suspended suspend ditolak", PartnerStatusSuspended, PartnerActionSuspend, "", true},
		{"pending suspend ditolak", PartnerStatusPending, PartnerActionSuspend, "", true},
		{"pending reactivate ditolak", PartnerStatusPending, PartnerActionReactivate, "", true},
		{"pending terminate ditolak", PartnerStatusPending, PartnerActionTerminate, "", true},
		{"aksi tak dikenal ditolak", PartnerStatusApproved, PartnerAction("approve"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.current, tt.action)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Transition(%s, %s) = %s, want error", tt.current, tt.action, got)
				}
				if !errors.Is(err, ErrInvalidTransition) {
					t.Errorf("error = %v, want ErrInvalidTransition", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Transition(%s, %s) error: %v", tt.current, tt.action, err)
			}
			if got != tt.want {
				t.Errorf("Transition(%s, %s) = %s, want %s", tt.current, tt.action, got, tt.want)
			}
		})
	}
}

// terminated bersifat final: semua aksi harus ditolak
func TestTransition_TerminatedIsAbsorbing(t *testing.T) {
	actions := []PartnerAction{
		PartnerActionSuspend,
		PartnerActionReactivate,
		PartnerActionTerminate,
	}

	for _, action := range actions {
		got, err := Transition(PartnerStatusTerminated, action)
		if err == nil {
			t.Errorf("Transition(terminated, %s) = %s, want error", action, got)
			continue
		}
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("Transition(terminated, %s) error = %v, want ErrInvalidTransition", action, err)
		}
		if got != PartnerStatusTerminated {
			t.Errorf("Transition(terminated, %s) status berubah jadi %s", action, got)
		}
	}
}

func TestPartnerStatusLabels(t *testing.T) {
	tests := []struct {
		status PartnerStatus
		want   string
	}{
		{PartnerStatusPending, "Menunggu Verifikasi"},
		{PartnerStatusApproved, "Aktif"},
		{PartnerStatusSuspended, "Ditangguhkan"},
		{PartnerStatusTerminated, "Diputus"},
		{PartnerStatus("garbage"), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.StatusLabel(); got != tt.want {
			t.Errorf("StatusLabel(%s) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
